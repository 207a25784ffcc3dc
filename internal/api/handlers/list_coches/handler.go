package list_coches

import (
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
)

const pageTitle = "Coches en venta"

type Handler struct {
	service  CochesService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service CochesService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, echo := filterFromQuery(r.URL.Query())
	page := handlers.NewPage(r, pageTitle)
	data := views.HomeData{Filter: echo}

	// Без справочников витрина работает, просто без выпадающих фильтров
	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		h.logger.Warn("GET / - Failed to load catalog: %v", err)
	} else {
		data.Catalog = catalog
	}

	coches, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET / - Failed to list coches: %v", err)
		page.Alert = handlers.MsgGeneric
		page.Data = data
		h.renderer.Render(w, r, http.StatusBadGateway, views.PageHome, page)
		return
	}

	data.Coches = coches
	page.Data = data
	h.renderer.Render(w, r, http.StatusOK, views.PageHome, page)
}
