package admin_coches

import (
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
)

const pageTitle = "Moderación"

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

// Handle GET /admin/coches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := handlers.NewPage(r, pageTitle)

	items, err := h.service.ListForModeration(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/coches - Failed to list coches: %v", err)
		page.Alert = handlers.MsgGeneric
		page.Data = views.ListData{}
		h.renderer.Render(w, r, http.StatusBadGateway, views.PageAdminCoches, page)
		return
	}

	page.Data = views.ListData{Coches: items}
	h.renderer.Render(w, r, http.StatusOK, views.PageAdminCoches, page)
}
