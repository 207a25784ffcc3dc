package seller_coches

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

const (
	pageTitle    = "Mis coches"
	msgPublished = "Anuncio publicado"
)

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

// Handle GET /vendedor/coches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := handlers.NewPage(r, pageTitle)
	if r.URL.Query().Get("ok") != "" {
		page.Notice = msgPublished
	}

	items, err := h.service.ListOwn(r.Context(), handlers.Token(r))
	if err != nil {
		if errors.Is(err, coches.ErrUnauthorized) {
			handlers.SessionExpired(w, r, h.logger)
			return
		}
		h.logger.Error("GET /vendedor/coches - Failed to list seller coches: user_id=%d, error=%v", handlers.CurrentUserID(r), err)
		page.Alert = handlers.MsgGeneric
		page.Data = views.ListData{}
		h.renderer.Render(w, r, http.StatusBadGateway, views.PageSellerCoches, page)
		return
	}

	page.Data = views.ListData{Coches: items}
	h.renderer.Render(w, r, http.StatusOK, views.PageSellerCoches, page)
}
