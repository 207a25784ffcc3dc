package get_coche

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
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

// Handle GET /coche/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return
	}

	coche, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, coches.ErrNotFound):
			h.logger.Warn("GET /coche/{id} - Coche not found: id=%d", id)
			handlers.NotFound(h.renderer, w, r)
		default:
			h.logger.Error("GET /coche/{id} - Failed to get coche: id=%d, error=%v", id, err)
			page := handlers.NewPage(r, "Coche")
			page.Alert = handlers.MsgGeneric
			page.Data = views.CocheData{}
			h.renderer.Render(w, r, http.StatusBadGateway, views.PageCoche, page)
		}
		return
	}

	page := handlers.NewPage(r, coche.Title())
	page.Data = views.CocheData{
		Coche:   coche,
		IsOwner: page.Authenticated && coche.IsOwnedBy(handlers.CurrentUserID(r)),
	}
	h.renderer.Render(w, r, http.StatusOK, views.PageCoche, page)
}
