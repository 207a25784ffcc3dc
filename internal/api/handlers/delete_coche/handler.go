package delete_coche

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

const listPath = "/vendedor/coches"

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

// Handle POST /vendedor/coches/{id}/eliminar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return
	}

	userID := handlers.CurrentUserID(r)
	_, err := h.service.GetOwn(r.Context(), userID, id)
	if err == nil {
		err = h.service.Delete(r.Context(), handlers.Token(r), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, coches.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, coches.ErrNotFound), errors.Is(err, coches.ErrForbidden):
			h.logger.Warn("POST /vendedor/coches/{id}/eliminar - Coche not available: id=%d, user_id=%d, error=%v", id, userID, err)
			handlers.NotFound(h.renderer, w, r)
		default:
			h.logger.Error("POST /vendedor/coches/{id}/eliminar - Failed to delete coche: id=%d, error=%v", id, err)
			handlers.ErrorPage(h.renderer, w, r, http.StatusBadGateway, handlers.MsgGeneric)
		}
		return
	}

	h.logger.Info("POST /vendedor/coches/{id}/eliminar - Coche deleted: id=%d, user_id=%d", id, userID)
	handlers.Redirect(w, r, listPath)
}
