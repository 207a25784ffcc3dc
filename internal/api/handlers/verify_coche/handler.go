package verify_coche

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

const listPath = "/admin/coches"

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

// Handle POST /admin/coches/{id}/verificar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return
	}

	form := forms.NewVerifyForm(r)
	verificado, errs := form.Parse()
	if !errs.Valid() {
		h.logger.Warn("POST /admin/coches/{id}/verificar - Invalid form: id=%d, errors=%v", id, errs)
		handlers.ErrorPage(h.renderer, w, r, http.StatusBadRequest, errs.Get("verificado"))
		return
	}

	if err := h.service.Verify(r.Context(), handlers.Token(r), id, verificado); err != nil {
		switch {
		case errors.Is(err, coches.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, coches.ErrNotFound):
			h.logger.Warn("POST /admin/coches/{id}/verificar - Coche not found: id=%d", id)
			handlers.NotFound(h.renderer, w, r)
		default:
			h.logger.Error("POST /admin/coches/{id}/verificar - Failed to verify coche: id=%d, error=%v", id, err)
			handlers.ErrorPage(h.renderer, w, r, http.StatusBadGateway, handlers.MsgGeneric)
		}
		return
	}

	h.logger.Info("POST /admin/coches/{id}/verificar - Coche verification changed: id=%d, verificado=%t", id, verificado)
	handlers.Redirect(w, r, listPath)
}
