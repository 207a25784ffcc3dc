package list_modelos

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

const (
	msgInvalidMarcaID = "identificador de marca no válido"
	msgMarcaNotFound  = "marca no encontrada"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/marcas/{id}/modelos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	marcaID, ok := handlers.PathID(r, "id")
	if !ok {
		h.logger.Warn("GET /api/marcas/{id}/modelos - Invalid marca ID: %s", r.URL.Path)
		handlers.RespondBadRequest(w, msgInvalidMarcaID)
		return
	}

	modelos, err := h.service.Modelos(r.Context(), marcaID)
	if err != nil {
		switch {
		case errors.Is(err, coches.ErrNotFound):
			h.logger.Warn("GET /api/marcas/{id}/modelos - Marca not found: marca_id=%d", marcaID)
			handlers.RespondNotFound(w, msgMarcaNotFound)
		default:
			h.logger.Error("GET /api/marcas/{id}/modelos - Failed to list modelos: marca_id=%d, error=%v", marcaID, err)
			handlers.RespondUpstreamError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(modelos))
}
