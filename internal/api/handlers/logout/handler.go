package logout

import (
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.GetAuth(r.Context())
	if !ok {
		h.logger.Warn("POST /logout - Session storage unavailable")
		handlers.Redirect(w, r, domain.RouteLogin)
		return
	}

	if err := h.service.Logout(r.Context(), auth.Store); err != nil {
		h.logger.Error("POST /logout - Failed to logout: %v", err)
	} else {
		auth.Reset()
		h.logger.Info("POST /logout - User signed out")
	}

	handlers.Redirect(w, r, domain.RouteLogin)
}
