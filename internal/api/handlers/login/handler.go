package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
)

const (
	pageTitle             = "Entrar"
	msgInvalidCredentials = "Email o contraseña incorrectos"
)

type Handler struct {
	service  AuthService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service AuthService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Show GET /login
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	page := handlers.NewPage(r, pageTitle)
	if page.Authenticated {
		handlers.Redirect(w, r, domain.RouteHome)
		return
	}
	page.Form = forms.LoginForm{}
	h.renderer.Render(w, r, http.StatusOK, views.PageLogin, page)
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form := forms.NewLoginForm(r)
	page := handlers.NewPage(r, pageTitle)

	// Валидация до любого сетевого вызова
	if errs := form.Validate(); !errs.Valid() {
		h.logger.Warn("POST /login - Invalid form: %v", errs)
		form.ClearSecrets()
		page.Form, page.Errors = form, errs
		h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageLogin, page)
		return
	}

	auth, ok := middleware.GetAuth(r.Context())
	if !ok {
		h.logger.Error("POST /login - Session storage unavailable")
		form.ClearSecrets()
		page.Form, page.Alert = form, handlers.MsgGeneric
		h.renderer.Render(w, r, http.StatusServiceUnavailable, views.PageLogin, page)
		return
	}

	_, err := h.service.Login(r.Context(), auth.Store, toLoginRequest(form))
	form.ClearSecrets()
	if err != nil {
		page.Form = form
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: email=%s", form.Email)
			page.Alert = msgInvalidCredentials
			h.renderer.Render(w, r, http.StatusUnauthorized, views.PageLogin, page)
		default:
			h.logger.Error("POST /login - Failed to login: email=%s, error=%v", form.Email, err)
			page.Alert = handlers.MsgGeneric
			h.renderer.Render(w, r, http.StatusBadGateway, views.PageLogin, page)
		}
		return
	}

	h.logger.Info("POST /login - User signed in: email=%s", form.Email)
	handlers.Redirect(w, r, domain.RouteHome)
}
