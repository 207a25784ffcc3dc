package register

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
	pageTitle     = "Crear cuenta"
	msgEmailTaken = "Ya existe una cuenta con este email"
	msgRejected   = "Revisa los datos del formulario"
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

// Show GET /register
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	page := handlers.NewPage(r, pageTitle)
	if page.Authenticated {
		handlers.Redirect(w, r, domain.RouteHome)
		return
	}
	page.Form = forms.RegisterForm{}
	h.renderer.Render(w, r, http.StatusOK, views.PageRegister, page)
}

// Handle POST /register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form := forms.NewRegisterForm(r)
	page := handlers.NewPage(r, pageTitle)

	if errs := form.Validate(); !errs.Valid() {
		h.logger.Warn("POST /register - Invalid form: %v", errs)
		form.ClearSecrets()
		page.Form, page.Errors = form, errs
		h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageRegister, page)
		return
	}

	auth, ok := middleware.GetAuth(r.Context())
	if !ok {
		h.logger.Error("POST /register - Session storage unavailable")
		form.ClearSecrets()
		page.Form, page.Alert = form, handlers.MsgGeneric
		h.renderer.Render(w, r, http.StatusServiceUnavailable, views.PageRegister, page)
		return
	}

	req := toRegisterRequest(form)
	form.ClearSecrets()

	if _, err := h.service.Register(r.Context(), auth.Store, req); err != nil {
		page.Form = form
		switch {
		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /register - Email already registered: email=%s", form.Email)
			page.Errors = forms.FieldErrors{"email": msgEmailTaken}
			h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageRegister, page)
		case errors.Is(err, authService.ErrRejected):
			h.logger.Warn("POST /register - Rejected by API: email=%s, error=%v", form.Email, err)
			page.Alert = msgRejected
			h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageRegister, page)
		default:
			h.logger.Error("POST /register - Failed to register: email=%s, error=%v", form.Email, err)
			page.Alert = handlers.MsgGeneric
			h.renderer.Render(w, r, http.StatusBadGateway, views.PageRegister, page)
		}
		return
	}

	h.logger.Info("POST /register - User registered: email=%s", form.Email)
	handlers.Redirect(w, r, domain.RouteHome)
}
