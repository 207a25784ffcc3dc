package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	profileService "github.com/m04kA/SMC-CarMarketWeb/internal/service/profile"
)

const (
	pageTitle          = "Mi perfil"
	msgProfileSaved    = "Perfil actualizado"
	msgPasswordChanged = "Contraseña cambiada"
	msgEmailTaken      = "Ya existe una cuenta con este email"
	msgWrongPassword   = "La contraseña actual no es correcta"
)

type Handler struct {
	service  ProfileService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service ProfileService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Show GET /profile
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	page := handlers.NewPage(r, pageTitle)

	user, err := h.service.Get(r.Context(), handlers.Token(r))
	if err != nil {
		if errors.Is(err, profileService.ErrUnauthorized) {
			handlers.SessionExpired(w, r, h.logger)
			return
		}
		// Показываем данные из сессии, чтобы страница оставалась рабочей
		h.logger.Error("GET /profile - Failed to load profile: %v", err)
		page.Alert = handlers.MsgGeneric
		page.Form = forms.ProfileFormFromUser(page.User)
		h.renderer.Render(w, r, http.StatusBadGateway, views.PageProfile, page)
		return
	}

	page.Form = forms.ProfileFormFromUser(user)
	h.renderer.Render(w, r, http.StatusOK, views.PageProfile, page)
}

// Update POST /profile
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	form := forms.NewProfileForm(r)
	page := handlers.NewPage(r, pageTitle)
	page.Form = form

	if errs := form.Validate(); !errs.Valid() {
		h.logger.Warn("POST /profile - Invalid form: %v", errs)
		page.Errors = errs
		h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageProfile, page)
		return
	}

	auth, ok := middleware.GetAuth(r.Context())
	if !ok {
		handlers.SessionExpired(w, r, h.logger)
		return
	}
	user, err := h.service.Update(r.Context(), auth.Store, auth.Snapshot.Token, auth.Snapshot.Roles.List(), toUpdateProfileRequest(form))
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, profileService.ErrEmailTaken):
			h.logger.Warn("POST /profile - Email already registered: email=%s", form.Email)
			page.Errors = forms.FieldErrors{"email": msgEmailTaken}
			h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageProfile, page)
		default:
			h.logger.Error("POST /profile - Failed to update profile: %v", err)
			page.Alert = handlers.MsgGeneric
			h.renderer.Render(w, r, http.StatusBadGateway, views.PageProfile, page)
		}
		return
	}

	auth.Snapshot.User = user
	page.User = user
	page.Form = forms.ProfileFormFromUser(user)
	page.Notice = msgProfileSaved
	h.logger.Info("POST /profile - Profile updated: user_id=%d", user.ID)
	h.renderer.Render(w, r, http.StatusOK, views.PageProfile, page)
}

// ChangePassword POST /profile/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	form := forms.NewPasswordForm(r)
	page := handlers.NewPage(r, pageTitle)
	page.Form = forms.ProfileFormFromUser(page.User)

	errs := form.Validate()
	if !errs.Valid() {
		h.logger.Warn("POST /profile/password - Invalid form: %v", errs)
		form.ClearSecrets()
		page.Errors = errs
		h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageProfile, page)
		return
	}

	err := h.service.ChangePassword(r.Context(), handlers.Token(r), toChangePasswordRequest(form))
	form.ClearSecrets()
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, profileService.ErrRejected):
			h.logger.Warn("POST /profile/password - Rejected by API: %v", err)
			page.Errors = forms.FieldErrors{"password_actual": msgWrongPassword}
			h.renderer.Render(w, r, http.StatusUnprocessableEntity, views.PageProfile, page)
		default:
			h.logger.Error("POST /profile/password - Failed to change password: %v", err)
			page.Alert = handlers.MsgGeneric
			h.renderer.Render(w, r, http.StatusBadGateway, views.PageProfile, page)
		}
		return
	}

	h.logger.Info("POST /profile/password - Password changed: user_id=%d", handlers.CurrentUserID(r))
	page.Notice = msgPasswordChanged
	h.renderer.Render(w, r, http.StatusOK, views.PageProfile, page)
}
