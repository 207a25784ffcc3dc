package edit_coche

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

const (
	pageTitle   = "Editar coche"
	msgRejected = "Revisa los datos del anuncio"
	msgSaved    = "Cambios guardados"
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

// Show GET /vendedor/coches/{id}/editar
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	coche, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, coche, forms.CocheFormFromDomain(coche), nil, "", r.URL.Query().Get("ok"))
}

// Handle POST /vendedor/coches/{id}/editar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coche, ok := h.load(w, r)
	if !ok {
		return
	}

	form := forms.NewCocheForm(r)
	values, errs := form.Parse()
	if !errs.Valid() {
		h.logger.Warn("POST /vendedor/coches/{id}/editar - Invalid form: id=%d, errors=%v", coche.ID, errs)
		h.render(w, r, http.StatusUnprocessableEntity, coche, form, errs, "", "")
		return
	}

	if _, err := h.service.Update(r.Context(), handlers.Token(r), coche.ID, handlers.CocheInput(values)); err != nil {
		switch {
		case errors.Is(err, coches.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, coches.ErrNotFound):
			handlers.NotFound(h.renderer, w, r)
		case errors.Is(err, coches.ErrRejected):
			h.logger.Warn("POST /vendedor/coches/{id}/editar - Rejected: id=%d, error=%v", coche.ID, err)
			h.render(w, r, http.StatusUnprocessableEntity, coche, form, nil, msgRejected, "")
		default:
			h.logger.Error("POST /vendedor/coches/{id}/editar - Failed to update coche: id=%d, error=%v", coche.ID, err)
			h.render(w, r, http.StatusBadGateway, coche, form, nil, handlers.MsgGeneric, "")
		}
		return
	}

	h.logger.Info("POST /vendedor/coches/{id}/editar - Coche updated: id=%d, user_id=%d", coche.ID, handlers.CurrentUserID(r))
	handlers.Redirect(w, r, EditPath(coche.ID)+"?ok=1")
}

// EditPath адрес страницы редактирования
func EditPath(id int64) string {
	return fmt.Sprintf("/vendedor/coches/%d/editar", id)
}

// load загружает объявление продавца; при ошибке ответ уже записан
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*domain.Coche, bool) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return nil, false
	}

	coche, err := h.service.GetOwn(r.Context(), handlers.CurrentUserID(r), id)
	if err != nil {
		switch {
		case errors.Is(err, coches.ErrNotFound), errors.Is(err, coches.ErrForbidden):
			// Чужое объявление выглядит как несуществующее
			h.logger.Warn("%s /vendedor/coches/{id}/editar - Coche not available: id=%d, error=%v", r.Method, id, err)
			handlers.NotFound(h.renderer, w, r)
		case errors.Is(err, coches.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		default:
			h.logger.Error("%s /vendedor/coches/{id}/editar - Failed to get coche: id=%d, error=%v", r.Method, id, err)
			handlers.ErrorPage(h.renderer, w, r, http.StatusBadGateway, handlers.MsgGeneric)
		}
		return nil, false
	}
	return coche, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, coche *domain.Coche, form forms.CocheForm, errs forms.FieldErrors, alert, ok string) {
	page := handlers.NewPage(r, pageTitle)
	page.Form, page.Errors, page.Alert = form, errs, alert
	if ok != "" {
		page.Notice = msgSaved
	}

	data, err := handlers.LoadCocheFormData(r.Context(), h.service, form, EditPath(coche.ID))
	if err != nil {
		h.logger.Error("%s /vendedor/coches/{id}/editar - Failed to load catalog: %v", r.Method, err)
		page.Alert = handlers.MsgGeneric
		if status == http.StatusOK {
			status = http.StatusBadGateway
		}
	}
	data.Editing = true
	data.Coche = coche
	page.Data = data

	h.renderer.Render(w, r, status, views.PageCocheForm, page)
}
