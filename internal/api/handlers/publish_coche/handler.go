package publish_coche

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	"github.com/m04kA/SMC-CarMarketWeb/internal/uploads"
	publishCoche "github.com/m04kA/SMC-CarMarketWeb/internal/usecase/publish_coche"
)

const (
	formAction = "/vendedor/publicar"
	pageTitle  = "Publicar coche"

	msgTooLarge        = "Los archivos superan el tamaño máximo permitido"
	msgTooManyFiles    = "Demasiados archivos"
	msgUnsupportedFile = "Tipo de archivo no admitido"
	msgForbidden       = "Tu cuenta no puede publicar anuncios"
	msgRejected        = "Revisa los datos del anuncio"
)

type Handler struct {
	useCase  PublishCocheUseCase
	catalog  CatalogService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(useCase PublishCocheUseCase, catalog CatalogService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		catalog:  catalog,
		renderer: renderer,
		logger:   logger,
	}
}

// Show GET /vendedor/publicar
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, forms.CocheForm{}, nil, "")
}

// Handle POST /vendedor/publicar (multipart)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize)
	if err := r.ParseMultipartForm(domain.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Warn("POST /vendedor/publicar - Failed to parse multipart form: %v", err)
		h.render(w, r, http.StatusRequestEntityTooLarge, forms.CocheForm{}, nil, msgTooLarge)
		return
	}

	form := forms.NewCocheForm(r)
	values, errs := form.Parse()
	if !errs.Valid() {
		h.logger.Warn("POST /vendedor/publicar - Invalid form: %v", errs)
		h.render(w, r, http.StatusUnprocessableEntity, form, errs, "")
		return
	}

	images, closeImages, err := handlers.UploadedFiles(r, marketapi.FieldImagenes)
	if err != nil {
		h.logger.Error("POST /vendedor/publicar - Failed to read images: %v", err)
		h.render(w, r, http.StatusBadRequest, form, nil, handlers.MsgGeneric)
		return
	}
	defer closeImages()

	documents, closeDocuments, err := handlers.UploadedFiles(r, marketapi.FieldDocumentos)
	if err != nil {
		h.logger.Error("POST /vendedor/publicar - Failed to read documents: %v", err)
		h.render(w, r, http.StatusBadRequest, form, nil, handlers.MsgGeneric)
		return
	}
	defer closeDocuments()

	result, err := h.useCase.Execute(r.Context(), &publishCoche.Request{
		Token:     handlers.Token(r),
		Input:     handlers.CocheInput(values),
		Images:    images,
		Documents: documents,
	})
	if err != nil {
		switch {
		case errors.Is(err, publishCoche.ErrUnauthorized):
			handlers.SessionExpired(w, r, h.logger)
		case errors.Is(err, publishCoche.ErrForbidden):
			h.logger.Warn("POST /vendedor/publicar - Forbidden: user_id=%d", handlers.CurrentUserID(r))
			h.render(w, r, http.StatusForbidden, form, nil, msgForbidden)
		case errors.Is(err, publishCoche.ErrTooManyFiles), errors.Is(err, publishCoche.ErrUnsupportedFile):
			h.logger.Warn("POST /vendedor/publicar - Files rejected: %v", err)
			h.render(w, r, http.StatusUnprocessableEntity, form, fileErrors(err), "")
		case errors.Is(err, publishCoche.ErrRejected), errors.Is(err, publishCoche.ErrInvalidInput):
			h.logger.Warn("POST /vendedor/publicar - Rejected: %v", err)
			h.render(w, r, http.StatusUnprocessableEntity, form, nil, msgRejected)
		default:
			h.logger.Error("POST /vendedor/publicar - Failed to publish coche: user_id=%d, error=%v", handlers.CurrentUserID(r), err)
			h.render(w, r, http.StatusBadGateway, form, nil, handlers.MsgGeneric)
		}
		return
	}

	h.logger.Info("POST /vendedor/publicar - Coche published: coche_id=%d, user_id=%d", result.ID, handlers.CurrentUserID(r))
	handlers.Redirect(w, r, "/vendedor/coches?ok=1")
}

// fileErrors показывает ошибку файлов под полем, которое ее вызвало
func fileErrors(err error) forms.FieldErrors {
	field := marketapi.FieldImagenes
	var fieldErr *uploads.FieldError
	if errors.As(err, &fieldErr) {
		field = fieldErr.Field
	}

	msg := msgUnsupportedFile
	if errors.Is(err, publishCoche.ErrTooManyFiles) {
		msg = msgTooManyFiles
	}
	return forms.FieldErrors{field: msg}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, form forms.CocheForm, errs forms.FieldErrors, alert string) {
	page := handlers.NewPage(r, pageTitle)
	page.Form, page.Errors, page.Alert = form, errs, alert

	data, err := handlers.LoadCocheFormData(r.Context(), h.catalog, form, formAction)
	if err != nil {
		h.logger.Error("%s %s - Failed to load catalog: %v", r.Method, r.URL.Path, err)
		page.Alert = handlers.MsgGeneric
		if status == http.StatusOK {
			status = http.StatusBadGateway
		}
	}
	page.Data = data

	h.renderer.Render(w, r, status, views.PageCocheForm, page)
}
