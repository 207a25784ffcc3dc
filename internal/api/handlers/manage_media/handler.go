package manage_media

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/handlers"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
	"github.com/m04kA/SMC-CarMarketWeb/internal/uploads"
)

const (
	msgNoFiles         = "Selecciona al menos un archivo"
	msgTooManyFiles    = "Demasiados archivos"
	msgUnsupportedFile = "Tipo de archivo no admitido"
	msgRejected        = "El archivo no se pudo guardar"
)

// Handler управляет фотографиями и документами объявления продавца
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

// AddImages POST /vendedor/coches/{id}/imagenes
func (h *Handler) AddImages(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, marketapi.FieldImagenes, h.service.AddImages)
}

// AddDocuments POST /vendedor/coches/{id}/documentos
func (h *Handler) AddDocuments(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, marketapi.FieldDocumentos, h.service.AddDocuments)
}

// DeleteImage POST /vendedor/coches/{id}/imagenes/{mediaID}/eliminar
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.service.DeleteImage)
}

// DeleteDocument POST /vendedor/coches/{id}/documentos/{mediaID}/eliminar
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.service.DeleteDocument)
}

type uploadFunc func(ctx context.Context, token string, id int64, files []marketapi.File) error

type removeFunc func(ctx context.Context, token string, id, mediaID int64) error

func (h *Handler) upload(w http.ResponseWriter, r *http.Request, field string, send uploadFunc) {
	id, ok := h.ownCoche(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize)
	if err := r.ParseMultipartForm(domain.MaxUploadSize); err != nil {
		h.logger.Warn("%s %s - Failed to parse multipart form: %v", r.Method, r.URL.Path, err)
		handlers.ErrorPage(h.renderer, w, r, http.StatusRequestEntityTooLarge, msgRejected)
		return
	}

	files, release, err := handlers.UploadedFiles(r, field)
	if err != nil {
		h.logger.Error("%s %s - Failed to read files: %v", r.Method, r.URL.Path, err)
		handlers.ErrorPage(h.renderer, w, r, http.StatusBadRequest, msgRejected)
		return
	}
	defer release()

	if len(files) == 0 {
		handlers.ErrorPage(h.renderer, w, r, http.StatusUnprocessableEntity, msgNoFiles)
		return
	}
	if err := uploads.Check(field, files); err != nil {
		h.logger.Warn("%s %s - Files rejected: coche_id=%d, error=%v", r.Method, r.URL.Path, id, err)
		msg := msgUnsupportedFile
		if errors.Is(err, uploads.ErrTooManyFiles) {
			msg = msgTooManyFiles
		}
		handlers.ErrorPage(h.renderer, w, r, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := send(r.Context(), handlers.Token(r), id, files); err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.logger.Info("%s %s - Files uploaded: coche_id=%d, field=%s, count=%d", r.Method, r.URL.Path, id, field, len(files))
	handlers.Redirect(w, r, editPath(id))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, send removeFunc) {
	id, ok := h.ownCoche(w, r)
	if !ok {
		return
	}
	mediaID, ok := handlers.PathID(r, "mediaID")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return
	}

	if err := send(r.Context(), handlers.Token(r), id, mediaID); err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.logger.Info("%s %s - Media deleted: coche_id=%d, media_id=%d", r.Method, r.URL.Path, id, mediaID)
	handlers.Redirect(w, r, editPath(id))
}

// ownCoche проверяет, что объявление принадлежит текущему продавцу
func (h *Handler) ownCoche(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.NotFound(h.renderer, w, r)
		return 0, false
	}
	if _, err := h.service.GetOwn(r.Context(), handlers.CurrentUserID(r), id); err != nil {
		h.fail(w, r, id, err)
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, id int64, err error) {
	switch {
	case errors.Is(err, coches.ErrUnauthorized):
		handlers.SessionExpired(w, r, h.logger)
	case errors.Is(err, coches.ErrNotFound), errors.Is(err, coches.ErrForbidden):
		h.logger.Warn("%s %s - Coche not available: id=%d, error=%v", r.Method, r.URL.Path, id, err)
		handlers.NotFound(h.renderer, w, r)
	case errors.Is(err, coches.ErrRejected):
		h.logger.Warn("%s %s - Rejected: id=%d, error=%v", r.Method, r.URL.Path, id, err)
		handlers.ErrorPage(h.renderer, w, r, http.StatusUnprocessableEntity, msgRejected)
	default:
		h.logger.Error("%s %s - Media operation failed: id=%d, error=%v", r.Method, r.URL.Path, id, err)
		handlers.ErrorPage(h.renderer, w, r, http.StatusBadGateway, handlers.MsgGeneric)
	}
}

func editPath(id int64) string {
	return fmt.Sprintf("/vendedor/coches/%d/editar", id)
}
