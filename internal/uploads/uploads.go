package uploads

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

var (
	// ErrTooManyFiles возвращается, когда файлов в поле больше допустимого
	ErrTooManyFiles = errors.New("uploads: too many files")

	// ErrUnsupportedFile возвращается для файлов недопустимого типа
	ErrUnsupportedFile = errors.New("uploads: unsupported file type")
)

// allowedDocumentTypes типы документов, которые принимает API
var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// FieldError ошибка файлов конкретного поля формы
type FieldError struct {
	Field string
	Err   error
	msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Field, e.msg, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Check проверяет количество и типы файлов поля imagenes или documentos
func Check(field string, files []marketapi.File) error {
	limit := domain.MaxImagesPerUpload
	if field == marketapi.FieldDocumentos {
		limit = domain.MaxDocumentsPerUpload
	}
	if len(files) > limit {
		return &FieldError{Field: field, Err: ErrTooManyFiles, msg: fmt.Sprintf("%d files, max %d", len(files), limit)}
	}

	for _, f := range files {
		if !allowed(field, ContentType(f)) {
			return &FieldError{Field: field, Err: ErrUnsupportedFile, msg: fmt.Sprintf("file %q", f.FileName)}
		}
	}
	return nil
}

func allowed(field, contentType string) bool {
	if field == marketapi.FieldDocumentos {
		return allowedDocumentTypes[contentType]
	}
	return strings.HasPrefix(contentType, "image/")
}

// ContentType берет тип из заголовка части, иначе угадывает по расширению
func ContentType(f marketapi.File) string {
	ct := f.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(f.FileName)))
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return mediaType
	}
	return ct
}
