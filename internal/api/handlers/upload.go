package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// UploadedFiles открывает файлы поля multipart формы.
// Вызывающий обязан вызвать release после отправки файлов.
func UploadedFiles(r *http.Request, field string) (files []marketapi.File, release func(), err error) {
	var opened []io.Closer
	release = func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	if r.MultipartForm == nil {
		return nil, release, nil
	}

	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			release()
			return nil, func() {}, fmt.Errorf("open uploaded file %q: %w", header.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, fileFromHeader(field, header, f))
	}

	return files, release, nil
}

func fileFromHeader(field string, header *multipart.FileHeader, content io.Reader) marketapi.File {
	return marketapi.File{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}
}
