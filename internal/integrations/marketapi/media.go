package marketapi

import (
	"context"
	"net/http"
)

// Имена полей multipart формы для файлов
const (
	FieldImagenes   = "imagenes"
	FieldDocumentos = "documentos"
)

// AddImages POST /coches/:id/imagenes (multipart)
func (c *Client) AddImages(ctx context.Context, token string, cocheID int64, files []File) error {
	return c.do(ctx, call{
		op:     "AddImages",
		method: http.MethodPost,
		path:   idPath("/coches/%d/imagenes", cocheID),
		token:  token,
		files:  withField(files, FieldImagenes),
	}, nil)
}

// DeleteImage DELETE /coches/:id/imagenes/:imgId
func (c *Client) DeleteImage(ctx context.Context, token string, cocheID, imageID int64) error {
	return c.do(ctx, call{
		op:     "DeleteImage",
		method: http.MethodDelete,
		path:   idPath("/coches/%d/imagenes/%d", cocheID, imageID),
		token:  token,
	}, nil)
}

// AddDocuments POST /coches/:id/documentos (multipart)
func (c *Client) AddDocuments(ctx context.Context, token string, cocheID int64, files []File) error {
	return c.do(ctx, call{
		op:     "AddDocuments",
		method: http.MethodPost,
		path:   idPath("/coches/%d/documentos", cocheID),
		token:  token,
		files:  withField(files, FieldDocumentos),
	}, nil)
}

// DeleteDocument DELETE /coches/:id/documentos/:docId
func (c *Client) DeleteDocument(ctx context.Context, token string, cocheID, docID int64) error {
	return c.do(ctx, call{
		op:     "DeleteDocument",
		method: http.MethodDelete,
		path:   idPath("/coches/%d/documentos/%d", cocheID, docID),
		token:  token,
	}, nil)
}

// withField проставляет имя поля файлам, у которых оно не задано
func withField(files []File, field string) []File {
	out := make([]File, len(files))
	for i, f := range files {
		if f.FieldName == "" {
			f.FieldName = field
		}
		out[i] = f
	}
	return out
}
