package manage_media

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

type CochesService interface {
	GetOwn(ctx context.Context, userID, id int64) (*domain.Coche, error)
	AddImages(ctx context.Context, token string, id int64, files []marketapi.File) error
	DeleteImage(ctx context.Context, token string, id, imageID int64) error
	AddDocuments(ctx context.Context, token string, id int64, files []marketapi.File) error
	DeleteDocument(ctx context.Context, token string, id, docID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
