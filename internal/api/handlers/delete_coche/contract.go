package delete_coche

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type CochesService interface {
	GetOwn(ctx context.Context, userID, id int64) (*domain.Coche, error)
	Delete(ctx context.Context, token string, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
