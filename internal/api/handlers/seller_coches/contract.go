package seller_coches

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type CochesService interface {
	ListOwn(ctx context.Context, token string) ([]*domain.Coche, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
