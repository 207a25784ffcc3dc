package get_coche

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type CochesService interface {
	Get(ctx context.Context, id int64) (*domain.Coche, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
