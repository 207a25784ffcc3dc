package list_modelos

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type CatalogService interface {
	Modelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
