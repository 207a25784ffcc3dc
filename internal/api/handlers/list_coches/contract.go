package list_coches

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type CochesService interface {
	List(ctx context.Context, filter domain.CocheFilter) ([]*domain.Coche, error)
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
