package publish_coche

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	publishCoche "github.com/m04kA/SMC-CarMarketWeb/internal/usecase/publish_coche"
)

type PublishCocheUseCase interface {
	Execute(ctx context.Context, req *publishCoche.Request) (*publishCoche.Response, error)
}

type CatalogService interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
	Modelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
