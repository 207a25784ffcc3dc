package edit_coche

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

type CochesService interface {
	GetOwn(ctx context.Context, userID, id int64) (*domain.Coche, error)
	Update(ctx context.Context, token string, id int64, in marketapi.CocheInput) (*domain.Coche, error)
	Catalog(ctx context.Context) (*domain.Catalog, error)
	Modelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
