package publish_coche

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// CochesAPI интерфейс клиента REST API для создания объявления
type CochesAPI interface {
	CreateCoche(ctx context.Context, token string, in marketapi.CocheInput, files []marketapi.File) (*domain.Coche, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
