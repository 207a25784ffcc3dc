package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик HTTP слоя
type Metrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
	ObserveGuard(policy, outcome string)
}

// UserValidator проверяет токен на стороне REST API
type UserValidator interface {
	ValidateUser(ctx context.Context, token string) (*marketapi.ValidateUserResponse, error)
}
