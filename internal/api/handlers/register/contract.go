package register

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
)

type AuthService interface {
	Register(ctx context.Context, store authService.SessionStore, req marketapi.RegisterRequest) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
