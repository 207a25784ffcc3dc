package login

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, store authService.SessionStore, req marketapi.LoginRequest) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
