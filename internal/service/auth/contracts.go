package auth

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// AuthAPI интерфейс клиента REST API для входа и выхода
type AuthAPI interface {
	Login(ctx context.Context, req marketapi.LoginRequest) (*marketapi.AuthResponse, error)
	Register(ctx context.Context, req marketapi.RegisterRequest) (*marketapi.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

// SessionStore сессия текущего запроса
type SessionStore interface {
	SetSession(ctx context.Context, token string, user domain.User, roles []domain.Role) error
	ClearSession(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
