package profile

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// ProfileAPI интерфейс клиента REST API для профиля
type ProfileAPI interface {
	GetProfile(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, req marketapi.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, token string, req marketapi.ChangePasswordRequest) error
}

// SessionStore сессия текущего запроса
type SessionStore interface {
	SetSession(ctx context.Context, token string, user domain.User, roles []domain.Role) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
