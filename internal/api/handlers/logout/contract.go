package logout

import (
	"context"

	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
)

type AuthService interface {
	Logout(ctx context.Context, store authService.SessionStore) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
