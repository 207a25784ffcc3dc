package profile

import (
	"context"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	profileService "github.com/m04kA/SMC-CarMarketWeb/internal/service/profile"
)

type ProfileService interface {
	Get(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, store profileService.SessionStore, token string, roles []domain.Role, req marketapi.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, token string, req marketapi.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
