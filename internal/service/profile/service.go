package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// Service сервис профиля пользователя
type Service struct {
	api    ProfileAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(api ProfileAPI, logger Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// Get загружает профиль из API
func (s *Service) Get(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.api.GetProfile(ctx, token)
	if err != nil {
		s.logger.Warn("Get: failed to fetch profile: %v", err)
		return nil, mapError("Get", err)
	}
	return user, nil
}

// Update сохраняет профиль и обновляет пользователя в сессии,
// чтобы шапка страницы сразу показывала новые данные
func (s *Service) Update(ctx context.Context, store SessionStore, token string, roles []domain.Role, req marketapi.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.api.UpdateProfile(ctx, token, req)
	if err != nil {
		s.logger.Warn("Update: failed to update profile: %v", err)
		return nil, mapError("Update", err)
	}

	if err := store.SetSession(ctx, token, *user, roles); err != nil {
		s.logger.Error("Update: failed to refresh session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Update - refresh session: %v", ErrInternal, err)
	}

	s.logger.Info("Update: profile of user id=%d updated", user.ID)
	return user, nil
}

// ChangePassword меняет пароль пользователя
func (s *Service) ChangePassword(ctx context.Context, token string, req marketapi.ChangePasswordRequest) error {
	if err := s.api.ChangePassword(ctx, token, req); err != nil {
		s.logger.Warn("ChangePassword: failed: %v", err)
		return mapError("ChangePassword", err)
	}
	s.logger.Info("ChangePassword: password changed")
	return nil
}

func mapError(op string, err error) error {
	switch {
	case errors.Is(err, marketapi.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrUnauthorized, op)
	case errors.Is(err, marketapi.ErrConflict):
		return fmt.Errorf("%w: %s", ErrEmailTaken, op)
	case errors.Is(err, marketapi.ErrBadRequest), errors.Is(err, marketapi.ErrForbidden):
		return fmt.Errorf("%w: %s - %v", ErrRejected, op, err)
	default:
		return fmt.Errorf("%w: %s - API error: %v", ErrInternal, op, err)
	}
}
