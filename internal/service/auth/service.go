package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// Service вход, регистрация и выход пользователя
type Service struct {
	api    AuthAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(api AuthAPI, logger Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// Login проверяет учетные данные через API и сохраняет сессию
func (s *Service) Login(ctx context.Context, store SessionStore, req marketapi.LoginRequest) (*domain.User, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, marketapi.ErrUnauthorized), errors.Is(err, marketapi.ErrBadRequest), errors.Is(err, marketapi.ErrNotFound):
			s.logger.Warn("Login: credentials rejected for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		default:
			s.logger.Error("Login: API error for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: Login - API error: %v", ErrInternal, err)
		}
	}

	if err := s.persist(ctx, store, "Login", resp); err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%d signed in", resp.User.ID)
	return &resp.User, nil
}

// Register создает пользователя через API и сразу открывает сессию
func (s *Service) Register(ctx context.Context, store SessionStore, req marketapi.RegisterRequest) (*domain.User, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, marketapi.ErrConflict):
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		case errors.Is(err, marketapi.ErrBadRequest):
			s.logger.Warn("Register: rejected for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			s.logger.Error("Register: API error for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: Register - API error: %v", ErrInternal, err)
		}
	}

	if err := s.persist(ctx, store, "Register", resp); err != nil {
		return nil, err
	}

	s.logger.Info("Register: user id=%d registered", resp.User.ID)
	return &resp.User, nil
}

// Logout уведомляет API и очищает сессию.
// Ошибка API не мешает выходу: локальная сессия очищается в любом случае.
func (s *Service) Logout(ctx context.Context, store SessionStore) error {
	token, err := store.Token(ctx)
	if err != nil {
		s.logger.Warn("Logout: failed to read token: %v", err)
	}

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.logger.Warn("Logout: API logout failed: %v", err)
		}
	}

	if err := store.ClearSession(ctx); err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: Logout - clear session: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) persist(ctx context.Context, store SessionStore, op string, resp *marketapi.AuthResponse) error {
	roles, unknown := domain.ParseRoleSet(resp.Roles)
	if len(unknown) > 0 {
		s.logger.Warn("%s: API returned unknown roles %v for user id=%d", op, unknown, resp.User.ID)
	}

	if err := store.SetSession(ctx, resp.Token, resp.User, roles.List()); err != nil {
		s.logger.Error("%s: failed to persist session for user id=%d: %v", op, resp.User.ID, err)
		return fmt.Errorf("%w: %s - persist session: %v", ErrInternal, op, err)
	}
	return nil
}
