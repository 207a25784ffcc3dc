package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// Snapshot состояние сессии, прочитанное один раз на запрос
type Snapshot struct {
	Token string
	User  *domain.User
	Roles domain.RoleSet
	// UnknownRoles роли из хранилища, которых клиент не знает
	UnknownRoles []string
}

// IsAuthenticated возвращает true, если в сессии есть токен
func (s *Snapshot) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// HasRole возвращает true, если роль есть в сессии
func (s *Snapshot) HasRole(role domain.Role) bool {
	return s != nil && s.Roles.Has(role)
}

// Store сессия пользователя поверх Storage
type Store struct {
	storage Storage
}

// NewStore создает сессию над переданным хранилищем
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// SetSession сохраняет токен, пользователя и роли одной записью.
// Если сериализация не удалась, в хранилище ничего не пишется.
func (s *Store) SetSession(ctx context.Context, token string, user domain.User, roles []domain.Role) error {
	if token == "" {
		return ErrEmptyToken
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: SetSession - marshal user: %v", ErrMalformedSession, err)
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	rolesJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("%w: SetSession - marshal roles: %v", ErrMalformedSession, err)
	}

	if err := s.storage.SetMany(ctx, map[string]string{
		KeyToken: token,
		KeyUser:  string(userJSON),
		KeyRoles: string(rolesJSON),
	}); err != nil {
		return fmt.Errorf("%w: SetSession: %v", ErrStorage, err)
	}

	return nil
}

// ClearSession удаляет все ключи сессии
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.storage.Delete(ctx, Keys...); err != nil {
		return fmt.Errorf("%w: ClearSession: %v", ErrStorage, err)
	}
	return nil
}

// Token возвращает сохранённый токен или пустую строку
func (s *Store) Token(ctx context.Context) (string, error) {
	token, _, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		return "", fmt.Errorf("%w: Token: %v", ErrStorage, err)
	}
	return token, nil
}

// IsAuthenticated возвращает true тогда и только тогда, когда токен присутствует
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// CurrentUser возвращает сохранённого пользователя или nil, если его нет.
// Битый JSON не чинится: вызывающий код обязан обработать ErrMalformedSession.
func (s *Store) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, ok, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("%w: CurrentUser: %v", ErrStorage, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: CurrentUser - parse user: %v", ErrMalformedSession, err)
	}
	return &user, nil
}

// Roles возвращает набор известных ролей и список неизвестных
func (s *Store) Roles(ctx context.Context) (domain.RoleSet, []string, error) {
	raw, ok, err := s.storage.Get(ctx, KeyRoles)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: Roles: %v", ErrStorage, err)
	}
	if !ok || raw == "" {
		return domain.NewRoleSet(), nil, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, nil, fmt.Errorf("%w: Roles - parse roles: %v", ErrMalformedSession, err)
	}

	set, unknown := domain.ParseRoleSet(names)
	return set, unknown, nil
}

// HasRole возвращает true, если роль входит в сохранённый набор
func (s *Store) HasRole(ctx context.Context, role domain.Role) (bool, error) {
	roles, _, err := s.Roles(ctx)
	if err != nil {
		return false, err
	}
	return roles.Has(role), nil
}

// Load читает всю сессию целиком
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	roles, unknown, err := s.Roles(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Token:        token,
		User:         user,
		Roles:        roles,
		UnknownRoles: unknown,
	}, nil
}
