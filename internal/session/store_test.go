package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

type failingStorage struct {
	err error
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f *failingStorage) SetMany(context.Context, map[string]string) error { return f.err }
func (f *failingStorage) Delete(context.Context, ...string) error          { return f.err }

func TestStore_SetSession(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	user := domain.User{ID: 7, Nombre: "Lucía", Email: "lucia@example.com"}
	require.NoError(t, store.SetSession(ctx, "tok-1", user, []domain.Role{domain.RoleVendedor}))

	authenticated, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user, *current)

	for _, role := range domain.AllRoles {
		has, err := store.HasRole(ctx, role)
		require.NoError(t, err)
		assert.Equal(t, role == domain.RoleVendedor, has, "role %s", role)
	}
}

func TestStore_SetSessionPersistsWireFormat(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.SetSession(ctx, "tok", domain.User{ID: 1, Nombre: "Ana", Email: "ana@example.com"},
		[]domain.Role{domain.RoleAdmin, domain.RoleVendedor}))

	token, ok, _ := storage.Get(ctx, KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	roles, ok, _ := storage.Get(ctx, KeyRoles)
	assert.True(t, ok)
	assert.JSONEq(t, `["admin","vendedor"]`, roles)

	user, ok, _ := storage.Get(ctx, KeyUser)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":1,"nombre":"Ana","email":"ana@example.com"}`, user)
}

func TestStore_SetSessionRejectsEmptyToken(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	err := store.SetSession(ctx, "", domain.User{ID: 1}, nil)
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, ok, _ := storage.Get(ctx, KeyUser)
	assert.False(t, ok)
}

func TestStore_ClearSession(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.SetSession(ctx, "tok", domain.User{ID: 1}, []domain.Role{domain.RoleAdmin}))
	require.NoError(t, store.ClearSession(ctx))

	authenticated, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	user, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	has, err := store.HasRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStore_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, snapshot.IsAuthenticated())
	assert.Nil(t, snapshot.User)
	assert.Empty(t, snapshot.Roles)
}

func TestStore_MalformedUser(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetMany(ctx, map[string]string{KeyToken: "tok", KeyUser: "{not json"}))
	store := NewStore(storage)

	_, err := store.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrMalformedSession)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrMalformedSession)

	// токен при этом читается
	authenticated, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)
}

func TestStore_MalformedRoles(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetMany(ctx, map[string]string{KeyRoles: `"admin"`}))
	store := NewStore(storage)

	_, err := store.HasRole(ctx, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrMalformedSession)
}

func TestStore_UnknownRolesAreSkipped(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetMany(ctx, map[string]string{
		KeyToken: "tok",
		KeyRoles: `["vendedor","superuser"]`,
	}))
	store := NewStore(storage)

	snapshot, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.HasRole(domain.RoleVendedor))
	assert.Equal(t, []string{"superuser"}, snapshot.UnknownRoles)
}

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	store := NewStore(&failingStorage{err: boom})

	assert.ErrorIs(t, store.SetSession(ctx, "tok", domain.User{}, nil), ErrStorage)
	assert.ErrorIs(t, store.ClearSession(ctx), ErrStorage)

	_, err := store.IsAuthenticated(ctx)
	assert.ErrorIs(t, err, ErrStorage)
}
