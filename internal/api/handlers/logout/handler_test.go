package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/guard"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	authService "github.com/m04kA/SMC-CarMarketWeb/internal/service/auth"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAPI struct {
	logoutErr error
	tokens    []string
}

func (f *fakeAPI) Login(context.Context, marketapi.LoginRequest) (*marketapi.AuthResponse, error) {
	return nil, marketapi.ErrInternal
}

func (f *fakeAPI) Register(context.Context, marketapi.RegisterRequest) (*marketapi.AuthResponse, error) {
	return nil, marketapi.ErrInternal
}

func (f *fakeAPI) Logout(_ context.Context, token string) error {
	f.tokens = append(f.tokens, token)
	return f.logoutErr
}

func TestHandler_Logout(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
	}{
		{"api accepted", nil},
		{"api down", marketapi.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{logoutErr: tt.logoutErr}
			h := NewHandler(authService.NewService(api, nopLogger{}), nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			store := session.NewStore(session.NewMemoryStorage())
			require.NoError(t, store.SetSession(req.Context(), "jwt", domain.User{ID: 7}, []domain.Role{domain.RoleVendedor}))
			snapshot, err := store.Load(req.Context())
			require.NoError(t, err)
			auth := &middleware.Auth{Store: store, Snapshot: snapshot, State: guard.StateAuthenticated}

			w := httptest.NewRecorder()
			h.Handle(w, req.WithContext(middleware.WithAuth(req.Context(), auth)))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, domain.RouteLogin, w.Header().Get("Location"))
			assert.Equal(t, []string{"jwt"}, api.tokens)
			assert.Equal(t, guard.StateUnauthenticated, auth.State)

			authenticated, err := store.IsAuthenticated(context.Background())
			require.NoError(t, err)
			assert.False(t, authenticated)
		})
	}
}

func TestHandler_LogoutWithoutSession(t *testing.T) {
	api := &fakeAPI{}
	h := NewHandler(authService.NewService(api, nopLogger{}), nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domain.RouteLogin, w.Header().Get("Location"))
	assert.Empty(t, api.tokens)
}
