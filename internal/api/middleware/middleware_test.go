package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
	"github.com/m04kA/SMC-CarMarketWeb/pkg/traceid"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	mu     sync.Mutex
	http   []string
	guards []string
}

func (m *fakeMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.http = append(m.http, fmt.Sprintf("%s %s %d", method, route, status))
}

func (m *fakeMetrics) ObserveGuard(policy, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guards = append(m.guards, policy+":"+outcome)
}

type fakeValidator struct {
	resp  *marketapi.ValidateUserResponse
	err   error
	calls int
}

func (f *fakeValidator) ValidateUser(_ context.Context, _ string) (*marketapi.ValidateUserResponse, error) {
	f.calls++
	return f.resp, f.err
}

type failingBackend struct{}

func (failingBackend) Open(http.ResponseWriter, *http.Request) (session.Storage, error) {
	return nil, fmt.Errorf("boom")
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("page"))
}

func newRouter(backend session.Backend, g *Guard) *mux.Router {
	r := mux.NewRouter()
	r.Use(Session(backend, nopLogger{}))

	r.HandleFunc("/", okHandler)

	protected := r.PathPrefix("").Subrouter()
	protected.Use(g.RequireAuth)
	protected.HandleFunc("/profile", okHandler)
	protected.HandleFunc("/vendedor/publicar", okHandler)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(g.RequireAdmin)
	admin.HandleFunc("/coches", okHandler)

	return r
}

func seed(t *testing.T, storage session.Storage, roles ...domain.Role) {
	t.Helper()
	store := session.NewStore(storage)
	require.NoError(t, store.SetSession(context.Background(), "tok", domain.User{ID: 1, Nombre: "Ana", Email: "ana@example.com"}, roles))
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGuard_Redirects(t *testing.T) {
	tests := []struct {
		name     string
		roles    []domain.Role
		loggedIn bool
		path     string
		status   int
		location string
	}{
		{"anonymous on profile", nil, false, "/profile", http.StatusSeeOther, "/login"},
		{"anonymous on admin", nil, false, "/admin/coches", http.StatusSeeOther, "/login"},
		{"seller on admin", []domain.Role{domain.RoleVendedor}, true, "/admin/coches", http.StatusSeeOther, "/"},
		{"seller on publish", []domain.Role{domain.RoleVendedor}, true, "/vendedor/publicar", http.StatusOK, ""},
		{"admin on admin", []domain.Role{domain.RoleAdmin}, true, "/admin/coches", http.StatusOK, ""},
		{"anonymous on public page", nil, false, "/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := session.NewMemoryBackend()
			if tt.loggedIn {
				seed(t, backend.Storage, tt.roles...)
			}
			router := newRouter(backend, NewGuard(nil, nil, nopLogger{}, nil))

			rec := serve(router, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestGuard_LoadingWhenSessionUnresolved(t *testing.T) {
	metrics := &fakeMetrics{}
	router := newRouter(failingBackend{}, NewGuard(nil, metrics, nopLogger{}, nil))

	rec := serve(router, "/profile")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Cargando")
	assert.Equal(t, []string{"authenticated:loading"}, metrics.guards)

	// public pages still render
	assert.Equal(t, http.StatusOK, serve(router, "/").Code)
}

func TestGuard_CustomLoadingHandler(t *testing.T) {
	loading := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<p>Cargando…</p>"))
	})
	g := NewGuard(nil, nil, nopLogger{}, loading)

	rec := httptest.NewRecorder()
	g.RequireAdmin(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/coches", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "<p>Cargando…</p>", rec.Body.String())
}

func TestSession_MalformedSessionIsCleared(t *testing.T) {
	backend := session.NewMemoryBackend()
	require.NoError(t, backend.Storage.SetMany(context.Background(), map[string]string{
		session.KeyToken: "tok",
		session.KeyUser:  "{broken",
		session.KeyRoles: `["admin"]`,
	}))
	router := newRouter(backend, NewGuard(nil, nil, nopLogger{}, nil))

	rec := serve(router, "/profile")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	_, ok, err := backend.Storage.Get(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_PutsAuthInContext(t *testing.T) {
	backend := session.NewMemoryBackend()
	seed(t, backend.Storage, domain.RoleVendedor, domain.RoleUsuario)

	var got *Auth
	h := Session(backend, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetAuth(r.Context())
	}))
	serve(h, "/")

	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Snapshot.User.Nombre)
	assert.True(t, got.Snapshot.HasRole(domain.RoleVendedor))
	assert.False(t, got.Snapshot.HasRole(domain.RoleAdmin))
}

func TestGuard_RevalidateUnauthorizedClearsSession(t *testing.T) {
	backend := session.NewMemoryBackend()
	seed(t, backend.Storage, domain.RoleAdmin)
	validator := &fakeValidator{err: fmt.Errorf("%w: ValidateUser: expired", marketapi.ErrUnauthorized)}
	router := newRouter(backend, NewGuard(validator, nil, nopLogger{}, nil))

	rec := serve(router, "/profile")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, 1, validator.calls)

	authenticated, err := session.NewStore(backend.Storage).IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestGuard_RevalidateRefreshesRoles(t *testing.T) {
	backend := session.NewMemoryBackend()
	seed(t, backend.Storage, domain.RoleAdmin)
	validator := &fakeValidator{resp: &marketapi.ValidateUserResponse{
		User:  domain.User{ID: 1, Nombre: "Ana", Email: "ana@example.com"},
		Roles: []string{"vendedor"},
	}}
	router := newRouter(backend, NewGuard(validator, nil, nopLogger{}, nil))

	rec := serve(router, "/admin/coches")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	isAdmin, err := session.NewStore(backend.Storage).HasRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestGuard_RevalidateKeepsCacheOnOtherErrors(t *testing.T) {
	backend := session.NewMemoryBackend()
	seed(t, backend.Storage, domain.RoleVendedor)
	validator := &fakeValidator{err: fmt.Errorf("%w: ValidateUser: timeout", marketapi.ErrInternal)}
	router := newRouter(backend, NewGuard(validator, nil, nopLogger{}, nil))

	assert.Equal(t, http.StatusOK, serve(router, "/profile").Code)
}

func TestGuard_PublicPagesSkipRevalidation(t *testing.T) {
	backend := session.NewMemoryBackend()
	seed(t, backend.Storage, domain.RoleVendedor)
	validator := &fakeValidator{}
	router := newRouter(backend, NewGuard(validator, nil, nopLogger{}, nil))

	assert.Equal(t, http.StatusOK, serve(router, "/").Code)
	assert.Zero(t, validator.calls)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(metrics))
	r.HandleFunc("/coche/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	serve(r, "/coche/42")
	assert.Equal(t, []string{"GET /coche/{id} 404"}, metrics.http)
}

func TestTraceID(t *testing.T) {
	var seen string
	h := TraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = traceid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceid.Header, "abc-123")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(traceid.Header))

	rec = serve(h, "/")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(traceid.Header))
}

func TestAccessLog_RecoversPanic(t *testing.T) {
	h := AccessLog(nopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaput")
	}))

	rec := serve(h, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
