package delete_coche

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/guard"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRenderer struct {
	status int
	name   string
}

func (f *fakeRenderer) Render(w http.ResponseWriter, _ *http.Request, status int, name string, _ views.Page) {
	f.status, f.name = status, name
	w.WriteHeader(status)
}

type fakeService struct {
	coche     *domain.Coche
	getErr    error
	deleteErr error
	deleted   []int64
}

func (f *fakeService) GetOwn(_ context.Context, userID, id int64) (*domain.Coche, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.coche.ID != id || !f.coche.IsOwnedBy(userID) {
		return nil, coches.ErrForbidden
	}
	return f.coche, nil
}

func (f *fakeService) Delete(_ context.Context, _ string, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func newRequest(t *testing.T, id string) (*http.Request, *session.Store) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/vendedor/coches/"+id+"/eliminar", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})

	store := session.NewStore(session.NewMemoryStorage())
	require.NoError(t, store.SetSession(req.Context(), "tok", domain.User{ID: 7}, []domain.Role{domain.RoleVendedor}))
	snapshot, err := store.Load(req.Context())
	require.NoError(t, err)
	auth := &middleware.Auth{Store: store, Snapshot: snapshot, State: guard.StateAuthenticated}
	return req.WithContext(middleware.WithAuth(req.Context(), auth)), store
}

func TestHandler_DeletesOwnCoche(t *testing.T) {
	svc := &fakeService{coche: &domain.Coche{ID: 4, VendedorID: 7}}
	h := NewHandler(svc, &fakeRenderer{}, nopLogger{})

	req, _ := newRequest(t, "4")
	w := httptest.NewRecorder()
	h.Handle(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, listPath, w.Header().Get("Location"))
	assert.Equal(t, []int64{4}, svc.deleted)
}

func TestHandler_ForeignCocheIsNotDeleted(t *testing.T) {
	svc := &fakeService{coche: &domain.Coche{ID: 4, VendedorID: 99}}
	renderer := &fakeRenderer{}
	h := NewHandler(svc, renderer, nopLogger{})

	req, _ := newRequest(t, "4")
	h.Handle(httptest.NewRecorder(), req)

	assert.Equal(t, http.StatusNotFound, renderer.status)
	assert.Equal(t, views.PageError, renderer.name)
	assert.Empty(t, svc.deleted)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		getErr    error
		deleteErr error
		status    int
		deleted   int
	}{
		{name: "bad id", id: "abc", status: http.StatusNotFound},
		{name: "not found", id: "4", getErr: fmt.Errorf("%w: Get", coches.ErrNotFound), status: http.StatusNotFound},
		{name: "lookup failed", id: "4", getErr: fmt.Errorf("%w: Get", coches.ErrInternal), status: http.StatusBadGateway},
		{name: "delete failed", id: "4", deleteErr: fmt.Errorf("%w: Delete", coches.ErrInternal), status: http.StatusBadGateway, deleted: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{coche: &domain.Coche{ID: 4, VendedorID: 7}, getErr: tt.getErr, deleteErr: tt.deleteErr}
			renderer := &fakeRenderer{}
			h := NewHandler(svc, renderer, nopLogger{})

			req, _ := newRequest(t, tt.id)
			h.Handle(httptest.NewRecorder(), req)

			assert.Equal(t, tt.status, renderer.status)
			assert.Len(t, svc.deleted, tt.deleted)
		})
	}
}

func TestHandler_ExpiredSession(t *testing.T) {
	svc := &fakeService{coche: &domain.Coche{ID: 4, VendedorID: 7}, deleteErr: fmt.Errorf("%w: Delete", coches.ErrUnauthorized)}
	h := NewHandler(svc, &fakeRenderer{}, nopLogger{})

	req, store := newRequest(t, "4")
	w := httptest.NewRecorder()
	h.Handle(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, domain.RouteLogin, w.Header().Get("Location"))
	authenticated, err := store.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, authenticated)
}
