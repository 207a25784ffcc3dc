package verify_coche

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/service/coches"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRenderer struct{ status int }

func (f *fakeRenderer) Render(w http.ResponseWriter, _ *http.Request, status int, _ string, _ views.Page) {
	f.status = status
	w.WriteHeader(status)
}

type fakeService struct {
	id         int64
	verificado *bool
	err        error
}

func (f *fakeService) Verify(_ context.Context, _ string, id int64, verificado bool) error {
	f.id, f.verificado = id, &verificado
	return f.err
}

func request(id, verificado string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/coches/"+id+"/verificar",
		strings.NewReader(url.Values{"verificado": {verificado}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		verificado string
		err        error
		status     int
		location   string
		called     bool
	}{
		{"verify", "4", "true", nil, http.StatusSeeOther, "/admin/coches", true},
		{"unverify", "4", "false", nil, http.StatusSeeOther, "/admin/coches", true},
		{"bad flag", "4", "maybe", nil, http.StatusBadRequest, "", false},
		{"bad id", "abc", "true", nil, http.StatusNotFound, "", false},
		{"not found", "4", "true", coches.ErrNotFound, http.StatusNotFound, "", true},
		{"api down", "4", "true", coches.ErrInternal, http.StatusBadGateway, "", true},
		{"expired session", "4", "true", coches.ErrUnauthorized, http.StatusSeeOther, "/login", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, &fakeRenderer{}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.id, tt.verificado))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
			assert.Equal(t, tt.called, svc.verificado != nil)
			if tt.called {
				assert.Equal(t, int64(4), svc.id)
				assert.Equal(t, tt.verificado == "true", *svc.verificado)
			}
		})
	}
}
