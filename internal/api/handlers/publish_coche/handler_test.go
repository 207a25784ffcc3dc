package publish_coche

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/guard"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/middleware"
	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/session"
	"github.com/m04kA/SMC-CarMarketWeb/internal/uploads"
	publishCoche "github.com/m04kA/SMC-CarMarketWeb/internal/usecase/publish_coche"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRenderer struct {
	status int
	name   string
	page   views.Page
}

func (f *fakeRenderer) Render(w http.ResponseWriter, _ *http.Request, status int, name string, page views.Page) {
	f.status, f.name, f.page = status, name, page
	w.WriteHeader(status)
}

type fakeUseCase struct {
	req      *publishCoche.Request
	images   []string
	err      error
	executed int
}

func (f *fakeUseCase) Execute(_ context.Context, req *publishCoche.Request) (*publishCoche.Response, error) {
	f.executed++
	f.req = req
	for _, img := range req.Images {
		body, _ := io.ReadAll(img.Content)
		f.images = append(f.images, img.FileName+":"+string(body))
	}
	if f.err != nil {
		return nil, f.err
	}
	return &publishCoche.Response{ID: 42}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) Catalog(context.Context) (*domain.Catalog, error) {
	return &domain.Catalog{Marcas: []domain.Marca{{ID: 1, Nombre: "Seat"}}}, nil
}

func (fakeCatalog) Modelos(_ context.Context, marcaID int64) ([]domain.Modelo, error) {
	return []domain.Modelo{{ID: 2, MarcaID: marcaID, Nombre: "Ibiza"}}, nil
}

func validFields() map[string]string {
	return map[string]string{
		"marca_id":     "1",
		"modelo_id":    "2",
		"categoria_id": "3",
		"provincia_id": "28",
		"anio":         "2018",
		"kilometraje":  "85000",
		"precio":       "12500",
		"combustible":  "diesel",
		"descripcion":  "Único dueño",
	}
}

func multipartRequest(t *testing.T, fields map[string]string, images map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="imagenes"; filename=%q`, name))
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/vendedor/publicar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func withSeller(t *testing.T, r *http.Request) (*http.Request, *session.MemoryStorage) {
	t.Helper()
	storage := session.NewMemoryStorage()
	store := session.NewStore(storage)
	require.NoError(t, store.SetSession(r.Context(), "tok-1", domain.User{ID: 7, Nombre: "Ana"}, []domain.Role{domain.RoleVendedor}))
	snapshot, err := store.Load(r.Context())
	require.NoError(t, err)

	auth := &middleware.Auth{Store: store, Snapshot: snapshot, State: guard.StateAuthenticated}
	return r.WithContext(middleware.WithAuth(r.Context(), auth)), storage
}

func TestHandler_Show(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewHandler(&fakeUseCase{}, fakeCatalog{}, renderer, nopLogger{})

	req, _ := withSeller(t, httptest.NewRequest(http.MethodGet, "/vendedor/publicar", nil))
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	assert.Equal(t, http.StatusOK, renderer.status)
	assert.Equal(t, views.PageCocheForm, renderer.name)
	data, ok := renderer.page.Data.(views.CocheFormData)
	require.True(t, ok)
	assert.Equal(t, "/vendedor/publicar", data.Action)
	assert.False(t, data.Editing)
	require.NotNil(t, data.Catalog)
	assert.Len(t, data.Catalog.Marcas, 1)
}

func TestHandler_Handle_InvalidFormSkipsAPI(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := &fakeUseCase{}
	h := NewHandler(uc, fakeCatalog{}, renderer, nopLogger{})

	fields := validFields()
	delete(fields, "marca_id")
	fields["precio"] = "0"

	req, _ := withSeller(t, multipartRequest(t, fields, nil))
	h.Handle(httptest.NewRecorder(), req)

	assert.Equal(t, http.StatusUnprocessableEntity, renderer.status)
	assert.Zero(t, uc.executed)
	assert.NotEmpty(t, renderer.page.Errors.Get("marca_id"))
	assert.NotEmpty(t, renderer.page.Errors.Get("precio"))
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, fakeCatalog{}, &fakeRenderer{}, nopLogger{})

	req, _ := withSeller(t, multipartRequest(t, validFields(), map[string]string{"front.jpg": "jpeg-bytes"}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/vendedor/coches?ok=1", rec.Header().Get("Location"))

	require.Equal(t, 1, uc.executed)
	assert.Equal(t, "tok-1", uc.req.Token)
	assert.Equal(t, int64(1), uc.req.Input.MarcaID)
	assert.Equal(t, 2018, uc.req.Input.Anio)
	assert.Equal(t, 12500.0, uc.req.Input.Precio)
	assert.Equal(t, domain.FuelDiesel, uc.req.Input.Combustible)
	assert.Equal(t, []string{"front.jpg:jpeg-bytes"}, uc.images)
	assert.Empty(t, uc.req.Documents)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
		alert  string
	}{
		{"too many files", fmt.Errorf("%w: 21 images", publishCoche.ErrTooManyFiles), http.StatusUnprocessableEntity, "imagenes", ""},
		{"unsupported file", fmt.Errorf("%w: image", publishCoche.ErrUnsupportedFile), http.StatusUnprocessableEntity, "imagenes", ""},
		{"too many documents", &uploads.FieldError{Field: "documentos", Err: uploads.ErrTooManyFiles}, http.StatusUnprocessableEntity, "documentos", ""},
		{"unsupported document", fmt.Errorf("validate: %w", &uploads.FieldError{Field: "documentos", Err: uploads.ErrUnsupportedFile}), http.StatusUnprocessableEntity, "documentos", ""},
		{"forbidden", publishCoche.ErrForbidden, http.StatusForbidden, "", msgForbidden},
		{"rejected", publishCoche.ErrRejected, http.StatusUnprocessableEntity, "", msgRejected},
		{"api down", publishCoche.ErrInternal, http.StatusBadGateway, "", "No se pudo completar la operación. Inténtalo de nuevo más tarde."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &fakeRenderer{}
			h := NewHandler(&fakeUseCase{err: tt.err}, fakeCatalog{}, renderer, nopLogger{})

			req, _ := withSeller(t, multipartRequest(t, validFields(), nil))
			h.Handle(httptest.NewRecorder(), req)

			assert.Equal(t, tt.status, renderer.status)
			assert.Equal(t, tt.alert, renderer.page.Alert)
			if tt.field != "" {
				assert.NotEmpty(t, renderer.page.Errors.Get(tt.field))
				assert.Len(t, renderer.page.Errors, 1)
			}
			assert.Equal(t, "12500", renderer.page.Form.(forms.CocheForm).Precio)
		})
	}
}

func TestHandler_Handle_ExpiredSession(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: publishCoche.ErrUnauthorized}, fakeCatalog{}, &fakeRenderer{}, nopLogger{})

	req, storage := withSeller(t, multipartRequest(t, validFields(), nil))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, domain.RouteLogin, rec.Header().Get("Location"))

	_, found, err := storage.Get(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.False(t, found)
}
