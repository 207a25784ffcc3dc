package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "950 €", FormatPrice(950))
	assert.Equal(t, "12.500 €", FormatPrice(12500.4))
	assert.Equal(t, "1.250.000 €", FormatPrice(1250000))
	assert.Equal(t, "85.000 km", FormatKm(85000))
	assert.Equal(t, "0 km", FormatKm(0))
	assert.Equal(t, "Diésel", FuelLabel(domain.FuelDiesel))
	assert.Equal(t, "vapor", FuelLabel("vapor"))
}

func TestRenderer_AllPagesParse(t *testing.T) {
	rd, err := New(nopLogger{})
	require.NoError(t, err)
	assert.Len(t, rd.pages, len(pages))
}

func TestRenderer_RendersFieldErrorsWithStatus(t *testing.T) {
	rd, err := New(nopLogger{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rd.Render(rec, req, http.StatusUnprocessableEntity, PageLogin, Page{
		Title:  "Entrar",
		Form:   forms.LoginForm{Email: "not-an-email"},
		Errors: forms.FieldErrors{"email": forms.MsgInvalidEmail},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Introduce un email válido")
	assert.Contains(t, body, `value="not-an-email"`)
	assert.Contains(t, body, `href="/login"`)
}

func TestRenderer_LayoutShowsUser(t *testing.T) {
	rd, err := New(nopLogger{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rd.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, PageHome, Page{
		Title:         "Coches",
		User:          &domain.User{Nombre: "Ana", Apellidos: "Ruiz"},
		Authenticated: true,
		Vendedor:      true,
		Data: HomeData{Coches: []*domain.Coche{{
			ID: 3, Marca: "Seat", Modelo: "Ibiza", Anio: 2019, Precio: 9900, Combustible: domain.FuelGasolina,
		}}},
	})

	body := rec.Body.String()
	assert.Contains(t, body, "Ana Ruiz")
	assert.Contains(t, body, "/vendedor/publicar")
	assert.NotContains(t, body, "/admin/coches")
	assert.Contains(t, body, "Seat Ibiza")
	assert.Contains(t, body, "9.900 €")
}

func TestRenderer_Loading(t *testing.T) {
	rd, err := New(nopLogger{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rd.Loading().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cargando…")
}

func TestRenderer_UnknownPage(t *testing.T) {
	rd, err := New(nopLogger{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rd.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing.html", Page{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
