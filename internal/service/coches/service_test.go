package coches

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeAPI отвечает заранее заданными данными, err возвращается из всех методов
type fakeAPI struct {
	coche      *domain.Coche
	coches     []*domain.Coche
	err        error
	catalogErr error
	filters    []domain.CocheFilter
	verified   map[int64]bool
}

func (f *fakeAPI) ListCoches(_ context.Context, filter domain.CocheFilter) ([]*domain.Coche, error) {
	f.filters = append(f.filters, filter)
	return f.coches, f.err
}
func (f *fakeAPI) GetCoche(context.Context, int64) (*domain.Coche, error) { return f.coche, f.err }
func (f *fakeAPI) ListUserCoches(context.Context, string) ([]*domain.Coche, error) {
	return f.coches, f.err
}
func (f *fakeAPI) UpdateCoche(context.Context, string, int64, marketapi.CocheInput) (*domain.Coche, error) {
	return f.coche, f.err
}
func (f *fakeAPI) DeleteCoche(context.Context, string, int64) error { return f.err }
func (f *fakeAPI) VerifyCoche(_ context.Context, _ string, id int64, v bool) error {
	if f.err != nil {
		return f.err
	}
	if f.verified == nil {
		f.verified = map[int64]bool{}
	}
	f.verified[id] = v
	return nil
}
func (f *fakeAPI) AddImages(context.Context, string, int64, []marketapi.File) error    { return f.err }
func (f *fakeAPI) DeleteImage(context.Context, string, int64, int64) error             { return f.err }
func (f *fakeAPI) AddDocuments(context.Context, string, int64, []marketapi.File) error { return f.err }
func (f *fakeAPI) DeleteDocument(context.Context, string, int64, int64) error          { return f.err }
func (f *fakeAPI) ListMarcas(context.Context) ([]domain.Marca, error) {
	return []domain.Marca{{ID: 1, Nombre: "Seat"}}, nil
}
func (f *fakeAPI) ListModelos(_ context.Context, marcaID int64) ([]domain.Modelo, error) {
	return []domain.Modelo{{ID: 5, MarcaID: marcaID, Nombre: "Ibiza"}}, f.err
}
func (f *fakeAPI) ListCategorias(context.Context) ([]domain.Categoria, error) {
	return []domain.Categoria{{ID: 2, Nombre: "SUV"}}, f.catalogErr
}
func (f *fakeAPI) ListProvincias(context.Context) ([]domain.Provincia, error) {
	return []domain.Provincia{{ID: 28, Nombre: "Madrid"}}, nil
}

func TestService_ErrorMapping(t *testing.T) {
	tests := []struct {
		apiErr  error
		wantErr error
	}{
		{marketapi.ErrNotFound, ErrNotFound},
		{marketapi.ErrUnauthorized, ErrUnauthorized},
		{marketapi.ErrForbidden, ErrForbidden},
		{marketapi.ErrBadRequest, ErrRejected},
		{marketapi.ErrConflict, ErrRejected},
		{marketapi.ErrInvalidResponse, ErrInternal},
		{marketapi.ErrInternal, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.apiErr.Error(), func(t *testing.T) {
			svc := NewService(&fakeAPI{err: fmt.Errorf("%w: op", tt.apiErr)}, nopLogger{})
			_, err := svc.Get(context.Background(), 1)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, svc.Delete(context.Background(), "t", 1), tt.wantErr)
		})
	}
}

func TestService_GetOwn(t *testing.T) {
	api := &fakeAPI{coche: &domain.Coche{ID: 7, VendedorID: 3}}
	svc := NewService(api, nopLogger{})

	item, err := svc.GetOwn(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)

	_, err = svc.GetOwn(context.Background(), 4, 7)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ListForModerationHasNoFilters(t *testing.T) {
	api := &fakeAPI{coches: []*domain.Coche{{ID: 1}, {ID: 2}}}
	items, err := NewService(api, nopLogger{}).ListForModeration(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, []domain.CocheFilter{{}}, api.filters)
}

func TestService_Verify(t *testing.T) {
	api := &fakeAPI{}
	require.NoError(t, NewService(api, nopLogger{}).Verify(context.Background(), "admin", 9, true))
	assert.Equal(t, map[int64]bool{9: true}, api.verified)
}

func TestService_Catalog(t *testing.T) {
	catalog, err := NewService(&fakeAPI{}, nopLogger{}).Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seat", catalog.Marcas[0].Nombre)
	assert.Equal(t, "SUV", catalog.Categorias[0].Nombre)
	assert.Equal(t, "Madrid", catalog.Provincias[0].Nombre)

	_, err = NewService(&fakeAPI{catalogErr: marketapi.ErrInternal}, nopLogger{}).Catalog(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
