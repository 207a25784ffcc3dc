package marketapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// ListMarcas GET /marcas
func (c *Client) ListMarcas(ctx context.Context) ([]domain.Marca, error) {
	var items []NamedItem
	if err := c.do(ctx, call{op: "ListMarcas", method: http.MethodGet, path: "/marcas"}, &items); err != nil {
		return nil, err
	}
	out := make([]domain.Marca, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Marca{ID: it.ID, Nombre: it.Nombre})
	}
	return out, nil
}

// ListModelos GET /marcas/:id/modelos
func (c *Client) ListModelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error) {
	var items []NamedItem
	if err := c.do(ctx, call{op: "ListModelos", method: http.MethodGet, path: idPath("/marcas/%d/modelos", marcaID)}, &items); err != nil {
		return nil, err
	}
	out := make([]domain.Modelo, 0, len(items))
	for _, it := range items {
		marca := it.MarcaID
		if marca == 0 {
			marca = marcaID
		}
		out = append(out, domain.Modelo{ID: it.ID, MarcaID: marca, Nombre: it.Nombre})
	}
	return out, nil
}

// ListCategorias GET /categorias
func (c *Client) ListCategorias(ctx context.Context) ([]domain.Categoria, error) {
	var items []NamedItem
	if err := c.do(ctx, call{op: "ListCategorias", method: http.MethodGet, path: "/categorias"}, &items); err != nil {
		return nil, err
	}
	out := make([]domain.Categoria, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Categoria{ID: it.ID, Nombre: it.Nombre})
	}
	return out, nil
}

// ListProvincias GET /provincias
func (c *Client) ListProvincias(ctx context.Context) ([]domain.Provincia, error) {
	var items []NamedItem
	if err := c.do(ctx, call{op: "ListProvincias", method: http.MethodGet, path: "/provincias"}, &items); err != nil {
		return nil, err
	}
	out := make([]domain.Provincia, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Provincia{ID: it.ID, Nombre: it.Nombre})
	}
	return out, nil
}
