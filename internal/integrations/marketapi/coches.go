package marketapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// ListCoches GET /coches
func (c *Client) ListCoches(ctx context.Context, filter domain.CocheFilter) ([]*domain.Coche, error) {
	query := url.Values{}
	if filter.MarcaID != nil {
		query.Set("marca", formatInt(*filter.MarcaID))
	}
	if filter.ProvinciaID != nil {
		query.Set("provincia", formatInt(*filter.ProvinciaID))
	}
	if filter.Combustible != nil {
		query.Set("combustible", string(*filter.Combustible))
	}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}

	var items []Coche
	if err := c.do(ctx, call{op: "ListCoches", method: http.MethodGet, path: "/coches", query: query}, &items); err != nil {
		return nil, err
	}
	return cochesToDomain(items), nil
}

// GetCoche GET /coche/:id
func (c *Client) GetCoche(ctx context.Context, id int64) (*domain.Coche, error) {
	var item Coche
	if err := c.do(ctx, call{op: "GetCoche", method: http.MethodGet, path: idPath("/coche/%d", id)}, &item); err != nil {
		return nil, err
	}
	return item.ToDomain(), nil
}

// ListUserCoches GET /user/coches
func (c *Client) ListUserCoches(ctx context.Context, token string) ([]*domain.Coche, error) {
	var items []Coche
	if err := c.do(ctx, call{op: "ListUserCoches", method: http.MethodGet, path: "/user/coches", token: token}, &items); err != nil {
		return nil, err
	}
	return cochesToDomain(items), nil
}

// CreateCoche POST /coches (multipart): поля объявления + файлы imagenes/documentos
func (c *Client) CreateCoche(ctx context.Context, token string, in CocheInput, files []File) (*domain.Coche, error) {
	var item Coche
	err := c.do(ctx, call{
		op:     "CreateCoche",
		method: http.MethodPost,
		path:   "/coches",
		token:  token,
		fields: in.Fields(),
		files:  files,
	}, &item)
	if err != nil {
		return nil, err
	}
	return item.ToDomain(), nil
}

// UpdateCoche PUT /coches/:id
func (c *Client) UpdateCoche(ctx context.Context, token string, id int64, in CocheInput) (*domain.Coche, error) {
	var item Coche
	err := c.do(ctx, call{
		op:     "UpdateCoche",
		method: http.MethodPut,
		path:   idPath("/coches/%d", id),
		token:  token,
		body:   in,
	}, &item)
	if err != nil {
		return nil, err
	}
	return item.ToDomain(), nil
}

// DeleteCoche DELETE /coche/:id
func (c *Client) DeleteCoche(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{op: "DeleteCoche", method: http.MethodDelete, path: idPath("/coche/%d", id), token: token}, nil)
}

// VerifyCoche PUT /coches/:id/verificar
func (c *Client) VerifyCoche(ctx context.Context, token string, id int64, verificado bool) error {
	return c.do(ctx, call{
		op:     "VerifyCoche",
		method: http.MethodPut,
		path:   idPath("/coches/%d/verificar", id),
		token:  token,
		body:   VerifyRequest{Verificado: verificado},
	}, nil)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
