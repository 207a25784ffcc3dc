package list_coches

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// filterFromQuery разбирает фильтры витрины. Некорректные значения игнорируются.
func filterFromQuery(q url.Values) (domain.CocheFilter, views.HomeFilter) {
	echo := views.HomeFilter{
		Marca:       q.Get("marca"),
		Provincia:   q.Get("provincia"),
		Combustible: q.Get("combustible"),
		Q:           strings.TrimSpace(q.Get("q")),
	}

	filter := domain.CocheFilter{Query: echo.Q}
	if id, err := strconv.ParseInt(echo.Marca, 10, 64); err == nil && id > 0 {
		filter.MarcaID = &id
	}
	if id, err := strconv.ParseInt(echo.Provincia, 10, 64); err == nil && id > 0 {
		filter.ProvinciaID = &id
	}
	if fuel := domain.FuelType(echo.Combustible); fuel.IsValid() {
		filter.Combustible = &fuel
	}

	return filter, echo
}
