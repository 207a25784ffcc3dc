package handlers

import (
	"context"
	"strconv"

	"github.com/m04kA/SMC-CarMarketWeb/internal/api/views"
	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// CatalogLoader справочники для формы объявления
type CatalogLoader interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
	Modelos(ctx context.Context, marcaID int64) ([]domain.Modelo, error)
}

// LoadCocheFormData загружает справочники и модели выбранной марки.
// Ошибка загрузки моделей не фатальна: список подтянется через /api/marcas/{id}/modelos.
func LoadCocheFormData(ctx context.Context, loader CatalogLoader, form forms.CocheForm, action string) (views.CocheFormData, error) {
	data := views.CocheFormData{Action: action}

	catalog, err := loader.Catalog(ctx)
	if err != nil {
		return data, err
	}
	data.Catalog = catalog

	if marcaID, err := strconv.ParseInt(form.MarcaID, 10, 64); err == nil && marcaID > 0 {
		if modelos, err := loader.Modelos(ctx, marcaID); err == nil {
			data.Modelos = modelos
		}
	}

	return data, nil
}

// CocheInput конвертирует разобранную форму в тело запроса API
func CocheInput(v forms.CocheValues) marketapi.CocheInput {
	return marketapi.CocheInput{
		MarcaID:     v.MarcaID,
		ModeloID:    v.ModeloID,
		CategoriaID: v.CategoriaID,
		ProvinciaID: v.ProvinciaID,
		Anio:        v.Anio,
		Kilometraje: v.Kilometraje,
		Precio:      v.Precio,
		Combustible: v.Combustible,
		Descripcion: v.Descripcion,
		Vendido:     v.Vendido,
	}
}
