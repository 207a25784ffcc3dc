package publish_coche

import (
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
	"github.com/m04kA/SMC-CarMarketWeb/internal/uploads"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrUnauthorized)
	}

	in := req.Input
	if in.MarcaID <= 0 || in.ModeloID <= 0 || in.CategoriaID <= 0 || in.ProvinciaID <= 0 {
		return fmt.Errorf("%w: catalog ids must be positive", ErrInvalidInput)
	}
	if in.Anio < domain.MinAnio {
		return fmt.Errorf("%w: anio=%d", ErrInvalidInput, in.Anio)
	}
	if in.Precio <= 0 {
		return fmt.Errorf("%w: precio must be positive", ErrInvalidInput)
	}
	if !in.Combustible.IsValid() {
		return fmt.Errorf("%w: combustible=%q", ErrInvalidInput, in.Combustible)
	}

	if err := uploads.Check(marketapi.FieldImagenes, req.Images); err != nil {
		return err
	}
	if err := uploads.Check(marketapi.FieldDocumentos, req.Documents); err != nil {
		return err
	}

	return nil
}
