package register

import (
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// toRegisterRequest конвертирует форму в запрос API
func toRegisterRequest(f forms.RegisterForm) marketapi.RegisterRequest {
	return marketapi.RegisterRequest{
		Nombre:    f.Nombre,
		Apellidos: f.Apellidos,
		Email:     f.Email,
		Password:  f.Password,
		Telefono:  f.Telefono,
		Provincia: f.Provincia,
	}
}
