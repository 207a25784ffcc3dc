package login

import (
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

// toLoginRequest конвертирует форму в запрос API
func toLoginRequest(f forms.LoginForm) marketapi.LoginRequest {
	return marketapi.LoginRequest{
		Email:    f.Email,
		Password: f.Password,
	}
}
