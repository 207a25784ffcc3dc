package profile

import (
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

func toUpdateProfileRequest(f forms.ProfileForm) marketapi.UpdateProfileRequest {
	return marketapi.UpdateProfileRequest{
		Nombre:    f.Nombre,
		Apellidos: f.Apellidos,
		Email:     f.Email,
		Telefono:  f.Telefono,
		Provincia: f.Provincia,
	}
}

func toChangePasswordRequest(f forms.PasswordForm) marketapi.ChangePasswordRequest {
	return marketapi.ChangePasswordRequest{
		PasswordActual: f.Actual,
		PasswordNueva:  f.Nueva,
	}
}
