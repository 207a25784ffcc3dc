package domain

// User represents the identity returned by the REST API on login or registration.
// Field names follow the API payload.
type User struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos,omitempty"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono,omitempty"`
	Provincia string `json:"provincia,omitempty"`
}

// DisplayName returns the name shown in the page header
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Apellidos == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellidos
}
