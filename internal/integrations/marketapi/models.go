package marketapi

import (
	"time"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// LoginRequest тело POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest тело POST /register
type RegisterRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Telefono  string `json:"telefono,omitempty"`
	Provincia string `json:"provincia,omitempty"`
}

// AuthResponse ответ на логин и регистрацию
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
	Roles []string    `json:"roles"`
}

// ValidateUserResponse ответ GET /validate-user
type ValidateUserResponse struct {
	User  domain.User `json:"user"`
	Roles []string    `json:"roles"`
}

// UpdateProfileRequest тело PUT /profile
type UpdateProfileRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos,omitempty"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono,omitempty"`
	Provincia string `json:"provincia,omitempty"`
}

// ChangePasswordRequest тело PUT /profile/password
type ChangePasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva"`
}

// CocheInput данные объявления для создания и обновления
type CocheInput struct {
	MarcaID     int64           `json:"marca_id"`
	ModeloID    int64           `json:"modelo_id"`
	CategoriaID int64           `json:"categoria_id"`
	ProvinciaID int64           `json:"provincia_id"`
	Anio        int             `json:"anio"`
	Kilometraje int             `json:"kilometraje"`
	Precio      float64         `json:"precio"`
	Combustible domain.FuelType `json:"combustible"`
	Descripcion string          `json:"descripcion"`
	Vendido     bool            `json:"vendido"`
}

// VerifyRequest тело PUT /coches/:id/verificar
type VerifyRequest struct {
	Verificado bool `json:"verificado"`
}

// Coche модель объявления в API
type Coche struct {
	ID          int64           `json:"id"`
	VendedorID  int64           `json:"vendedor_id"`
	MarcaID     int64           `json:"marca_id"`
	Marca       string          `json:"marca"`
	ModeloID    int64           `json:"modelo_id"`
	Modelo      string          `json:"modelo"`
	CategoriaID int64           `json:"categoria_id"`
	Categoria   string          `json:"categoria"`
	ProvinciaID int64           `json:"provincia_id"`
	Provincia   string          `json:"provincia"`
	Anio        int             `json:"anio"`
	Kilometraje int             `json:"kilometraje"`
	Precio      float64         `json:"precio"`
	Combustible domain.FuelType `json:"combustible"`
	Descripcion string          `json:"descripcion"`
	Imagenes    []Imagen        `json:"imagenes"`
	Documentos  []Documento     `json:"documentos"`
	Verificado  bool            `json:"verificado"`
	Vendido     bool            `json:"vendido"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Imagen модель изображения в API
type Imagen struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Documento модель документа в API
type Documento struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
}

// NamedItem элемент справочника (марки, модели, категории, провинции)
type NamedItem struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	MarcaID int64  `json:"marca_id,omitempty"`
}

// ToDomain конвертирует модель API в domain модель
func (c *Coche) ToDomain() *domain.Coche {
	out := &domain.Coche{
		ID:          c.ID,
		VendedorID:  c.VendedorID,
		MarcaID:     c.MarcaID,
		Marca:       c.Marca,
		ModeloID:    c.ModeloID,
		Modelo:      c.Modelo,
		CategoriaID: c.CategoriaID,
		Categoria:   c.Categoria,
		ProvinciaID: c.ProvinciaID,
		Provincia:   c.Provincia,
		Anio:        c.Anio,
		Kilometraje: c.Kilometraje,
		Precio:      c.Precio,
		Combustible: c.Combustible,
		Descripcion: c.Descripcion,
		Verificado:  c.Verificado,
		Vendido:     c.Vendido,
		CreatedAt:   c.CreatedAt,
		Imagenes:    make([]domain.Imagen, 0, len(c.Imagenes)),
		Documentos:  make([]domain.Documento, 0, len(c.Documentos)),
	}
	for _, img := range c.Imagenes {
		out.Imagenes = append(out.Imagenes, domain.Imagen{ID: img.ID, URL: img.URL})
	}
	for _, doc := range c.Documentos {
		out.Documentos = append(out.Documentos, domain.Documento{ID: doc.ID, Nombre: doc.Nombre, URL: doc.URL})
	}
	return out
}

func cochesToDomain(items []Coche) []*domain.Coche {
	out := make([]*domain.Coche, 0, len(items))
	for i := range items {
		out = append(out, items[i].ToDomain())
	}
	return out
}

// Fields возвращает поля объявления для multipart формы
func (in CocheInput) Fields() map[string]string {
	return map[string]string{
		"marca_id":     formatInt(in.MarcaID),
		"modelo_id":    formatInt(in.ModeloID),
		"categoria_id": formatInt(in.CategoriaID),
		"provincia_id": formatInt(in.ProvinciaID),
		"anio":         formatInt(int64(in.Anio)),
		"kilometraje":  formatInt(int64(in.Kilometraje)),
		"precio":       formatFloat(in.Precio),
		"combustible":  string(in.Combustible),
		"descripcion":  in.Descripcion,
	}
}
