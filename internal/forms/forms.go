package forms

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
)

// LoginForm форма входа
type LoginForm struct {
	Email    string
	Password string
}

// NewLoginForm читает форму входа из запроса
func NewLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}

func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	Email(errs, "email", f.Email)
	Required(errs, "password", f.Password)
	return errs
}

// ClearSecrets очищает пароль перед повторным рендером
func (f *LoginForm) ClearSecrets() {
	f.Password = ""
}

// RegisterForm форма регистрации
type RegisterForm struct {
	Nombre          string
	Apellidos       string
	Email           string
	Telefono        string
	Provincia       string
	Password        string
	PasswordConfirm string
}

// NewRegisterForm читает форму регистрации из запроса
func NewRegisterForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Nombre:          strings.TrimSpace(r.PostFormValue("nombre")),
		Apellidos:       strings.TrimSpace(r.PostFormValue("apellidos")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Telefono:        strings.TrimSpace(r.PostFormValue("telefono")),
		Provincia:       strings.TrimSpace(r.PostFormValue("provincia")),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password_confirm"),
	}
}

func (f *RegisterForm) Validate() FieldErrors {
	errs := FieldErrors{}
	Required(errs, "nombre", f.Nombre)
	Email(errs, "email", f.Email)
	Password(errs, "password", f.Password)
	Match(errs, "password_confirm", f.Password, f.PasswordConfirm)
	return errs
}

func (f *RegisterForm) ClearSecrets() {
	f.Password = ""
	f.PasswordConfirm = ""
}

// ProfileForm форма редактирования профиля
type ProfileForm struct {
	Nombre    string
	Apellidos string
	Email     string
	Telefono  string
	Provincia string
}

// NewProfileForm читает форму профиля из запроса
func NewProfileForm(r *http.Request) ProfileForm {
	return ProfileForm{
		Nombre:    strings.TrimSpace(r.PostFormValue("nombre")),
		Apellidos: strings.TrimSpace(r.PostFormValue("apellidos")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Telefono:  strings.TrimSpace(r.PostFormValue("telefono")),
		Provincia: strings.TrimSpace(r.PostFormValue("provincia")),
	}
}

// ProfileFormFromUser заполняет форму текущими данными пользователя
func ProfileFormFromUser(u *domain.User) ProfileForm {
	if u == nil {
		return ProfileForm{}
	}
	return ProfileForm{
		Nombre:    u.Nombre,
		Apellidos: u.Apellidos,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Provincia: u.Provincia,
	}
}

func (f *ProfileForm) Validate() FieldErrors {
	errs := FieldErrors{}
	Required(errs, "nombre", f.Nombre)
	Email(errs, "email", f.Email)
	return errs
}

// PasswordForm форма смены пароля
type PasswordForm struct {
	Actual       string
	Nueva        string
	Confirmacion string
}

// NewPasswordForm читает форму смены пароля из запроса
func NewPasswordForm(r *http.Request) PasswordForm {
	return PasswordForm{
		Actual:       r.PostFormValue("password_actual"),
		Nueva:        r.PostFormValue("password_nueva"),
		Confirmacion: r.PostFormValue("password_confirm"),
	}
}

func (f *PasswordForm) Validate() FieldErrors {
	errs := FieldErrors{}
	Required(errs, "password_actual", f.Actual)
	Password(errs, "password_nueva", f.Nueva)
	Match(errs, "password_confirm", f.Nueva, f.Confirmacion)
	return errs
}

func (f *PasswordForm) ClearSecrets() {
	f.Actual = ""
	f.Nueva = ""
	f.Confirmacion = ""
}

// CocheForm форма публикации и редактирования объявления.
// Числовые поля хранятся как ввел пользователь, чтобы отрисовать их обратно.
type CocheForm struct {
	MarcaID     string
	ModeloID    string
	CategoriaID string
	ProvinciaID string
	Anio        string
	Kilometraje string
	Precio      string
	Combustible string
	Descripcion string
	Vendido     bool
}

// CocheValues разобранные значения формы объявления
type CocheValues struct {
	MarcaID     int64
	ModeloID    int64
	CategoriaID int64
	ProvinciaID int64
	Anio        int
	Kilometraje int
	Precio      float64
	Combustible domain.FuelType
	Descripcion string
	Vendido     bool
}

// NewCocheForm читает форму объявления из запроса (urlencoded или multipart)
func NewCocheForm(r *http.Request) CocheForm {
	return CocheForm{
		MarcaID:     r.FormValue("marca_id"),
		ModeloID:    r.FormValue("modelo_id"),
		CategoriaID: r.FormValue("categoria_id"),
		ProvinciaID: r.FormValue("provincia_id"),
		Anio:        r.FormValue("anio"),
		Kilometraje: r.FormValue("kilometraje"),
		Precio:      r.FormValue("precio"),
		Combustible: r.FormValue("combustible"),
		Descripcion: strings.TrimSpace(r.FormValue("descripcion")),
		Vendido:     r.FormValue("vendido") == "on" || r.FormValue("vendido") == "true",
	}
}

// CocheFormFromDomain заполняет форму редактирования данными объявления
func CocheFormFromDomain(c *domain.Coche) CocheForm {
	return CocheForm{
		MarcaID:     strconv.FormatInt(c.MarcaID, 10),
		ModeloID:    strconv.FormatInt(c.ModeloID, 10),
		CategoriaID: strconv.FormatInt(c.CategoriaID, 10),
		ProvinciaID: strconv.FormatInt(c.ProvinciaID, 10),
		Anio:        strconv.Itoa(c.Anio),
		Kilometraje: strconv.Itoa(c.Kilometraje),
		Precio:      strconv.FormatFloat(c.Precio, 'f', -1, 64),
		Combustible: string(c.Combustible),
		Descripcion: c.Descripcion,
		Vendido:     c.Vendido,
	}
}

func (f *CocheForm) Validate() FieldErrors {
	_, errs := f.Parse()
	return errs
}

// Parse валидирует форму и возвращает разобранные значения.
// Значения имеют смысл только при пустом FieldErrors.
func (f *CocheForm) Parse() (CocheValues, FieldErrors) {
	errs := FieldErrors{}
	v := CocheValues{
		MarcaID:     ID(errs, "marca_id", f.MarcaID),
		ModeloID:    ID(errs, "modelo_id", f.ModeloID),
		CategoriaID: ID(errs, "categoria_id", f.CategoriaID),
		ProvinciaID: ID(errs, "provincia_id", f.ProvinciaID),
		Anio:        IntRange(errs, "anio", f.Anio, domain.MinAnio, time.Now().Year()+1),
		Kilometraje: IntRange(errs, "kilometraje", f.Kilometraje, 0, domain.MaxKilometraje),
		Precio:      FloatRange(errs, "precio", f.Precio, 0, domain.MaxPrecio),
		Descripcion: f.Descripcion,
		Vendido:     f.Vendido,
	}

	if Required(errs, "combustible", f.Combustible) {
		fuel := domain.FuelType(f.Combustible)
		if fuel.IsValid() {
			v.Combustible = fuel
		} else {
			errs.Add("combustible", MsgInvalidOption)
		}
	}

	MaxLength(errs, "descripcion", f.Descripcion, domain.MaxDescripcionLen)

	return v, errs
}

// VerifyForm форма модерации объявления
type VerifyForm struct {
	Verificado string
}

// NewVerifyForm читает форму модерации из запроса
func NewVerifyForm(r *http.Request) VerifyForm {
	return VerifyForm{Verificado: r.PostFormValue("verificado")}
}

func (f *VerifyForm) Validate() FieldErrors {
	_, errs := f.Parse()
	return errs
}

// Parse возвращает флаг верификации
func (f *VerifyForm) Parse() (bool, FieldErrors) {
	errs := FieldErrors{}
	if !Required(errs, "verificado", f.Verificado) {
		return false, errs
	}
	v, err := strconv.ParseBool(f.Verificado)
	if err != nil {
		errs.Add("verificado", MsgInvalidOption)
		return false, errs
	}
	return v, errs
}
