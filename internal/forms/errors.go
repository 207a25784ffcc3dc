package forms

// Сообщения валидации, показываются рядом с полем
const (
	MsgRequired       = "Este campo es obligatorio"
	MsgInvalidEmail   = "Introduce un email válido"
	MsgPasswordLength = "La contraseña debe tener al menos 8 caracteres"
	MsgPasswordMatch  = "Las contraseñas no coinciden"
	MsgInvalidNumber  = "Introduce un número válido"
	MsgOutOfRange     = "El valor está fuera del rango permitido"
	MsgInvalidOption  = "Selecciona una opción válida"
	MsgTooLong        = "El texto es demasiado largo"
)

// FieldErrors ошибки валидации по имени поля формы
type FieldErrors map[string]string

// Valid true, если ошибок нет
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Add записывает первую ошибку поля, последующие игнорируются
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

// Get возвращает ошибку поля или пустую строку
func (e FieldErrors) Get(field string) string {
	return e[field]
}
