package marketapi

import "errors"

var (
	// ErrBadRequest возвращается на 400/422, API отклонило данные
	ErrBadRequest = errors.New("marketapi client: request rejected")

	// ErrUnauthorized возвращается на 401: неверные учётные данные или просроченный токен
	ErrUnauthorized = errors.New("marketapi client: unauthorized")

	// ErrForbidden возвращается на 403
	ErrForbidden = errors.New("marketapi client: forbidden")

	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("marketapi client: not found")

	// ErrConflict возвращается на 409 (например, email уже зарегистрирован)
	ErrConflict = errors.New("marketapi client: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сериализация)
	ErrInternal = errors.New("marketapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("marketapi client: invalid response")
)
