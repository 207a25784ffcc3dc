package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда API отклонил email или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrRejected возвращается, когда API отклонил данные регистрации
	ErrRejected = errors.New("auth: request rejected")

	// ErrInternal возвращается при сбоях API или хранилища сессии
	ErrInternal = errors.New("auth: internal error")
)
