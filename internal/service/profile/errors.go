package profile

import "errors"

var (
	// ErrUnauthorized возвращается, когда API не принял токен сессии
	ErrUnauthorized = errors.New("profile: session expired")

	// ErrRejected возвращается, когда API отклонил данные (например, неверный текущий пароль)
	ErrRejected = errors.New("profile: request rejected")

	// ErrEmailTaken возвращается, когда новый email уже занят
	ErrEmailTaken = errors.New("profile: email already registered")

	// ErrInternal возвращается при сбоях API
	ErrInternal = errors.New("profile: internal error")
)
