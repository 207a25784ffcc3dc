package publish_coche

import (
	"errors"

	"github.com/m04kA/SMC-CarMarketWeb/internal/uploads"
)

var (
	// ErrInvalidInput возвращается при некорректных данных объявления
	ErrInvalidInput = errors.New("publish_coche: invalid input data")

	// ErrTooManyFiles возвращается, когда файлов больше допустимого.
	// Поле с ошибкой доступно через errors.As с *uploads.FieldError.
	ErrTooManyFiles = uploads.ErrTooManyFiles

	// ErrUnsupportedFile возвращается для файлов недопустимого типа
	ErrUnsupportedFile = uploads.ErrUnsupportedFile

	// ErrUnauthorized возвращается, когда API не принял токен сессии
	ErrUnauthorized = errors.New("publish_coche: session expired")

	// ErrForbidden возвращается, когда у пользователя нет прав публиковать
	ErrForbidden = errors.New("publish_coche: access denied")

	// ErrRejected возвращается, когда API отклонил объявление
	ErrRejected = errors.New("publish_coche: listing rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("publish_coche: internal error")
)
