package coches

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarMarketWeb/internal/integrations/marketapi"
)

var (
	// ErrNotFound возвращается, когда объявление не найдено
	ErrNotFound = errors.New("coches: listing not found")

	// ErrUnauthorized возвращается, когда API не принял токен сессии
	ErrUnauthorized = errors.New("coches: session expired")

	// ErrForbidden возвращается, когда объявление принадлежит другому продавцу
	ErrForbidden = errors.New("coches: access denied")

	// ErrRejected возвращается, когда API отклонил данные объявления
	ErrRejected = errors.New("coches: request rejected")

	// ErrInternal возвращается при сбоях API
	ErrInternal = errors.New("coches: internal error")
)

// mapError переводит ошибку клиента API в ошибку сервиса
func mapError(op string, err error) error {
	switch {
	case errors.Is(err, marketapi.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	case errors.Is(err, marketapi.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrUnauthorized, op)
	case errors.Is(err, marketapi.ErrForbidden):
		return fmt.Errorf("%w: %s", ErrForbidden, op)
	case errors.Is(err, marketapi.ErrBadRequest), errors.Is(err, marketapi.ErrConflict):
		return fmt.Errorf("%w: %s - %v", ErrRejected, op, err)
	default:
		return fmt.Errorf("%w: %s - API error: %v", ErrInternal, op, err)
	}
}
