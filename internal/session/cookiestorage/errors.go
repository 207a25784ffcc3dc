package cookiestorage

import "errors"

var (
	// ErrOpen возвращается, если cookie сессию не удалось открыть
	ErrOpen = errors.New("cookiestorage: failed to open session")

	// ErrSave возвращается при ошибке записи cookie
	ErrSave = errors.New("cookiestorage: failed to save session")

	// ErrValueType возвращается, если в cookie лежит значение не строкового типа
	ErrValueType = errors.New("cookiestorage: unexpected value type")
)
