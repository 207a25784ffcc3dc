package session

import "errors"

var (
	// ErrEmptyToken возвращается при попытке сохранить сессию без токена
	ErrEmptyToken = errors.New("session: empty token")

	// ErrMalformedSession возвращается, когда сохранённые user/roles не парсятся как JSON
	ErrMalformedSession = errors.New("session: malformed stored data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session: storage error")
)
