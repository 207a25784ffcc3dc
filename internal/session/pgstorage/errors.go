package pgstorage

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pgstorage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pgstorage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pgstorage: failed to scan row")

	// ErrCookie возвращается при ошибке работы с cookie идентификатора сессии
	ErrCookie = errors.New("pgstorage: session id cookie error")
)
