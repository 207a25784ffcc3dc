package verify_coche

import "context"

type CochesService interface {
	Verify(ctx context.Context, token string, id int64, verificado bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
