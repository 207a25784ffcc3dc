package traceid

import (
	"context"

	"github.com/google/uuid"
)

// Header заголовок, в котором trace id передаётся между сервисами
const Header = "X-Trace-ID"

type contextKey struct{}

// New генерирует новый trace id
func New() string {
	return uuid.NewString()
}

// WithContext кладёт trace id в контекст
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext достаёт trace id из контекста, пустая строка если его нет
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
