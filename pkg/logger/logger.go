package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger printf-логгер поверх slog.
// Пишет в консоль (tint), опционально в JSON файл и в Fluent Bit.
type Logger struct {
	slog    *slog.Logger
	closers []io.Closer
}

// Option дополнительная настройка логгера
type Option func(*options)

type options struct {
	console io.Writer
	fluent  *FluentConfig
}

// WithConsole заменяет вывод консоли (по умолчанию os.Stdout)
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithFluent включает отправку логов в Fluent Bit
func WithFluent(cfg FluentConfig) Option {
	return func(o *options) { o.fluent = &cfg }
}

// New создает логгер. file может быть пустым - тогда только консоль.
func New(file string, level string, opts ...Option) (*Logger, error) {
	o := &options{console: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	lvl := ParseLevel(level)
	handlers := []slog.Handler{
		tint.NewHandler(o.console, &tint.Options{
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05",
		}),
	}

	l := &Logger{}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", file, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl}))
		l.closers = append(l.closers, f)
	}

	if o.fluent != nil {
		fh, err := newFluentHandler(*o.fluent, lvl)
		if err != nil {
			l.Close()
			return nil, err
		}
		handlers = append(handlers, fh)
		l.closers = append(l.closers, fh)
	}

	l.slog = slog.New(&fanout{handlers: handlers})
	return l, nil
}

// NewNop создает логгер, который ничего не пишет
func NewNop() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel преобразует строковый уровень в slog.Level, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	if !l.slog.Enabled(context.Background(), level) {
		return
	}
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

// Error пишет ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл и соединение с Fluent Bit
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

// fanout рассылает запись во все handlers
type fanout struct {
	handlers []slog.Handler
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanout{handlers: next}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanout{handlers: next}
}
