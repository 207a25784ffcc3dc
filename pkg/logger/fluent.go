package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentConfig параметры подключения к Fluent Bit
type FluentConfig struct {
	Host string
	Port int
	Tag  string
}

// fluentHandler slog.Handler, отправляющий записи в Fluent Bit
type fluentHandler struct {
	client *fluent.Fluent
	tag    string
	level  slog.Level
	attrs  []slog.Attr
}

func newFluentHandler(cfg FluentConfig, level slog.Level) (*fluentHandler, error) {
	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.Tag,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent client: %w", err)
	}
	return &fluentHandler{client: client, tag: cfg.Tag, level: level}, nil
}

func (h *fluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *fluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]interface{}, r.NumAttrs()+len(h.attrs)+3)
	for _, a := range h.attrs {
		data[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	data["level"] = r.Level.String()
	data["message"] = r.Message
	data["timestamp"] = r.Time.UTC().Format(time.RFC3339Nano)

	return h.client.Post(r.Level.String(), data)
}

func (h *fluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *fluentHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *fluentHandler) Close() error {
	return h.client.Close()
}
