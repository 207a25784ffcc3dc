package marketapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик вызовов REST API
type Metrics interface {
	ObserveUpstream(operation, status string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveUpstream(string, string, time.Duration) {}
