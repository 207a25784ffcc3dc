package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик веб-клиента
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	guardDecisionsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_api_requests_total",
			Help: "Total number of calls to the marketplace REST API",
		}, []string{"service", "operation", "status"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "market_api_request_duration_seconds",
			Help:    "Marketplace REST API call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		guardDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "route_guard_decisions_total",
			Help: "Route guard outcomes by policy",
		}, []string{"service", "policy", "outcome"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.guardDecisionsTotal,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveUpstream фиксирует вызов REST API. status - код ответа или "error".
func (m *Metrics) ObserveUpstream(operation, status string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.upstreamRequestDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// ObserveGuard фиксирует решение guard'а
func (m *Metrics) ObserveGuard(policy, outcome string) {
	m.guardDecisionsTotal.WithLabelValues(m.serviceName, policy, outcome).Inc()
}
