package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

// Metrics набор prometheus-коллекторов сервиса.
// HTTP-метки заполняются в middleware, KV-метки - в хуке redis-клиента.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	kvCommandsTotal     *prometheus.CounterVec
	kvCommandDuration   *prometheus.HistogramVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		kvCommandsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "kv_commands_total",
			Help:        "Total number of key-value store commands executed.",
			ConstLabels: constLabels,
		}, []string{"command", "status"}),

		kvCommandDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "kv_command_duration_seconds",
			Help:        "Key-value store command latency in seconds.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"command"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveKVCommand фиксирует выполненную команду KV-хранилища.
// redis.Nil (промах по ключу) считается успешным результатом, а не ошибкой.
func (m *Metrics) ObserveKVCommand(command string, err error, duration time.Duration) {
	status := "ok"
	if err != nil && !errors.Is(err, redis.Nil) {
		status = "error"
	}
	m.kvCommandsTotal.WithLabelValues(command, status).Inc()
	m.kvCommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}
