package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus-метрики API. Регистрируются в DefaultRegisterer при
// импорте пакета и отдаются хендлером promhttp на /metrics.
var (
	// HTTPRequestsTotal — все обработанные HTTP-запросы
	// по методу и статусу ответа.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numerix_api_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "status"})

	// HTTPRequestDuration — длительность обработки запроса.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "numerix_api_http_request_duration_seconds",
		Help:    "HTTP request processing duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// OperationsTotal — выполненные операции по виду и исходу.
	// Исход — "success" либо код ошибки конверта.
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numerix_api_operations_total",
		Help: "Total number of dispatched operations.",
	}, []string{"operation", "outcome"})
)
