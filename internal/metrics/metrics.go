package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики сервиса. Регистрируются в DefaultRegisterer при импорте пакета.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freelanci_http_requests_total",
		Help: "Количество HTTP запросов по маршруту, методу и статусу.",
	}, []string{"path", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "freelanci_http_request_duration_seconds",
		Help:    "Длительность обработки HTTP запросов.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "freelanci_upstream_requests_total",
		Help: "Количество запросов к API каталога по действию и исходу.",
	}, []string{"action", "outcome"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "freelanci_upstream_request_duration_seconds",
		Help:    "Длительность запросов к API каталога.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
)

// ObserveUpstream записывает исход одного запроса к upstream API.
func ObserveUpstream(action, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(action, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(action).Observe(time.Since(started).Seconds())
}
