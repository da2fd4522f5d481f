// metrics — Prometheus-инструментация news-platform.
// Метрики регистрируются через promauto в DefaultRegisterer и отдаются
// роутером на /metrics (promhttp).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal — количество HTTP-запросов по методу/маршруту/статусу.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration — длительность HTTP-запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecommendationStageTotal — на какой стадии резолвер собрал ответ
	// (memo_hit / durable / trending_fallback).
	RecommendationStageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_stage_total",
			Help: "Recommendation resolver outcomes by stage",
		},
		[]string{"stage"},
	)
)

// RecordHTTPRequest записывает метрики одного HTTP-запроса.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
