package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector содержит prometheus-метрики приложения
type Collector struct {
	registry *prometheus.Registry

	// HTTP метрики
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Бизнес-метрики
	ReviewsIngested *prometheus.CounterVec
	ReviewsDropped  prometheus.Counter
	LoginFailures   prometheus.Counter
}

// NewCollector создаёт коллектор метрик с собственным registry
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	reviewsIngested := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_ingested_total",
			Help:      "Total number of classified review submissions",
		},
		[]string{"label"},
	)

	// Отзывы, потерянные из-за недоступности хранилища.
	// Единственный канал, через который виден сбой best-effort записи.
	reviewsDropped := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_dropped_total",
			Help:      "Total number of reviews lost to persistence failures",
		},
	)

	loginFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "Total number of failed admin login attempts",
		},
	)

	registry.MustRegister(httpRequests, httpDuration, reviewsIngested, reviewsDropped, loginFailures)

	return &Collector{
		registry:        registry,
		HTTPRequests:    httpRequests,
		HTTPDuration:    httpDuration,
		ReviewsIngested: reviewsIngested,
		ReviewsDropped:  reviewsDropped,
		LoginFailures:   loginFailures,
	}
}

// Registry возвращает registry коллектора для экспорта через /metrics
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
