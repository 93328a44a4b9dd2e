package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetches_total",
			Help: "Total feed fetch attempts",
		},
		[]string{"result"}, // result: ok, fallback
	)

	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Total catalog cache operations",
		},
		[]string{"type", "result"}, // type: get, set; result: hit, miss, success
	)

	OrdersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total order submissions",
		},
		[]string{"status"}, // status: success, validation_error, error
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "HTTP response time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)
)
