package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/annakov/streetstore/internal/metrics"
	"github.com/go-chi/chi"
)

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// prefer the route pattern over the raw path to keep label
		// cardinality bounded
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		metrics.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPResponseTime.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
