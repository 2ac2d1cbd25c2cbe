package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cahaya-digital/internal/handler/http/pathutil"
	"cahaya-digital/internal/handler/http/responsewriter"
	"cahaya-digital/internal/observability/metrics"
)

// MetricsMiddleware records request count, latency and sizes. The path label is
// the matched route pattern, so it must wrap the ServeMux without copying the request.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)

		size := r.ContentLength
		if size < 0 {
			size = 0
		}
		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.Label(r.Pattern, r.URL.Path),
			rw.StatusCode(),
			time.Since(start),
			size,
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
