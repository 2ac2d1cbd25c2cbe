package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests by offset bucket.
	// Labels: endpoint, offset_range (0, 1-100, 101-1000, 1000+)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of paginated list requests",
		},
		[]string{"endpoint", "offset_range"},
	)

	// ErrorsTotal counts rejected pagination parameters.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_errors_total",
			Help: "Total number of invalid pagination parameters",
		},
		[]string{"endpoint"},
	)
)

// RecordRequest records a paginated request.
func RecordRequest(endpoint string, params Params) {
	RequestsTotal.WithLabelValues(endpoint, offsetRangeBucket(params.Offset)).Inc()
}

// RecordError records an invalid pagination request.
func RecordError(endpoint string) {
	ErrorsTotal.WithLabelValues(endpoint).Inc()
}

func offsetRangeBucket(offset int) string {
	switch {
	case offset <= 0:
		return "0"
	case offset <= 100:
		return "1-100"
	case offset <= 1000:
		return "101-1000"
	default:
		return "1000+"
	}
}
