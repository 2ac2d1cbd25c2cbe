package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cahaya-digital/internal/domain/entity"
)

// Outcomes of one Require check.
const (
	outcomeAllowed      = "allowed"
	outcomeUnauthorized = "unauthorized"
	outcomeForbidden    = "forbidden"
)

var (
	authzCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Time spent verifying the bearer token and role of a protected request",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"outcome"},
	)

	forbiddenByRole = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_forbidden_total",
			Help: "Authenticated requests rejected because the caller's role is too low",
		},
		[]string{"role", "required", "method"},
	)
)

func observeAuthz(outcome string, start time.Time) {
	authzCheckDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}

// recordForbidden labels the rejection with the lowest role that would have passed.
func recordForbidden(role entity.Role, required []entity.Role, method string) {
	need := "any"
	if len(required) > 0 {
		need = string(required[0])
		for _, r := range required[1:] {
			if !r.AtLeast(entity.Role(need)) {
				need = string(r)
			}
		}
	}
	forbiddenByRole.WithLabelValues(string(role), need, method).Inc()
}
