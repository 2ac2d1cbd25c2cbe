package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track portal activity.
var (
	ArticlesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
		[]string{"category"},
	)

	// ArticleViewsTotal counts article reads that incremented the view counter.
	ArticleViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of article views",
		},
		[]string{"category"},
	)

	SubscribersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subscribers_created_total",
			Help: "Total number of newsletter subscription requests accepted",
		},
	)

	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in storage",
		},
	)

	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_total",
			Help: "Total number of admin panel users",
		},
	)

	SubscribersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "subscribers_total",
			Help: "Total number of newsletter subscribers",
		},
	)
)

// Storage metrics
var (
	// DegradedReadsTotal counts public reads answered with an empty result
	// because storage failed.
	DegradedReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_degraded_reads_total",
			Help: "Total number of reads served empty because storage failed",
		},
		[]string{"operation"},
	)

	// CircuitState mirrors the breaker guarding a dependency: 0 closed, 1 half-open, 2 open.
	CircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "State of a circuit breaker (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// StorageUp is 1 when the last health probe reached storage.
	StorageUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storage_up",
			Help: "Whether the storage backend answered the last ping (1) or not (0)",
		},
	)
)

// Authentication metrics
var (
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"}, // result: success, invalid_credentials, inactive, error
	)

	AuthorizationDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_authorization_denied_total",
			Help: "Total number of requests rejected by the authorization middleware",
		},
		[]string{"reason"}, // reason: missing_token, invalid_token, forbidden
	)
)

func RecordArticleCreated(category string) {
	ArticlesCreatedTotal.WithLabelValues(category).Inc()
}

func RecordArticleView(category string) {
	ArticleViewsTotal.WithLabelValues(category).Inc()
}

func RecordSubscription() {
	SubscribersCreatedTotal.Inc()
}

// RecordDegradedRead records a read that fell back to an empty result.
func RecordDegradedRead(operation string) {
	DegradedReadsTotal.WithLabelValues(operation).Inc()
}

// UpdateTotals sets the entity count gauges. Called by the periodic refresh job.
func UpdateTotals(articles, users, subscribers int64) {
	ArticlesTotal.Set(float64(articles))
	UsersTotal.Set(float64(users))
	SubscribersTotal.Set(float64(subscribers))
}

// SetCircuitState records a breaker transition.
func SetCircuitState(name string, state float64) {
	CircuitState.WithLabelValues(name).Set(state)
}

// SetStorageUp records the outcome of a storage ping.
func SetStorageUp(up bool) {
	if up {
		StorageUp.Set(1)
		return
	}
	StorageUp.Set(0)
}

func RecordLoginAttempt(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func RecordAuthorizationDenied(reason string) {
	AuthorizationDeniedTotal.WithLabelValues(reason).Inc()
}
