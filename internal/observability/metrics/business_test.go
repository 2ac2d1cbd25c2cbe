package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordArticleCreated(t *testing.T) {
	before := testutil.ToFloat64(ArticlesCreatedTotal.WithLabelValues("ekonomi"))
	RecordArticleCreated("ekonomi")
	RecordArticleCreated("ekonomi")
	assert.Equal(t, before+2, testutil.ToFloat64(ArticlesCreatedTotal.WithLabelValues("ekonomi")))
}

func TestRecordArticleView(t *testing.T) {
	before := testutil.ToFloat64(ArticleViewsTotal.WithLabelValues("teknologi"))
	RecordArticleView("teknologi")
	assert.Equal(t, before+1, testutil.ToFloat64(ArticleViewsTotal.WithLabelValues("teknologi")))
}

func TestRecordSubscription(t *testing.T) {
	before := testutil.ToFloat64(SubscribersCreatedTotal)
	RecordSubscription()
	assert.Equal(t, before+1, testutil.ToFloat64(SubscribersCreatedTotal))
}

func TestRecordDegradedRead(t *testing.T) {
	before := testutil.ToFloat64(DegradedReadsTotal.WithLabelValues("featured"))
	RecordDegradedRead("featured")
	assert.Equal(t, before+1, testutil.ToFloat64(DegradedReadsTotal.WithLabelValues("featured")))
}

func TestUpdateTotals(t *testing.T) {
	UpdateTotals(9, 2, 40)
	assert.Equal(t, 9.0, testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(UsersTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(SubscribersTotal))
}

func TestSetStorageUp(t *testing.T) {
	SetStorageUp(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(StorageUp))
	SetStorageUp(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(StorageUp))
}

func TestAuthMetrics(t *testing.T) {
	before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success"))
	RecordLoginAttempt("success")
	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success")))

	beforeDenied := testutil.ToFloat64(AuthorizationDeniedTotal.WithLabelValues("forbidden"))
	RecordAuthorizationDenied("forbidden")
	assert.Equal(t, beforeDenied+1, testutil.ToFloat64(AuthorizationDeniedTotal.WithLabelValues("forbidden")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "GET /api/articles/{id}", "404"))
	RecordHTTPRequest(http.MethodGet, "GET /api/articles/{id}", http.StatusNotFound, 12*time.Millisecond, 0, 27)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "GET /api/articles/{id}", "404")))

	// The duration histogram received exactly one more observation.
	var m dto.Metric
	obs, err := HTTPRequestDuration.GetMetricWithLabelValues(http.MethodGet, "GET /api/articles/{id}", "404")
	require.NoError(t, err)
	require.NoError(t, obs.(interface{ Write(*dto.Metric) error }).Write(&m))
	assert.GreaterOrEqual(t, m.GetHistogram().GetSampleCount(), uint64(1))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(RateLimitedTotal.WithLabelValues("login"))
	RecordRateLimited("login")
	assert.Equal(t, before+1, testutil.ToFloat64(RateLimitedTotal.WithLabelValues("login")))
}
