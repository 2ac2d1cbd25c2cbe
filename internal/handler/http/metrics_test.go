package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/observability/metrics"
)

func routedMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1}`))
	})
	return mux
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	h := MetricsMiddleware(routedMux())
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_UnmatchedPathIsBounded(t *testing.T) {
	h := MetricsMiddleware(routedMux())
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "other", "404")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-admin/setup.php", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/.env", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_InFlightReturnsToZero(t *testing.T) {
	var during float64
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.HTTPRequestsInFlight)
	}))
	before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestMetricsHandler(t *testing.T) {
	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200").Inc()

	srv := httptest.NewServer(MetricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "http_requests_total"))
}
