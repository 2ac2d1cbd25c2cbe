package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{DefaultLimit: 10, MaxLimit: 100}

	tests := []struct {
		name      string
		query     string
		want      pagination.Params
		wantError bool
	}{
		{name: "defaults", query: "", want: pagination.Params{Limit: 10}},
		{name: "limit and offset", query: "limit=30&offset=60", want: pagination.Params{Limit: 30, Offset: 60}},
		{name: "only offset", query: "offset=5", want: pagination.Params{Limit: 10, Offset: 5}},
		{name: "limit at max", query: "limit=100", want: pagination.Params{Limit: 100}},
		{name: "limit above max", query: "limit=101", wantError: true},
		{name: "zero limit", query: "limit=0", wantError: true},
		{name: "non-numeric limit", query: "limit=abc", wantError: true},
		{name: "negative offset", query: "offset=-1", wantError: true},
		{name: "non-numeric offset", query: "offset=x", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/api/articles?"+tt.query, nil)

			got, err := pagination.ParseQueryParams(req, config)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid query parameter")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/articles/featured", nil)
	limit, err := pagination.ParseLimit(req, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, limit)

	req = httptest.NewRequest("GET", "/api/articles/featured?limit=7", nil)
	limit, err = pagination.ParseLimit(req, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 7, limit)

	req = httptest.NewRequest("GET", "/api/articles/featured?limit=-2", nil)
	_, err = pagination.ParseLimit(req, 3, 100)
	assert.Error(t, err)
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagination.DefaultConfig(), pagination.Config{}.WithDefaults())
	assert.Equal(t, pagination.Config{DefaultLimit: 20, MaxLimit: 20},
		pagination.Config{DefaultLimit: 50, MaxLimit: 20}.WithDefaults())
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(pagination.RequestsTotal.WithLabelValues("test", "101-1000"))
	pagination.RecordRequest("test", pagination.Params{Limit: 10, Offset: 500})
	after := testutil.ToFloat64(pagination.RequestsTotal.WithLabelValues("test", "101-1000"))
	assert.Equal(t, before+1, after)
}
