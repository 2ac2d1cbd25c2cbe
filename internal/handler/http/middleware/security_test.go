package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"cahaya-digital/pkg/security/csp"
)

func TestSecurityHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		cfg        SecurityConfig
		path       string
		header     string
		wantPolicy string
	}{
		{"api path", SecurityConfig{CSPEnabled: true}, "/api/articles", csp.HeaderName, csp.API().String()},
		{"swagger path", SecurityConfig{CSPEnabled: true}, "/swagger/index.html", csp.HeaderName, csp.SwaggerUI().String()},
		{"report only", SecurityConfig{CSPEnabled: true, ReportOnly: true}, "/rss.xml", csp.ReportOnlyHeaderName, csp.API().String()},
		{"disabled", SecurityConfig{}, "/api/articles", csp.HeaderName, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SecurityHeaders(tt.cfg)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantPolicy, rec.Header().Get(tt.header))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		})
	}
}
