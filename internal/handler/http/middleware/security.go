package middleware

import (
	"net/http"
	"strings"

	"cahaya-digital/pkg/security/csp"
)

// SecurityConfig controls the response hardening headers.
type SecurityConfig struct {
	CSPEnabled bool `env:"CSP_ENABLED" envDefault:"true"`
	// ReportOnly sends the policy as Content-Security-Policy-Report-Only.
	ReportOnly bool `env:"CSP_REPORT_ONLY" envDefault:"false"`
}

// SecurityHeaders sets nosniff, frame and referrer headers on every response,
// and a Content-Security-Policy chosen by path: the Swagger UI policy under
// /swagger/ and the API policy everywhere else.
func SecurityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	header := csp.HeaderName
	if cfg.ReportOnly {
		header = csp.ReportOnlyHeaderName
	}
	api := csp.API().String()
	swagger := csp.SwaggerUI().String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if cfg.CSPEnabled {
				if strings.HasPrefix(r.URL.Path, "/swagger/") {
					h.Set(header, swagger)
				} else {
					h.Set(header, api)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
