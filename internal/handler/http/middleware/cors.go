// Package middleware provides the cross-cutting HTTP middleware of the API:
// the single CORS policy, client IP extraction and per-IP rate limiting.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Defaults of the portal's CORS policy.
var (
	DefaultAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	DefaultAllowedHeaders = []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins. "*" allows any origin
	// but disables credentials.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://cahayadigital25.rf.gd" envSeparator:","`

	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,POST,PUT,PATCH,DELETE,OPTIONS" envSeparator:","`

	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envDefault:"Origin,X-Requested-With,Content-Type,Accept,Authorization,X-Request-ID" envSeparator:","`

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int `env:"CORS_MAX_AGE" envDefault:"86400"`

	Logger *slog.Logger `env:"-"`
}

// Validate checks that every origin is "*" or a bare http(s) origin.
func (c CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			continue
		}
		u, err := url.Parse(o)
		if err != nil {
			return fmt.Errorf("invalid origin URL '%s': %w", o, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid origin '%s': must use http or https scheme", o)
		}
		if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || strings.HasSuffix(o, "/") {
			return fmt.Errorf("invalid origin '%s': must not include path, query or trailing slash", o)
		}
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("CORS_MAX_AGE must not be negative")
	}
	return nil
}

func (c CORSConfig) allowsAny() bool {
	return slices.Contains(c.AllowedOrigins, "*")
}

func (c CORSConfig) isAllowed(origin string) bool {
	return c.allowsAny() || slices.Contains(c.AllowedOrigins, origin)
}

// CORS returns an HTTP middleware that applies the one CORS policy of the API.
//
// Behavior:
//   - No Origin header: same-origin request, passed through untouched
//   - Origin not allowed: passed through without CORS headers, so the browser blocks it
//   - Allowed OPTIONS preflight: answered with 204 and the allow headers
//   - Allowed actual request: Allow-Origin (and credentials) set, then passed on
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	if len(config.AllowedMethods) == 0 {
		config.AllowedMethods = DefaultAllowedMethods
	}
	if len(config.AllowedHeaders) == 0 {
		config.AllowedHeaders = DefaultAllowedHeaders
	}
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)
	wildcard := config.allowsAny()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !config.isAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				// Credentials require the concrete origin to be echoed.
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
