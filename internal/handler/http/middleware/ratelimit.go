package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/observability/metrics"
	"cahaya-digital/pkg/ratelimit"
)

// IPRateLimiter limits requests per client IP with a token bucket.
type IPRateLimiter struct {
	name      string
	limiter   *ratelimit.Limiter
	extractor IPExtractor
	logger    *slog.Logger
}

// NewIPRateLimiter wraps limiter. name labels metrics and logs ("login", "subscribe").
func NewIPRateLimiter(name string, limiter *ratelimit.Limiter, extractor IPExtractor, logger *slog.Logger) *IPRateLimiter {
	if extractor == nil {
		extractor = RemoteAddrExtractor{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IPRateLimiter{name: name, limiter: limiter, extractor: extractor, logger: logger}
}

// Limiter exposes the underlying keyed limiter, e.g. for cleanup.
func (rl *IPRateLimiter) Limiter() *ratelimit.Limiter { return rl.limiter }

// Middleware rejects requests over the limit with 429 and a Retry-After header.
// Requests whose IP cannot be determined are let through.
func (rl *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := rl.extractor.ExtractIP(r)
		if err != nil {
			rl.logger.Warn("rate limit: cannot determine client IP",
				slog.String("limiter", rl.name),
				slog.String("remote_addr", r.RemoteAddr))
			next.ServeHTTP(w, r)
			return
		}

		d := rl.limiter.Allow(ip)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			retry := int(math.Ceil(d.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			metrics.RecordRateLimited(rl.name)
			rl.logger.Info("rate limit exceeded",
				slog.String("limiter", rl.name),
				slog.String("ip", ip),
				slog.String("path", r.URL.Path))
			respond.JSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
