package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/observability/logging"
	"cahaya-digital/internal/observability/metrics"
)

type ctxKey struct{}

// FromContext returns the caller set by Require.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// Require returns middleware that admits callers holding a valid token whose
// role is at least one of roles in the admin > moderator > editor hierarchy.
// With no roles any authenticated caller is admitted.
//
// Missing or invalid tokens get 401, insufficient roles get 403.
func (t *TokenIssuer) Require(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				observeAuthz(outcomeUnauthorized, start)
				metrics.RecordAuthorizationDenied("missing_token")
				respond.Error(w, http.StatusUnauthorized, errors.New("authentication required"))
				return
			}
			p, err := t.Parse(raw)
			if err != nil {
				observeAuthz(outcomeUnauthorized, start)
				metrics.RecordAuthorizationDenied("invalid_token")
				respond.Error(w, http.StatusUnauthorized, errors.New("invalid or expired token"))
				return
			}
			if !allowed(p.Role, roles) {
				observeAuthz(outcomeForbidden, start)
				metrics.RecordAuthorizationDenied("forbidden")
				recordForbidden(p.Role, roles, r.Method)
				logging.WithRequestID(r.Context(), logging.FromContext(r.Context())).Warn("authorization denied",
					slog.String("username", p.Username),
					slog.String("role", string(p.Role)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				respond.Error(w, http.StatusForbidden, errors.New("insufficient permissions"))
				return
			}
			observeAuthz(outcomeAllowed, start)
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func allowed(role entity.Role, roles []entity.Role) bool {
	if len(roles) == 0 {
		return role.IsValid()
	}
	for _, min := range roles {
		if role.AtLeast(min) {
			return true
		}
	}
	return false
}
