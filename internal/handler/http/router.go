package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/handler/http/article"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/feed"
	"cahaya-digital/internal/handler/http/middleware"
	"cahaya-digital/internal/handler/http/requestid"
	"cahaya-digital/internal/handler/http/settings"
	"cahaya-digital/internal/handler/http/stats"
	"cahaya-digital/internal/handler/http/subscriber"
	"cahaya-digital/internal/handler/http/user"
	"cahaya-digital/internal/observability/tracing"
	"cahaya-digital/internal/repository"
	"cahaya-digital/internal/resilience/circuitbreaker"
	authservice "cahaya-digital/internal/service/auth"
	artUC "cahaya-digital/internal/usecase/article"
	settingsUC "cahaya-digital/internal/usecase/settings"
	statsUC "cahaya-digital/internal/usecase/stats"
	subUC "cahaya-digital/internal/usecase/subscriber"
	userUC "cahaya-digital/internal/usecase/user"
)

// Services are the use cases behind the routes.
type Services struct {
	Articles    *artUC.Service
	Users       *userUC.Service
	Settings    *settingsUC.Service
	Subscribers *subUC.Service
	Stats       *statsUC.Service
	Auth        *authservice.AuthService
}

// RouterConfig is everything NewRouter needs.
type RouterConfig struct {
	Services Services
	Tokens   *auth.TokenIssuer

	Storage repository.Storage
	Breaker *circuitbreaker.CircuitBreaker
	Driver  string
	Version string

	Pagination   pagination.Config
	CORS         middleware.CORSConfig
	Security     middleware.SecurityConfig
	MaxBodyBytes int64

	// Nil limiters disable rate limiting for their route.
	LoginLimiter     *middleware.IPRateLimiter
	SubscribeLimiter *middleware.IPRateLimiter

	FeedSiteURL   string
	FeedItemLimit int

	Logger *slog.Logger
}

func limiterMiddleware(rl *middleware.IPRateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return rl.Middleware
}

// NewRouter registers every route on one ServeMux and wraps it in the
// middleware chain, outermost first: CORS, request ID, tracing, panic
// recovery, access logging, security headers, body limit and metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	svc := cfg.Services
	mux := http.NewServeMux()

	article.Register(mux, svc.Articles, cfg.Pagination, cfg.Tokens)
	user.Register(mux, svc.Users, cfg.Pagination, cfg.Tokens)
	settings.Register(mux, svc.Settings, cfg.Tokens)
	subscriber.Register(mux, svc.Subscribers, cfg.Pagination, cfg.Tokens, limiterMiddleware(cfg.SubscribeLimiter))
	stats.Register(mux, svc.Stats, cfg.Tokens)

	mux.Handle("POST /api/auth/login", limiterMiddleware(cfg.LoginLimiter)(auth.LoginHandler{Auth: svc.Auth, Tokens: cfg.Tokens}))
	mux.Handle("GET /rss.xml", feed.Handler{
		Articles: svc.Articles,
		Settings: svc.Settings,
		BaseURL:  cfg.FeedSiteURL,
		Limit:    cfg.FeedItemLimit,
	})

	mux.Handle("GET /health", &HealthHandler{Storage: cfg.Storage, Breaker: cfg.Breaker, Driver: cfg.Driver, Version: cfg.Version})
	mux.Handle("GET /ready", &ReadyHandler{Storage: cfg.Storage})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	corsCfg := cfg.CORS
	if corsCfg.Logger == nil {
		corsCfg.Logger = logger
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	return Chain(mux,
		middleware.CORS(corsCfg),
		requestid.Middleware,
		tracing.Middleware,
		Recover(logger),
		Logging(logger),
		middleware.SecurityHeaders(cfg.Security),
		LimitRequestBody(maxBody),
		MetricsMiddleware,
	)
}
