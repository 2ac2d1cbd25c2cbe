package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cahaya-digital/internal/config"
	hhttp "cahaya-digital/internal/handler/http"
	hauth "cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/middleware"
	"cahaya-digital/internal/infra/seed"
	"cahaya-digital/internal/infra/storage"
	"cahaya-digital/internal/infra/worker"
	"cahaya-digital/internal/observability/logging"
	"cahaya-digital/internal/observability/tracing"
	authservice "cahaya-digital/internal/service/auth"
	artUC "cahaya-digital/internal/usecase/article"
	settingsUC "cahaya-digital/internal/usecase/settings"
	statsUC "cahaya-digital/internal/usecase/stats"
	subUC "cahaya-digital/internal/usecase/subscriber"
	userUC "cahaya-digital/internal/usecase/user"
	"cahaya-digital/pkg/ratelimit"
	"cahaya-digital/pkg/security/password"

	_ "cahaya-digital/docs" // swagger docs
)

// @title           CahayaDigital25 API
// @version         1.0
// @description     REST API of the CahayaDigital25 news portal.
// @description     Articles, admin users, site settings, newsletter subscribers and the RSS feed.

// @contact.name   Redaksi CahayaDigital25
// @contact.email  redaksi@cahayadigital25.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT from POST /api/auth/login, sent as "Bearer {token}".

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing := tracing.Init(cfg.Observability.TraceSampleRatio)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	openCtx, openCancel := context.WithTimeout(ctx, 30*time.Second)
	store, err := storage.Open(openCtx, cfg.Storage, logger)
	openCancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, store, cfg.Seed, hasher, logger); err != nil {
			return err
		}
	}

	router, err := buildRouter(ctx, cfg, store, hasher, logger)
	if err != nil {
		return err
	}

	stats := statsUC.NewService(store)
	scheduler, err := worker.Schedule(ctx, cfg.Observability.MetricsRefreshSchedule,
		worker.NewRefresher(stats, logger, 0))
	if err != nil {
		return err
	}
	defer func() { <-scheduler.Stop().Done() }()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Version),
			slog.String("storage", store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
	return nil
}

// buildRouter wires the use cases, token issuer and rate limiters into the
// HTTP router. Limiter cleanup goroutines stop when ctx is cancelled.
func buildRouter(ctx context.Context, cfg *config.Config, store *storage.Handle, hasher *password.Hasher, logger *slog.Logger) (http.Handler, error) {
	authSvc, err := authservice.NewAuthService(store.Users(), hasher)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.BcryptCost < bcrypt.DefaultCost {
		logger.Warn("bcrypt cost below the library default", slog.Int("cost", cfg.Auth.BcryptCost))
	}

	proxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, err
	}
	extractor := middleware.NewIPExtractor(proxies)

	newLimiter := func(name string, rc ratelimit.Config) (*middleware.IPRateLimiter, error) {
		l, err := ratelimit.New(rc)
		if err != nil {
			return nil, err
		}
		go ratelimit.StartCleanup(ctx, l, cfg.RateLimit.CleanupInterval, name)
		return middleware.NewIPRateLimiter(name, l, extractor, logger), nil
	}
	loginLimiter, err := newLimiter("login", cfg.RateLimit.Login())
	if err != nil {
		return nil, err
	}
	subscribeLimiter, err := newLimiter("subscribe", cfg.RateLimit.Subscribe())
	if err != nil {
		return nil, err
	}

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cfg.CORS.AllowedOrigins),
		slog.Int("max_age", cfg.CORS.MaxAge))

	return hhttp.NewRouter(hhttp.RouterConfig{
		Services: hhttp.Services{
			Articles:    artUC.NewService(store.Articles()),
			Users:       userUC.NewService(store.Users(), hasher),
			Settings:    settingsUC.NewService(store.Settings()),
			Subscribers: subUC.NewService(store.Subscribers()),
			Stats:       statsUC.NewService(store),
			Auth:        authSvc,
		},
		Tokens:           hauth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer),
		Storage:          store,
		Breaker:          store.Breaker,
		Driver:           store.Driver,
		Version:          cfg.Version,
		Pagination:       cfg.Pagination,
		CORS:             cfg.CORS,
		Security:         cfg.Security,
		MaxBodyBytes:     cfg.Server.MaxBodyBytes,
		LoginLimiter:     loginLimiter,
		SubscribeLimiter: subscribeLimiter,
		FeedSiteURL:      cfg.Feed.SiteURL,
		FeedItemLimit:    cfg.Feed.ItemLimit,
		Logger:           logger,
	}), nil
}
