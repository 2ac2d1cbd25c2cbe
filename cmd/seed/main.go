// Command seed creates the default site settings, the initial admin account
// and the sample articles, then exits. Existing records are left untouched.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"cahaya-digital/internal/config"
	"cahaya-digital/internal/infra/seed"
	"cahaya-digital/internal/infra/storage"
	"cahaya-digital/internal/observability/logging"
	"cahaya-digital/pkg/security/password"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file to load")
	skipArticles := flag.Bool("skip-articles", false, "do not insert the sample articles")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if *skipArticles {
		cfg.Seed.SkipArticles = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to open storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	report, err := seed.Run(ctx, store, cfg.Seed, password.NewHasher(cfg.Auth.BcryptCost), logger)
	if err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		cancel()
		_ = store.Close()
		os.Exit(1)
	}
	logger.Info("seeding finished",
		slog.String("driver", store.Driver),
		slog.Int64("settings_id", report.SettingsID),
		slog.Bool("admin_created", report.AdminCreated),
		slog.Int("articles_created", report.ArticlesCreated))
}
