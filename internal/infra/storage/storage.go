// Package storage opens the repository.Storage selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"cahaya-digital/internal/config"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	"cahaya-digital/internal/infra/adapter/persistence/postgres"
	"cahaya-digital/internal/infra/adapter/persistence/sqlite"
	"cahaya-digital/internal/infra/db"
	"cahaya-digital/internal/repository"
	"cahaya-digital/internal/resilience/circuitbreaker"
)

// Handle is an opened storage together with the breaker guarding it.
// Breaker is nil for the memory driver or when the breaker is disabled.
type Handle struct {
	repository.Storage
	Driver  string
	Breaker *circuitbreaker.CircuitBreaker
}

// Open opens, migrates and returns the configured storage. The caller owns
// the returned storage and must Close it.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Handle, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		sqlDB *sql.DB
		inner repository.Storage
		err   error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using transient in-memory storage; data is lost on restart")
		return &Handle{Storage: memory.New(), Driver: cfg.Driver}, nil

	case config.DriverPostgres:
		if sqlDB, err = db.OpenPostgres(ctx, cfg.DatabaseURL, cfg.Pool, logger); err != nil {
			return nil, err
		}
		if err = db.MigratePostgres(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		inner = postgres.NewStore(sqlDB)

	case config.DriverSQLite:
		if sqlDB, err = db.OpenSQLite(ctx, cfg.SQLitePath, logger); err != nil {
			return nil, err
		}
		if err = db.MigrateSQLite(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		inner = sqlite.NewStore(sqlDB)

	default:
		return nil, fmt.Errorf("storage.Open: unknown driver %q", cfg.Driver)
	}

	logger.Info("storage ready", slog.String("driver", cfg.Driver), slog.Bool("circuit_breaker", cfg.BreakerEnabled))
	if !cfg.BreakerEnabled {
		return &Handle{Storage: inner, Driver: cfg.Driver}, nil
	}
	guarded := circuitbreaker.NewGuardedStorage(inner, cfg.Breaker)
	return &Handle{Storage: guarded, Driver: cfg.Driver, Breaker: guarded.Breaker()}, nil
}
