// Package db opens and migrates the relational databases behind the persistent
// storage implementations (PostgreSQL through pgx, SQLite through modernc).
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"cahaya-digital/internal/resilience/retry"
)

const pingTimeout = 5 * time.Second

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"30m"`

	// Connect is the backoff for the initial ping.
	Connect retry.Config
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		Connect:         retry.ConnectConfig(),
	}
}

// withDefaults replaces non-positive values with the defaults.
func (c ConnectionConfig) withDefaults() ConnectionConfig {
	d := DefaultConnectionConfig()
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = d.MaxOpenConns
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = d.MaxIdleConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = d.ConnMaxLifetime
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = d.ConnMaxIdleTime
	}
	if c.Connect.MaxAttempts <= 0 {
		c.Connect = d.Connect
	}
	return c
}

// OpenPostgres opens a pgx-backed pool for dsn, applies the pool settings and
// verifies the connection, retrying while the server is unreachable.
func OpenPostgres(ctx context.Context, dsn string, pool ConnectionConfig, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("OpenPostgres: DATABASE_URL is required")
	}
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenPostgres: %w", err)
	}

	pool = pool.withDefaults()
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	logger.Info("database connection pool configured",
		slog.String("driver", "postgres"),
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", pool.ConnMaxIdleTime))

	err = retry.WithBackoff(ctx, pool.Connect, IsUnavailable, func() error {
		return ping(ctx, sqlDB)
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("OpenPostgres: ping: %w", err)
	}
	logger.Info("database connection established successfully", slog.String("driver", "postgres"))
	return sqlDB, nil
}

// SQLiteDSN builds the modernc DSN for path. ":memory:" opens a private
// in-memory database.
func SQLiteDSN(path string) string {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	return "file:" + filepath.Clean(path) + "?" + pragmas + "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
}

// OpenSQLite opens the SQLite database at path. SQLite allows a single writer,
// so the pool is limited to one connection that is never recycled.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("OpenSQLite: SQLITE_PATH is required")
	}
	sqlDB, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := ping(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("OpenSQLite: ping: %w", err)
	}
	logger.Info("database connection established successfully",
		slog.String("driver", "sqlite"),
		slog.String("path", path))
	return sqlDB, nil
}

func ping(ctx context.Context, sqlDB *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
