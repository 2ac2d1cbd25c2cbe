package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/config"
	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	"cahaya-digital/internal/repository/repotest"
	"cahaya-digital/internal/resilience/circuitbreaker"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_Memory(t *testing.T) {
	h, err := Open(context.Background(), config.StorageConfig{Driver: config.DriverMemory, BreakerEnabled: true}, quietLogger())
	require.NoError(t, err)
	defer h.Close()

	assert.IsType(t, &memory.Store{}, h.Storage)
	assert.Nil(t, h.Breaker)
	assert.Equal(t, config.DriverMemory, h.Driver)
}

func sqliteConfig(t *testing.T, breaker bool) config.StorageConfig {
	return config.StorageConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "news.db"),
		BreakerEnabled: breaker,
		Breaker:        circuitbreaker.StorageConfig(),
	}
}

func TestOpen_SQLiteGuarded(t *testing.T) {
	ctx := context.Background()
	h, err := Open(ctx, sqliteConfig(t, true), quietLogger())
	require.NoError(t, err)
	defer h.Close()

	require.NotNil(t, h.Breaker)
	assert.IsType(t, &circuitbreaker.GuardedStorage{}, h.Storage)
	require.NoError(t, h.Ping(ctx))

	a, err := h.Articles().Create(ctx, repotest.ArticleInput("Harga beras stabil", entity.CategoryEkonomi))
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	s, err := h.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CahayaDigital25", s.SiteName)
}

func TestOpen_SQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t, false)

	h, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, h.Breaker)
	_, err = h.Subscribers().Create(ctx, "pembaca@example.com")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	h, err = Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	defer h.Close()
	n, err := h.Subscribers().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "mongo"}, quietLogger())
	assert.ErrorContains(t, err, "unknown driver")
}

func TestOpen_PostgresRequiresURL(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: config.DriverPostgres}, quietLogger())
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}
