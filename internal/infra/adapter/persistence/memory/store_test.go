package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	"cahaya-digital/internal/repository"
	"cahaya-digital/internal/repository/repotest"
)

func TestStore_Contract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Storage {
		return memory.New()
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	a, err := s.Articles().Create(ctx, repotest.ArticleInput("Asli", entity.CategoryTeknologi))
	require.NoError(t, err)

	a.Title = "diubah"
	a.Views = 99
	got, err := s.Articles().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asli", got.Title)
	assert.Zero(t, got.Views)

	settings, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	settings.SiteName = "diubah"
	again, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteName, again.SiteName)
}

func TestStore_ClockAndIDs(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	s := memory.New(memory.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))

	first, err := s.Articles().Create(ctx, repotest.ArticleInput("Satu", entity.CategoryPolitik))
	require.NoError(t, err)
	second, err := s.Articles().Create(ctx, repotest.ArticleInput("Dua", entity.CategoryPolitik))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, base.Add(time.Minute), first.PublishedAt)

	// Deleted ids are never reused.
	_, err = s.Articles().Delete(ctx, second.ID)
	require.NoError(t, err)
	third, err := s.Articles().Create(ctx, repotest.ArticleInput("Tiga", entity.CategoryPolitik))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestStore_PingCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, memory.New().Ping(ctx), context.Canceled)
}
