package stats_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/auth"
	"cahaya-digital/internal/handler/http/stats"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	"cahaya-digital/internal/repository/repotest"
	statsUC "cahaya-digital/internal/usecase/stats"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	a, err := store.Articles().Create(ctx, repotest.ArticleInput("Satu", entity.CategoryPolitik))
	require.NoError(t, err)
	require.NoError(t, store.Articles().IncrementViews(ctx, a.ID))
	_, err = store.Subscribers().Create(ctx, "x@example.com")
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer("k3p9-x7Qa-2mZr-8vLt-5nWc-1bYh-6dJs", time.Hour, "cahaya-digital")
	mux := http.NewServeMux()
	stats.Register(mux, statsUC.NewService(store), tokens)

	tok, _, err := tokens.Issue(&entity.User{ID: 1, Username: "mod", Role: entity.RoleModerator})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalArticles":1,"totalUsers":0,"totalSubscribers":1,"popularViews":1}`, rec.Body.String())
}
