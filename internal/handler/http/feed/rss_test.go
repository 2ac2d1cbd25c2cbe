package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/feed"
	"cahaya-digital/internal/infra/adapter/persistence/memory"
	"cahaya-digital/internal/repository/repotest"
	artUC "cahaya-digital/internal/usecase/article"
	settingsUC "cahaya-digital/internal/usecase/settings"
)

func TestRSS(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	first := repotest.ArticleInput("Ekonomi tumbuh 5%", entity.CategoryEkonomi)
	first.Summary = ""
	first.Content = "<p>Pertumbuhan <b>ekonomi</b> kuartal ini</p><script>track()</script>"
	first.ImageURL = "/uploads/ekonomi.png"
	_, err := store.Articles().Create(ctx, first)
	require.NoError(t, err)

	second := repotest.ArticleInput("Gaya hidup sehat", entity.CategoryGayaHidup)
	_, err = store.Articles().Create(ctx, second)
	require.NoError(t, err)

	h := feed.Handler{
		Articles: artUC.NewService(store.Articles()),
		Settings: settingsUC.NewService(store.Settings()),
		BaseURL:  "https://cahayadigital25.rf.gd/",
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rss.xml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))

	parsed, err := gofeed.NewParser().ParseString(rec.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, entity.DefaultSiteName, parsed.Title)
	assert.Equal(t, "https://cahayadigital25.rf.gd", parsed.Link)
	require.Len(t, parsed.Items, 2)

	byTitle := map[string]*gofeed.Item{}
	for _, it := range parsed.Items {
		byTitle[it.Title] = it
	}
	eko := byTitle["Ekonomi tumbuh 5%"]
	require.NotNil(t, eko)
	assert.Equal(t, "Pertumbuhan ekonomi kuartal ini", eko.Description)
	assert.Equal(t, "https://cahayadigital25.rf.gd/article/1", eko.Link)
	assert.Equal(t, []string{"Ekonomi"}, eko.Categories)
	require.Len(t, eko.Enclosures, 1)
	assert.Equal(t, "https://cahayadigital25.rf.gd/uploads/ekonomi.png", eko.Enclosures[0].URL)
	assert.Equal(t, "image/png", eko.Enclosures[0].Type)
	assert.NotNil(t, eko.PublishedParsed)

	assert.Equal(t, []string{"Gaya Hidup"}, byTitle["Gaya hidup sehat"].Categories)
}

func TestRSS_EmptyAndDerivedBase(t *testing.T) {
	store := memory.New()
	h := feed.Handler{
		Articles: artUC.NewService(store.Articles()),
		Settings: settingsUC.NewService(store.Settings()),
	}
	req := httptest.NewRequest(http.MethodGet, "/rss.xml", nil)
	req.Host = "berita.local:8080"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	parsed, err := gofeed.NewParser().ParseString(rec.Body.String())
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
	assert.Equal(t, "http://berita.local:8080", parsed.Link)
}
