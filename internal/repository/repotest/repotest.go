// Package repotest holds the behavioural contract every repository.Storage
// implementation must satisfy. Backends call Run from their own tests.
package repotest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// Factory returns an empty storage. Run calls it once per subtest.
type Factory func(t *testing.T) repository.Storage

func ptr[T any](v T) *T { return &v }

// ArticleInput returns a valid article input in the given category.
func ArticleInput(title string, category entity.Category) entity.ArticleInput {
	return entity.ArticleInput{
		Title:    title,
		Content:  "<p>" + title + "</p>",
		Summary:  "Ringkasan " + title,
		Category: category,
		ImageURL: "https://images.example.com/" + string(category) + ".jpg",
		Author:   "Redaksi",
	}
}

// Run executes the storage contract against storages produced by newStorage.
func Run(t *testing.T, newStorage Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, s repository.Storage)
	}{
		{"ArticleCreateGet", testArticleCreateGet},
		{"ArticleCreateValidates", testArticleCreateValidates},
		{"ArticleGetMissing", testArticleGetMissing},
		{"ArticleIncrementViews", testArticleIncrementViews},
		{"ArticleIncrementViewsConcurrent", testArticleIncrementViewsConcurrent},
		{"ArticleDelete", testArticleDelete},
		{"ArticleListOrderAndFilter", testArticleListOrderAndFilter},
		{"ArticleListPaging", testArticleListPaging},
		{"ArticlePopular", testArticlePopular},
		{"ArticleFeaturedScenario", testArticleFeaturedScenario},
		{"ArticleBreakingEditorsPick", testArticleBreakingEditorsPick},
		{"ArticleUpdate", testArticleUpdate},
		{"UserCreateGet", testUserCreateGet},
		{"UserDuplicateUsername", testUserDuplicateUsername},
		{"UserPartialUpdate", testUserPartialUpdate},
		{"UserDelete", testUserDelete},
		{"SettingsLazyDefaults", testSettingsLazyDefaults},
		{"SettingsUpdate", testSettingsUpdate},
		{"SubscriberIdempotent", testSubscriberIdempotent},
		{"SubscriberValidates", testSubscriberValidates},
		{"Ping", testPing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStorage(t)
			tc.fn(t, s)
		})
	}
}

/* ─────────────────────────── articles ─────────────────────────── */

func testArticleCreateGet(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := ArticleInput("Pemilu 2024", entity.CategoryPolitik)
	in.AuthorImage = ptr("/uploads/redaksi.png")
	in.IsBreaking = true

	created, err := s.Articles().Create(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Zero(t, created.Views)
	assert.False(t, created.PublishedAt.IsZero())

	got, err := s.Articles().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Content, got.Content)
	assert.Equal(t, in.Summary, got.Summary)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.ImageURL, got.ImageURL)
	assert.Equal(t, in.Author, got.Author)
	require.NotNil(t, got.AuthorImage)
	assert.Equal(t, "/uploads/redaksi.png", *got.AuthorImage)
	assert.True(t, got.IsBreaking)
	assert.False(t, got.IsFeatured)
	assert.False(t, got.IsEditorsPick)
	assert.Zero(t, got.Views)
	assert.True(t, created.PublishedAt.Equal(got.PublishedAt))

	n, err := s.Articles().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func testArticleCreateValidates(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := ArticleInput("", entity.CategoryPolitik)
	_, err := s.Articles().Create(ctx, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	in = ArticleInput("Judul", entity.Category("sains"))
	_, err = s.Articles().Create(ctx, in)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	n, err := s.Articles().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testArticleGetMissing(t *testing.T, s repository.Storage) {
	_, err := s.Articles().Get(context.Background(), 4242)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func testArticleIncrementViews(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	a, err := s.Articles().Create(ctx, ArticleInput("Harga BBM", entity.CategoryEkonomi))
	require.NoError(t, err)

	for range 7 {
		require.NoError(t, s.Articles().IncrementViews(ctx, a.ID))
	}
	got, err := s.Articles().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Views)

	// Missing id is a no-op.
	require.NoError(t, s.Articles().IncrementViews(ctx, a.ID+1000))
	n, err := s.Articles().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func testArticleIncrementViewsConcurrent(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	a, err := s.Articles().Create(ctx, ArticleInput("Piala Dunia", entity.CategoryOlahraga))
	require.NoError(t, err)

	const workers, perWorker = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				if err := s.Articles().IncrementViews(ctx, a.ID); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Articles().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), got.Views)
}

func testArticleDelete(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	a, err := s.Articles().Create(ctx, ArticleInput("Banjir Jakarta", entity.CategoryKesehatan))
	require.NoError(t, err)

	ok, err := s.Articles().Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Articles().Get(ctx, a.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	ok, err = s.Articles().Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testArticleListOrderAndFilter(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	var tech []int64
	for i, c := range []entity.Category{
		entity.CategoryTeknologi, entity.CategoryPolitik, entity.CategoryTeknologi,
		entity.CategoryHiburan, entity.CategoryTeknologi,
	} {
		a, err := s.Articles().Create(ctx, ArticleInput(fmt.Sprintf("Artikel %d", i), c))
		require.NoError(t, err)
		if c == entity.CategoryTeknologi {
			tech = append(tech, a.ID)
		}
	}

	all, err := s.Articles().List(ctx, repository.ArticleFilter{}, repository.Page{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assertNewestFirst(t, all)

	cat := entity.CategoryTeknologi
	got, err := s.Articles().List(ctx, repository.ArticleFilter{Category: &cat}, repository.Page{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, a := range got {
		assert.Equal(t, entity.CategoryTeknologi, a.Category)
	}
	assertNewestFirst(t, got)
	// Same-instant inserts fall back to id order, newest first.
	assert.Equal(t, tech[len(tech)-1], got[0].ID)

	byCat, err := s.Articles().ListByCategory(ctx, entity.CategoryTeknologi, repository.Page{Limit: 2})
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	assert.Equal(t, got[0].ID, byCat[0].ID)
	assert.Equal(t, got[1].ID, byCat[1].ID)

	none, err := s.Articles().ListByCategory(ctx, entity.CategoryProperti, repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testArticleListPaging(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	for i := range 5 {
		_, err := s.Articles().Create(ctx, ArticleInput(fmt.Sprintf("Berita %d", i), entity.CategoryEkonomi))
		require.NoError(t, err)
	}
	all, err := s.Articles().List(ctx, repository.ArticleFilter{}, repository.Page{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	page, err := s.Articles().List(ctx, repository.ArticleFilter{}, repository.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[2].ID, page[0].ID)
	assert.Equal(t, all[3].ID, page[1].ID)

	past, err := s.Articles().List(ctx, repository.ArticleFilter{}, repository.Page{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past)

	neg, err := s.Articles().List(ctx, repository.ArticleFilter{}, repository.Page{Limit: -1, Offset: -3})
	require.NoError(t, err)
	assert.Len(t, neg, 5)
}

func testArticlePopular(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	views := []int{3, 10, 0, 20, 10, 1, 7}
	for i, n := range views {
		a, err := s.Articles().Create(ctx, ArticleInput(fmt.Sprintf("Populer %d", i), entity.CategoryHiburan))
		require.NoError(t, err)
		for range n {
			require.NoError(t, s.Articles().IncrementViews(ctx, a.ID))
		}
	}

	got, err := s.Articles().ListPopular(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Views, got[i].Views)
	}
	assert.Equal(t, int64(20), got[0].Views)
	// Equal views keep insertion order.
	assert.Less(t, got[1].ID, got[2].ID)

	top, err := s.Articles().ListPopular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(20), top[0].Views)

	def, err := s.Articles().ListPopular(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, def, repository.DefaultPopularLimit)
}

func testArticleFeaturedScenario(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := ArticleInput("Rupiah menguat", entity.CategoryEkonomi)
	in.IsFeatured = true
	a, err := s.Articles().Create(ctx, in)
	require.NoError(t, err)
	_, err = s.Articles().Create(ctx, ArticleInput("Biasa saja", entity.CategoryEkonomi))
	require.NoError(t, err)

	featured, err := s.Articles().ListFeatured(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, ids(featured))

	updated, err := s.Articles().Update(ctx, a.ID, entity.ArticlePatch{IsFeatured: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsFeatured)

	featured, err = s.Articles().ListFeatured(ctx, 3)
	require.NoError(t, err)
	assert.NotContains(t, ids(featured), a.ID)
}

func testArticleBreakingEditorsPick(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	var breaking []int64
	for i := range 3 {
		in := ArticleInput(fmt.Sprintf("Breaking %d", i), entity.CategoryPolitik)
		in.IsBreaking = true
		in.IsEditorsPick = i == 0
		a, err := s.Articles().Create(ctx, in)
		require.NoError(t, err)
		breaking = append(breaking, a.ID)
	}

	got, err := s.Articles().ListBreaking(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, repository.DefaultBreakingLimit)
	assert.Equal(t, breaking[2], got[0].ID)

	picks, err := s.Articles().ListEditorsPick(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{breaking[0]}, ids(picks))

	both, err := s.Articles().List(ctx, repository.ArticleFilter{Breaking: true, EditorsPick: true}, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, []int64{breaking[0]}, ids(both))
}

func testArticleUpdate(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := ArticleInput("Judul lama", entity.CategoryOtomotif)
	in.AuthorImage = ptr("https://images.example.com/a.png")
	a, err := s.Articles().Create(ctx, in)
	require.NoError(t, err)
	require.NoError(t, s.Articles().IncrementViews(ctx, a.ID))

	cat := entity.CategoryProperti
	got, err := s.Articles().Update(ctx, a.ID, entity.ArticlePatch{
		Title:       ptr("Judul baru"),
		Category:    &cat,
		AuthorImage: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Judul baru", got.Title)
	assert.Equal(t, entity.CategoryProperti, got.Category)
	assert.Nil(t, got.AuthorImage)
	assert.Equal(t, in.Summary, got.Summary)
	assert.Equal(t, int64(1), got.Views)
	assert.True(t, a.PublishedAt.Equal(got.PublishedAt))

	stored, err := s.Articles().Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Judul baru", stored.Title)
	assert.Nil(t, stored.AuthorImage)

	_, err = s.Articles().Update(ctx, a.ID+1000, entity.ArticlePatch{Title: ptr("x")})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.Articles().Update(ctx, a.ID, entity.ArticlePatch{Title: ptr("  ")})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	same, err := s.Articles().Update(ctx, a.ID, entity.ArticlePatch{})
	require.NoError(t, err)
	assert.Equal(t, "Judul baru", same.Title)
}

/* ─────────────────────────── users ─────────────────────────── */

func userInput(username string) entity.UserInput {
	return entity.UserInput{
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuu7Q1Jv7bO0r6Zp0w0b8Y9pXcH3f2J5a",
		FullName:     ptr("Nama " + username),
		Email:        ptr(username + "@cahayadigital25.com"),
	}
}

func testUserCreateGet(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	u, err := s.Users().Create(ctx, userInput("budi"))
	require.NoError(t, err)
	assert.Positive(t, u.ID)
	assert.Equal(t, entity.RoleEditor, u.Role)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi", got.Username)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
	require.NotNil(t, got.Email)
	assert.Equal(t, "budi@cahayadigital25.com", *got.Email)

	byName, err := s.Users().GetByUsername(ctx, "budi")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = s.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	in := userInput("sari")
	in.Role = entity.RoleAdmin
	in.IsActive = ptr(false)
	sari, err := s.Users().Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, sari.Role)
	assert.False(t, sari.IsActive)

	list, err := s.Users().List(ctx, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, []int64{u.ID, sari.ID}, userIDs(list))

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func testUserDuplicateUsername(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	_, err := s.Users().Create(ctx, userInput("admin"))
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, userInput("admin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConflict)

	other, err := s.Users().Create(ctx, userInput("editor1"))
	require.NoError(t, err)
	_, err = s.Users().Update(ctx, other.ID, entity.UserPatch{Username: ptr("admin")})
	assert.ErrorIs(t, err, entity.ErrConflict)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func testUserPartialUpdate(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	u, err := s.Users().Create(ctx, userInput("dewi"))
	require.NoError(t, err)

	role := entity.RoleModerator
	got, err := s.Users().Update(ctx, u.ID, entity.UserPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, got.Role)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
	assert.Equal(t, u.FullName, got.FullName)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.IsActive, got.IsActive)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	got, err = s.Users().Update(ctx, u.ID, entity.UserPatch{Email: ptr(""), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Nil(t, got.Email)
	assert.False(t, got.IsActive)
	assert.Equal(t, entity.RoleModerator, got.Role)

	_, err = s.Users().Update(ctx, u.ID+1000, entity.UserPatch{Role: &role})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	bad := entity.Role("root")
	_, err = s.Users().Update(ctx, u.ID, entity.UserPatch{Role: &bad})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func testUserDelete(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	u, err := s.Users().Create(ctx, userInput("tono"))
	require.NoError(t, err)

	ok, err := s.Users().Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Users().Get(ctx, u.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	ok, err = s.Users().Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// A freed username can be taken again.
	_, err = s.Users().Create(ctx, userInput("tono"))
	require.NoError(t, err)
}

/* ─────────────────────────── settings ─────────────────────────── */

func testSettingsLazyDefaults(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	first, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	want := entity.DefaultSettings()
	assert.Equal(t, want.SiteName, first.SiteName)
	assert.Equal(t, want.LogoText, first.LogoText)
	assert.Equal(t, want.PrimaryColor, first.PrimaryColor)
	assert.Equal(t, want.SecondaryColor, first.SecondaryColor)
	assert.Equal(t, want.AccentColor, first.AccentColor)

	second, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func testSettingsUpdate(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	// Update on an empty store creates the record first.
	got, err := s.Settings().Update(ctx, entity.SettingsPatch{PrimaryColor: ptr("#1a202c")})
	require.NoError(t, err)
	assert.Equal(t, "#1a202c", got.PrimaryColor)
	assert.Equal(t, entity.DefaultSiteName, got.SiteName)

	got, err = s.Settings().Update(ctx, entity.SettingsPatch{SiteName: ptr("Cahaya News")})
	require.NoError(t, err)
	assert.Equal(t, "Cahaya News", got.SiteName)
	assert.Equal(t, "#1a202c", got.PrimaryColor)

	stored, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got.ID, stored.ID)
	assert.Equal(t, "Cahaya News", stored.SiteName)

	_, err = s.Settings().Update(ctx, entity.SettingsPatch{AccentColor: ptr("orange")})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

/* ─────────────────────────── subscribers ─────────────────────────── */

func testSubscriberIdempotent(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	first, err := s.Subscribers().Create(ctx, "pembaca@example.com")
	require.NoError(t, err)
	assert.Positive(t, first.ID)

	again, err := s.Subscribers().Create(ctx, " Pembaca@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, first.SubscribedAt.Equal(again.SubscribedAt))

	n, err := s.Subscribers().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.Subscribers().Create(ctx, "lain@example.com")
	require.NoError(t, err)
	list, err := s.Subscribers().List(ctx, repository.Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "lain@example.com", list[0].Email)

	got, err := s.Subscribers().GetByEmail(ctx, "PEMBACA@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	byID, err := s.Subscribers().Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "pembaca@example.com", byID.Email)

	_, err = s.Subscribers().Get(ctx, first.ID+1000)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func testSubscriberValidates(t *testing.T, s repository.Storage) {
	_, err := s.Subscribers().Create(context.Background(), "bukan-email")
	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
	assert.Equal(t, "email", verr.Field)
}

func testPing(t *testing.T, s repository.Storage) {
	assert.NoError(t, s.Ping(context.Background()))
}

/* ─────────────────────────── helpers ─────────────────────────── */

func assertNewestFirst(t *testing.T, list []*entity.Article) {
	t.Helper()
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.PublishedAt.Equal(cur.PublishedAt) {
			assert.Greater(t, prev.ID, cur.ID, "ties must be ordered by id desc")
			continue
		}
		assert.True(t, prev.PublishedAt.After(cur.PublishedAt), "articles must be newest first")
	}
}

func ids(list []*entity.Article) []int64 {
	out := make([]int64, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func userIDs(list []*entity.User) []int64 {
	out := make([]int64, 0, len(list))
	for _, u := range list {
		out = append(out, u.ID)
	}
	return out
}
