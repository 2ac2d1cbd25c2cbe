package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validArticleInput() ArticleInput {
	return ArticleInput{
		Title:    "IHSG Mencatatkan Rekor Tertinggi Sepanjang Masa",
		Content:  "<p>Indeks Harga Saham Gabungan ditutup menguat.</p>",
		Summary:  "IHSG ditutup di level tertinggi.",
		Category: CategoryEkonomi,
		ImageURL: "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3",
		Author:   "Dian Kusuma",
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{raw: "teknologi", want: CategoryTeknologi},
		{raw: "  Politik ", want: CategoryPolitik},
		{raw: "gaya-hidup", want: CategoryGayaHidup},
		{raw: "gaya_hidup", want: CategoryGayaHidup},
		{raw: "sains", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidationFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories_AllValidWithLabels(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	for _, c := range cats {
		assert.True(t, c.IsValid(), c)
		assert.NotEmpty(t, c.Label())
	}
	assert.Equal(t, "Gaya Hidup", CategoryGayaHidup.Label())
	assert.False(t, Category("unknown").IsValid())
}

func TestArticleInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ArticleInput)
		wantField string
	}{
		{name: "valid", mutate: func(*ArticleInput) {}},
		{name: "relative image path", mutate: func(in *ArticleInput) { in.ImageURL = "/uploads/1700000000-1.jpg" }},
		{name: "blank title", mutate: func(in *ArticleInput) { in.Title = "   " }, wantField: "title"},
		{name: "missing title", mutate: func(in *ArticleInput) { in.Title = "" }, wantField: "title"},
		{name: "unknown category", mutate: func(in *ArticleInput) { in.Category = "sains" }, wantField: "category"},
		{name: "missing category", mutate: func(in *ArticleInput) { in.Category = "" }, wantField: "category"},
		{name: "missing image", mutate: func(in *ArticleInput) { in.ImageURL = "" }, wantField: "imageUrl"},
		{name: "ftp image", mutate: func(in *ArticleInput) { in.ImageURL = "ftp://example.com/a.jpg" }, wantField: "imageUrl"},
		{name: "protocol-relative image", mutate: func(in *ArticleInput) { in.ImageURL = "//cdn.example.com/a.jpg" }, wantField: "imageUrl"},
		{name: "missing author", mutate: func(in *ArticleInput) { in.Author = "" }, wantField: "author"},
		{name: "bad author image", mutate: func(in *ArticleInput) { in.AuthorImage = ptr("javascript:alert(1)") }, wantField: "authorImage"},
		{name: "title too long", mutate: func(in *ArticleInput) { in.Title = strings.Repeat("a", 301) }, wantField: "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validArticleInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestArticlePatch_Validate(t *testing.T) {
	assert.NoError(t, ArticlePatch{}.Validate())
	assert.NoError(t, ArticlePatch{IsFeatured: ptr(false), AuthorImage: ptr("")}.Validate())

	err := ArticlePatch{Title: ptr("")}.Validate()
	assert.True(t, errors.Is(err, ErrValidationFailed))

	err = ArticlePatch{Category: ptr(Category("sains"))}.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "category", ve.Field)
}

func TestNewArticle_AndApply(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	in := validArticleInput()
	in.Title = "  Judul  "
	in.AuthorImage = ptr(" ")

	a := NewArticle(in, now)
	assert.Equal(t, "Judul", a.Title)
	assert.Nil(t, a.AuthorImage)
	assert.Equal(t, now, a.PublishedAt)
	assert.Zero(t, a.Views)
	assert.False(t, a.IsFeatured)

	a.ID, a.Views = 7, 42
	ArticlePatch{
		Summary:     ptr("baru"),
		IsBreaking:  ptr(true),
		AuthorImage: ptr("https://example.com/a.png"),
	}.Apply(a)

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, int64(42), a.Views)
	assert.Equal(t, now, a.PublishedAt)
	assert.Equal(t, "baru", a.Summary)
	assert.True(t, a.IsBreaking)
	require.NotNil(t, a.AuthorImage)
	assert.Equal(t, "https://example.com/a.png", *a.AuthorImage)
	assert.Equal(t, "Judul", a.Title)

	ArticlePatch{AuthorImage: ptr("")}.Apply(a)
	assert.Nil(t, a.AuthorImage)
}

func TestArticlePatch_IsEmpty(t *testing.T) {
	assert.True(t, ArticlePatch{}.IsEmpty())
	assert.False(t, ArticlePatch{IsEditorsPick: ptr(false)}.IsEmpty())
}

func TestArticle_Clone(t *testing.T) {
	a := &Article{ID: 1, AuthorImage: ptr("https://example.com/x.png")}
	c := a.Clone()
	*c.AuthorImage = "changed"
	assert.Equal(t, "https://example.com/x.png", *a.AuthorImage)
	assert.Nil(t, (*Article)(nil).Clone())
}
