// Package entity defines the core domain entities and validation logic for the application.
// It contains the news portal's business objects (Article, User, Settings, Subscriber),
// their insert and patch shapes, validation rules and domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// Category is the fixed set of news sections an article can belong to.
type Category string

const (
	CategoryPolitik    Category = "politik"
	CategoryEkonomi    Category = "ekonomi"
	CategoryTeknologi  Category = "teknologi"
	CategoryOlahraga   Category = "olahraga"
	CategoryHiburan    Category = "hiburan"
	CategoryPendidikan Category = "pendidikan"
	CategoryKesehatan  Category = "kesehatan"
	CategoryGayaHidup  Category = "gaya_hidup"
	CategoryOtomotif   Category = "otomotif"
	CategoryProperti   Category = "properti"
)

var categoryLabels = map[Category]string{
	CategoryPolitik:    "Politik",
	CategoryEkonomi:    "Ekonomi",
	CategoryTeknologi:  "Teknologi",
	CategoryOlahraga:   "Olahraga",
	CategoryHiburan:    "Hiburan",
	CategoryPendidikan: "Pendidikan",
	CategoryKesehatan:  "Kesehatan",
	CategoryGayaHidup:  "Gaya Hidup",
	CategoryOtomotif:   "Otomotif",
	CategoryProperti:   "Properti",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryPolitik, CategoryEkonomi, CategoryTeknologi, CategoryOlahraga, CategoryHiburan,
		CategoryPendidikan, CategoryKesehatan, CategoryGayaHidup, CategoryOtomotif, CategoryProperti,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the Indonesian display name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory converts a raw path or query value into a Category.
// Matching is case-insensitive and accepts "gaya-hidup" for "gaya_hidup".
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if !c.IsValid() {
		return "", &ValidationError{Field: "category", Message: "invalid category: " + raw}
	}
	return c, nil
}

// Article represents a published news article.
// PublishedAt is assigned by the store at creation and never changes afterwards.
// Views only grows, one step per read.
type Article struct {
	ID            int64
	Title         string
	Content       string
	Summary       string
	Category      Category
	ImageURL      string
	Author        string
	AuthorImage   *string
	IsFeatured    bool
	IsBreaking    bool
	IsEditorsPick bool
	PublishedAt   time.Time
	Views         int64
}

// ArticleInput is the insert shape of an article.
type ArticleInput struct {
	Title         string   `validate:"required,notblank,max=300"`
	Content       string   `validate:"max=200000"`
	Summary       string   `validate:"max=1000"`
	Category      Category `validate:"required,category"`
	ImageURL      string   `validate:"required,imageurl,max=2048"`
	Author        string   `validate:"required,notblank,max=120"`
	AuthorImage   *string  `validate:"omitempty,imageurl,max=2048"`
	IsFeatured    bool
	IsBreaking    bool
	IsEditorsPick bool
}

// ArticlePatch is a partial update. Nil fields are left unchanged.
// Identity, publication time and the view counter are not patchable.
type ArticlePatch struct {
	Title         *string
	Content       *string
	Summary       *string
	Category      *Category
	ImageURL      *string
	Author        *string
	AuthorImage   *string
	IsFeatured    *bool
	IsBreaking    *bool
	IsEditorsPick *bool
}

// NewArticle builds the stored form of in, stamping the publication time.
func NewArticle(in ArticleInput, now time.Time) *Article {
	return &Article{
		Title:         strings.TrimSpace(in.Title),
		Content:       in.Content,
		Summary:       in.Summary,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		Author:        strings.TrimSpace(in.Author),
		AuthorImage:   optionalString(in.AuthorImage),
		IsFeatured:    in.IsFeatured,
		IsBreaking:    in.IsBreaking,
		IsEditorsPick: in.IsEditorsPick,
		PublishedAt:   now,
	}
}

// Apply merges the non-nil fields of p into a.
// An empty AuthorImage clears the author image.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Summary != nil {
		a.Summary = *p.Summary
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Author != nil {
		a.Author = strings.TrimSpace(*p.Author)
	}
	if p.AuthorImage != nil {
		a.AuthorImage = optionalString(p.AuthorImage)
	}
	if p.IsFeatured != nil {
		a.IsFeatured = *p.IsFeatured
	}
	if p.IsBreaking != nil {
		a.IsBreaking = *p.IsBreaking
	}
	if p.IsEditorsPick != nil {
		a.IsEditorsPick = *p.IsEditorsPick
	}
}

// IsEmpty reports whether the patch carries no changes.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Summary == nil && p.Category == nil &&
		p.ImageURL == nil && p.Author == nil && p.AuthorImage == nil &&
		p.IsFeatured == nil && p.IsBreaking == nil && p.IsEditorsPick == nil
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	if a.AuthorImage != nil {
		v := *a.AuthorImage
		c.AuthorImage = &v
	}
	return &c
}

// optionalString copies s, mapping blank values to nil.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
