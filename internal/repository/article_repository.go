package repository

import (
	"context"

	"cahaya-digital/internal/domain/entity"
)

// ArticleFilter narrows List. A true flag keeps only rows with that flag set.
type ArticleFilter struct {
	Category    *entity.Category
	Featured    bool
	Breaking    bool
	EditorsPick bool
}

// ArticleRepository is the article part of the storage contract.
//
// Lists are ordered by publication time, newest first (ties by id, newest
// first), except ListPopular which orders by views descending with ties
// broken by insertion order. Get and Update report a missing id with
// entity.ErrNotFound.
type ArticleRepository interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	List(ctx context.Context, filter ArticleFilter, page Page) ([]*entity.Article, error)
	ListByCategory(ctx context.Context, category entity.Category, page Page) ([]*entity.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error)
	ListBreaking(ctx context.Context, limit int) ([]*entity.Article, error)
	ListEditorsPick(ctx context.Context, limit int) ([]*entity.Article, error)
	ListPopular(ctx context.Context, limit int) ([]*entity.Article, error)
	Count(ctx context.Context) (int64, error)
	// Create validates in, assigns the id, publication time and a zero view count.
	Create(ctx context.Context, in entity.ArticleInput) (*entity.Article, error)
	// Update merges patch into the stored article.
	Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// IncrementViews adds one view. A missing id is not an error.
	IncrementViews(ctx context.Context, id int64) error
}
