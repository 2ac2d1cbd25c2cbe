package postgres

import (
	"fmt"
	"strings"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// ArticleQueryBuilder builds the dynamic parts of article queries with
// numbered placeholders ($1, $2, ...). It is shared by the list and update
// paths so placeholder numbering stays consistent.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause for filter. Placeholders start at
// $1. Returns an empty clause when the filter selects everything.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter) (clause string, args []any) {
	var conditions []string
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Featured {
		conditions = append(conditions, "is_featured = TRUE")
	}
	if filter.Breaking {
		conditions = append(conditions, "is_breaking = TRUE")
	}
	if filter.EditorsPick {
		conditions = append(conditions, "is_editors_pick = TRUE")
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildSetClause builds the assignments for the non-nil fields of patch.
// Placeholders start at $1. An empty patch yields an empty clause.
func (qb *ArticleQueryBuilder) BuildSetClause(patch entity.ArticlePatch) (clause string, args []any) {
	var sets []string
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		add("title", strings.TrimSpace(*patch.Title))
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Summary != nil {
		add("summary", *patch.Summary)
	}
	if patch.Category != nil {
		add("category", string(*patch.Category))
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.Author != nil {
		add("author", strings.TrimSpace(*patch.Author))
	}
	if patch.AuthorImage != nil {
		// Blank clears the image.
		add("author_image", nullString(blankToNil(*patch.AuthorImage)))
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}
	if patch.IsBreaking != nil {
		add("is_breaking", *patch.IsBreaking)
	}
	if patch.IsEditorsPick != nil {
		add("is_editors_pick", *patch.IsEditorsPick)
	}
	return strings.Join(sets, ", "), args
}
