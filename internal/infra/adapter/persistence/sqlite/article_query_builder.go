package sqlite

import (
	"strings"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// ArticleQueryBuilder builds the dynamic parts of article queries with
// positional "?" placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause for filter.
// Returns an empty clause when the filter selects everything.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter) (clause string, args []any) {
	var conditions []string
	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Featured {
		conditions = append(conditions, "is_featured = 1")
	}
	if filter.Breaking {
		conditions = append(conditions, "is_breaking = 1")
	}
	if filter.EditorsPick {
		conditions = append(conditions, "is_editors_pick = 1")
	}
	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildSetClause builds the assignments for the non-nil fields of patch.
func (qb *ArticleQueryBuilder) BuildSetClause(patch entity.ArticlePatch) (clause string, args []any) {
	var sets []string
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
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
