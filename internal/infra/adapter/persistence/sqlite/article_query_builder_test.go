package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/adapter/persistence/sqlite"
	"cahaya-digital/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestArticleQueryBuilder_BuildWhereClause(t *testing.T) {
	politik := entity.CategoryPolitik
	tests := []struct {
		name       string
		filter     repository.ArticleFilter
		wantClause string
		wantArgs   []any
	}{
		{"empty", repository.ArticleFilter{}, "", nil},
		{"category", repository.ArticleFilter{Category: &politik}, "WHERE category = ?", []any{"politik"}},
		{"breaking and pick", repository.ArticleFilter{Breaking: true, EditorsPick: true},
			"WHERE is_breaking = 1 AND is_editors_pick = 1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := sqlite.NewArticleQueryBuilder().BuildWhereClause(tt.filter)
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestArticleQueryBuilder_BuildSetClause(t *testing.T) {
	clause, args := sqlite.NewArticleQueryBuilder().BuildSetClause(entity.ArticlePatch{
		Summary:    ptr("baru"),
		IsBreaking: ptr(true),
	})
	assert.Equal(t, "summary = ?, is_breaking = ?", clause)
	assert.Equal(t, []any{"baru", true}, args)
}
