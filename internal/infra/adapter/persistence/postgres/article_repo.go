package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

const articleColumns = `id, title, content, summary, category, image_url, author, author_image,
       is_featured, is_breaking, is_editors_pick, published_at, views`

type ArticleRepo struct {
	db           *sql.DB
	now          func() time.Time
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(sqlDB *sql.DB) repository.ArticleRepository {
	return NewStore(sqlDB).Articles()
}

func scanArticle(row scanner) (*entity.Article, error) {
	var a entity.Article
	var category string
	var authorImage sql.NullString
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Summary, &category, &a.ImageURL,
		&a.Author, &authorImage, &a.IsFeatured, &a.IsBreaking, &a.IsEditorsPick,
		&a.PublishedAt, &a.Views); err != nil {
		return nil, err
	}
	a.Category = entity.Category(category)
	a.AuthorImage = stringPtr(authorImage)
	return &a, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get: article %d: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return a, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, capacity int, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, capacity)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, page repository.Page) ([]*entity.Article, error) {
	page = page.Normalize(repository.DefaultListLimit)
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)
	paramIndex := len(args) + 1
	args = append(args, page.Limit, page.Offset)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY published_at DESC, id DESC
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, paramIndex, paramIndex+1)

	return repo.queryArticles(ctx, "List", query, page.Limit, args...)
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, category entity.Category, page repository.Page) ([]*entity.Article, error) {
	return repo.List(ctx, repository.ArticleFilter{Category: &category}, page)
}

func (repo *ArticleRepo) ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error) {
	return repo.List(ctx, repository.ArticleFilter{Featured: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultFeaturedLimit))
}

func (repo *ArticleRepo) ListBreaking(ctx context.Context, limit int) ([]*entity.Article, error) {
	return repo.List(ctx, repository.ArticleFilter{Breaking: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultBreakingLimit))
}

func (repo *ArticleRepo) ListEditorsPick(ctx context.Context, limit int) ([]*entity.Article, error) {
	return repo.List(ctx, repository.ArticleFilter{EditorsPick: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultEditorsPickLimit))
}

func (repo *ArticleRepo) ListPopular(ctx context.Context, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY views DESC, id ASC
LIMIT $1`
	page := repository.Page{Limit: limit}.Normalize(repository.DefaultPopularLimit)
	return repo.queryArticles(ctx, "ListPopular", query, page.Limit, page.Limit)
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, wrapErr("Count", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, in entity.ArticleInput) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	a := entity.NewArticle(in, repo.now())

	const query = `
INSERT INTO articles
       (title, content, summary, category, image_url, author, author_image,
        is_featured, is_breaking, is_editors_pick, published_at, views)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Content, a.Summary, string(a.Category), a.ImageURL, a.Author,
		nullString(a.AuthorImage), a.IsFeatured, a.IsBreaking, a.IsEditorsPick, a.PublishedAt,
	).Scan(&a.ID)
	if err != nil {
		return nil, wrapErr("Create", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	if patch.IsEmpty() {
		return repo.Get(ctx, id)
	}

	setClause, args := repo.queryBuilder.BuildSetClause(patch)
	args = append(args, id)
	query := fmt.Sprintf(`
UPDATE articles SET %s
WHERE id = $%d
RETURNING %s`, setClause, len(args), articleColumns)

	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Update: article %d: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("Update", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, wrapErr("Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("Delete", err)
	}
	return n > 0, nil
}

// IncrementViews is a single atomic UPDATE, so concurrent reads never lose a view.
func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) error {
	const query = `UPDATE articles SET views = views + 1 WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return wrapErr("IncrementViews", err)
	}
	return nil
}
