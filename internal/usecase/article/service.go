package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/observability/logging"
	"cahaya-digital/internal/observability/metrics"
	"cahaya-digital/internal/observability/tracing"
	"cahaya-digital/internal/repository"
)

// Service provides article management use cases.
type Service struct {
	Repo repository.ArticleRepository
}

// NewService creates an article service over repo.
func NewService(repo repository.ArticleRepository) *Service {
	return &Service{Repo: repo}
}

// degrade logs a failed public read and records it; the caller then serves an empty list.
func (s *Service) degrade(ctx context.Context, operation string, err error) []*entity.Article {
	logging.WithRequestID(ctx, logging.FromContext(ctx)).Warn("article read degraded to empty result",
		slog.String("operation", operation),
		slog.Any("error", err))
	metrics.RecordDegradedRead(operation)
	return []*entity.Article{}
}

func nonNil(list []*entity.Article) []*entity.Article {
	if list == nil {
		return []*entity.Article{}
	}
	return list
}

// List returns published articles, newest first. Storage failures yield an empty list.
func (s *Service) List(ctx context.Context, page repository.Page) []*entity.Article {
	list, err := s.Repo.List(ctx, repository.ArticleFilter{}, page)
	if err != nil {
		return s.degrade(ctx, "list", err)
	}
	return nonNil(list)
}

// ByCategory parses raw and lists that category. An unknown category is a
// validation error; storage failures yield an empty list.
func (s *Service) ByCategory(ctx context.Context, raw string, page repository.Page) ([]*entity.Article, error) {
	category, err := entity.ParseCategory(raw)
	if err != nil {
		return nil, err
	}
	list, err := s.Repo.ListByCategory(ctx, category, page)
	if err != nil {
		return s.degrade(ctx, "by_category", err), nil
	}
	return nonNil(list), nil
}

// Featured returns up to limit featured articles (default 3).
func (s *Service) Featured(ctx context.Context, limit int) []*entity.Article {
	list, err := s.Repo.ListFeatured(ctx, limit)
	if err != nil {
		return s.degrade(ctx, "featured", err)
	}
	return nonNil(list)
}

// Breaking returns up to limit breaking news articles (default 1).
func (s *Service) Breaking(ctx context.Context, limit int) []*entity.Article {
	list, err := s.Repo.ListBreaking(ctx, limit)
	if err != nil {
		return s.degrade(ctx, "breaking", err)
	}
	return nonNil(list)
}

// EditorsPick returns up to limit editor's picks (default 1).
func (s *Service) EditorsPick(ctx context.Context, limit int) []*entity.Article {
	list, err := s.Repo.ListEditorsPick(ctx, limit)
	if err != nil {
		return s.degrade(ctx, "editors_pick", err)
	}
	return nonNil(list)
}

// Popular returns up to limit articles by view count (default 5).
func (s *Service) Popular(ctx context.Context, limit int) []*entity.Article {
	list, err := s.Repo.ListPopular(ctx, limit)
	if err != nil {
		return s.degrade(ctx, "popular", err)
	}
	return nonNil(list)
}

// Get retrieves a single article by its ID without counting a view.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// Read retrieves an article for a reader and counts the view. The returned
// article carries the incremented count. A failed increment is logged and
// the article is served with its stored count.
func (s *Service) Read(ctx context.Context, id int64) (a *entity.Article, err error) {
	ctx, span := tracing.Start(ctx, "article.Read", attribute.Int64("article.id", id))
	defer func() { tracing.End(span, err) }()

	a, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		span.AddEvent("view not counted")
		logging.WithRequestID(ctx, logging.FromContext(ctx)).Warn("failed to count article view",
			slog.Int64("article_id", id),
			slog.Any("error", err))
		return a, nil
	}
	a.Views++
	metrics.RecordArticleView(string(a.Category))
	return a, nil
}

// Create validates and stores a new article.
func (s *Service) Create(ctx context.Context, in entity.ArticleInput) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, err := s.Repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated(string(a.Category))
	return a, nil
}

// Update merges the non-nil fields of patch into the article.
func (s *Service) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	a, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return a, nil
}

// Delete removes an article. A missing article is ErrArticleNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}

// Count returns the number of stored articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}
