package memory

import (
	"context"
	"fmt"
	"sort"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

type articleRepo struct{ s *Store }

func (r articleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, fmt.Errorf("Get: article %d: %w", id, entity.ErrNotFound)
	}
	return a.Clone(), nil
}

// collect returns clones of the articles accepted by keep, newest first.
func (r articleRepo) collect(keep func(*entity.Article) bool) []*entity.Article {
	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func matches(f repository.ArticleFilter, a *entity.Article) bool {
	if f.Category != nil && a.Category != *f.Category {
		return false
	}
	if f.Featured && !a.IsFeatured {
		return false
	}
	if f.Breaking && !a.IsBreaking {
		return false
	}
	if f.EditorsPick && !a.IsEditorsPick {
		return false
	}
	return true
}

func (r articleRepo) List(ctx context.Context, filter repository.ArticleFilter, page repository.Page) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	page = page.Normalize(repository.DefaultListLimit)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.collect(func(a *entity.Article) bool { return matches(filter, a) })
	start, end := window(len(all), page)
	return all[start:end], nil
}

func (r articleRepo) ListByCategory(ctx context.Context, category entity.Category, page repository.Page) ([]*entity.Article, error) {
	return r.List(ctx, repository.ArticleFilter{Category: &category}, page)
}

func (r articleRepo) ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.List(ctx, repository.ArticleFilter{Featured: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultFeaturedLimit))
}

func (r articleRepo) ListBreaking(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.List(ctx, repository.ArticleFilter{Breaking: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultBreakingLimit))
}

func (r articleRepo) ListEditorsPick(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.List(ctx, repository.ArticleFilter{EditorsPick: true},
		repository.Page{Limit: limit}.Normalize(repository.DefaultEditorsPickLimit))
}

func (r articleRepo) ListPopular(ctx context.Context, limit int) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ListPopular: %w", err)
	}
	page := repository.Page{Limit: limit}.Normalize(repository.DefaultPopularLimit)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.collect(func(*entity.Article) bool { return true })
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Views != all[j].Views {
			return all[i].Views > all[j].Views
		}
		return all[i].ID < all[j].ID
	})
	_, end := window(len(all), page)
	return all[:end], nil
}

func (r articleRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.articles)), nil
}

func (r articleRepo) Create(ctx context.Context, in entity.ArticleInput) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := entity.NewArticle(in, r.s.now())
	a.ID = r.s.nextArticleID
	r.s.nextArticleID++
	r.s.articles[a.ID] = a
	return a.Clone(), nil
}

func (r articleRepo) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, fmt.Errorf("Update: article %d: %w", id, entity.ErrNotFound)
	}
	patch.Apply(a)
	return a.Clone(), nil
}

func (r articleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[id]; !ok {
		return false, nil
	}
	delete(r.s.articles, id)
	return true, nil
}

func (r articleRepo) IncrementViews(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.articles[id]; ok {
		a.Views++
	}
	return nil
}
