package circuitbreaker

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// isDomainOutcome treats validation, lookup and uniqueness errors as healthy
// responses from the backend. Cancellation by the caller is not the backend's fault either.
func isDomainOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrValidationFailed) ||
		errors.Is(err, entity.ErrInvalidInput) ||
		errors.Is(err, entity.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// GuardedStorage runs every repository call of the wrapped storage through one breaker.
type GuardedStorage struct {
	inner repository.Storage
	cb    *CircuitBreaker
}

// NewGuardedStorage wraps inner with a breaker built from cfg. A config
// without a classifier gets the domain-outcome one used by StorageConfig.
func NewGuardedStorage(inner repository.Storage, cfg Config) *GuardedStorage {
	if cfg.Name == "" {
		cfg.Name = "storage"
	}
	if cfg.IsSuccessful == nil {
		cfg.IsSuccessful = isDomainOutcome
	}
	return &GuardedStorage{inner: inner, cb: New(cfg)}
}

// Breaker exposes the underlying breaker for health reporting.
func (g *GuardedStorage) Breaker() *CircuitBreaker { return g.cb }

func (g *GuardedStorage) Articles() repository.ArticleRepository {
	return guardedArticles{cb: g.cb, inner: g.inner.Articles()}
}

func (g *GuardedStorage) Users() repository.UserRepository {
	return guardedUsers{cb: g.cb, inner: g.inner.Users()}
}

func (g *GuardedStorage) Settings() repository.SettingsRepository {
	return guardedSettings{cb: g.cb, inner: g.inner.Settings()}
}

func (g *GuardedStorage) Subscribers() repository.SubscriberRepository {
	return guardedSubscribers{cb: g.cb, inner: g.inner.Subscribers()}
}

// Ping bypasses the breaker so health checks observe the real backend.
func (g *GuardedStorage) Ping(ctx context.Context) error { return g.inner.Ping(ctx) }

func (g *GuardedStorage) Close() error { return g.inner.Close() }

// call executes fn through cb, mapping a rejected call to ErrStorageUnavailable.
func call[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (any, error) { return fn() })
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%s: %w: %w", cb.Name(), entity.ErrStorageUnavailable, err)
		}
		return zero, err
	}
	return res.(T), nil
}

func exec(cb *CircuitBreaker, fn func() error) error {
	_, err := call(cb, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

type guardedArticles struct {
	cb    *CircuitBreaker
	inner repository.ArticleRepository
}

func (r guardedArticles) Get(ctx context.Context, id int64) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.inner.Get(ctx, id) })
}

func (r guardedArticles) List(ctx context.Context, filter repository.ArticleFilter, page repository.Page) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.List(ctx, filter, page) })
}

func (r guardedArticles) ListByCategory(ctx context.Context, category entity.Category, page repository.Page) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.ListByCategory(ctx, category, page) })
}

func (r guardedArticles) ListFeatured(ctx context.Context, limit int) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.ListFeatured(ctx, limit) })
}

func (r guardedArticles) ListBreaking(ctx context.Context, limit int) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.ListBreaking(ctx, limit) })
}

func (r guardedArticles) ListEditorsPick(ctx context.Context, limit int) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.ListEditorsPick(ctx, limit) })
}

func (r guardedArticles) ListPopular(ctx context.Context, limit int) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.inner.ListPopular(ctx, limit) })
}

func (r guardedArticles) Count(ctx context.Context) (int64, error) {
	return call(r.cb, func() (int64, error) { return r.inner.Count(ctx) })
}

func (r guardedArticles) Create(ctx context.Context, in entity.ArticleInput) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.inner.Create(ctx, in) })
}

func (r guardedArticles) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.inner.Update(ctx, id, patch) })
}

func (r guardedArticles) Delete(ctx context.Context, id int64) (bool, error) {
	return call(r.cb, func() (bool, error) { return r.inner.Delete(ctx, id) })
}

func (r guardedArticles) IncrementViews(ctx context.Context, id int64) error {
	return exec(r.cb, func() error { return r.inner.IncrementViews(ctx, id) })
}

type guardedUsers struct {
	cb    *CircuitBreaker
	inner repository.UserRepository
}

func (r guardedUsers) Get(ctx context.Context, id int64) (*entity.User, error) {
	return call(r.cb, func() (*entity.User, error) { return r.inner.Get(ctx, id) })
}

func (r guardedUsers) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return call(r.cb, func() (*entity.User, error) { return r.inner.GetByUsername(ctx, username) })
}

func (r guardedUsers) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	return call(r.cb, func() ([]*entity.User, error) { return r.inner.List(ctx, page) })
}

func (r guardedUsers) Count(ctx context.Context) (int64, error) {
	return call(r.cb, func() (int64, error) { return r.inner.Count(ctx) })
}

func (r guardedUsers) Create(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	return call(r.cb, func() (*entity.User, error) { return r.inner.Create(ctx, in) })
}

func (r guardedUsers) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	return call(r.cb, func() (*entity.User, error) { return r.inner.Update(ctx, id, patch) })
}

func (r guardedUsers) Delete(ctx context.Context, id int64) (bool, error) {
	return call(r.cb, func() (bool, error) { return r.inner.Delete(ctx, id) })
}

type guardedSettings struct {
	cb    *CircuitBreaker
	inner repository.SettingsRepository
}

func (r guardedSettings) Get(ctx context.Context) (*entity.Settings, error) {
	return call(r.cb, func() (*entity.Settings, error) { return r.inner.Get(ctx) })
}

func (r guardedSettings) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	return call(r.cb, func() (*entity.Settings, error) { return r.inner.Update(ctx, patch) })
}

type guardedSubscribers struct {
	cb    *CircuitBreaker
	inner repository.SubscriberRepository
}

func (r guardedSubscribers) Get(ctx context.Context, id int64) (*entity.Subscriber, error) {
	return call(r.cb, func() (*entity.Subscriber, error) { return r.inner.Get(ctx, id) })
}

func (r guardedSubscribers) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	return call(r.cb, func() (*entity.Subscriber, error) { return r.inner.GetByEmail(ctx, email) })
}

func (r guardedSubscribers) List(ctx context.Context, page repository.Page) ([]*entity.Subscriber, error) {
	return call(r.cb, func() ([]*entity.Subscriber, error) { return r.inner.List(ctx, page) })
}

func (r guardedSubscribers) Count(ctx context.Context) (int64, error) {
	return call(r.cb, func() (int64, error) { return r.inner.Count(ctx) })
}

func (r guardedSubscribers) Create(ctx context.Context, email string) (*entity.Subscriber, error) {
	return call(r.cb, func() (*entity.Subscriber, error) { return r.inner.Create(ctx, email) })
}

var _ repository.Storage = (*GuardedStorage)(nil)
