// Package memory provides a transient, process-local implementation of
// repository.Storage. Data is lost when the process exits.
package memory

import (
	"context"
	"sync"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

// Store keeps every entity in maps guarded by a single RWMutex.
// Entities handed out are copies, so callers cannot mutate stored state.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	articles    map[int64]*entity.Article
	users       map[int64]*entity.User
	settings    *entity.Settings
	subscribers map[int64]*entity.Subscriber

	nextArticleID    int64
	nextUserID       int64
	nextSettingsID   int64
	nextSubscriberID int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store. Id counters start at 1.
func New(opts ...Option) *Store {
	s := &Store{
		now:              func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		articles:         make(map[int64]*entity.Article),
		users:            make(map[int64]*entity.User),
		subscribers:      make(map[int64]*entity.Subscriber),
		nextArticleID:    1,
		nextUserID:       1,
		nextSettingsID:   1,
		nextSubscriberID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ repository.Storage = (*Store)(nil)

func (s *Store) Articles() repository.ArticleRepository       { return articleRepo{s} }
func (s *Store) Users() repository.UserRepository             { return userRepo{s} }
func (s *Store) Settings() repository.SettingsRepository      { return settingsRepo{s} }
func (s *Store) Subscribers() repository.SubscriberRepository { return subscriberRepo{s} }

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// window returns the slice bounds of page over n items.
func window(n int, page repository.Page) (int, int) {
	start := page.Offset
	if start > n {
		start = n
	}
	end := start + page.Limit
	if end > n {
		end = n
	}
	return start, end
}
