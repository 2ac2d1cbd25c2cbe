// Package repository defines the storage contract shared by every backend
// (in-memory, PostgreSQL, SQLite). Implementations live under internal/infra.
package repository

import (
	"context"

	"cahaya-digital/internal/domain/entity"
)

// Default result sizes used when a caller does not pass a positive limit.
const (
	DefaultListLimit        = 100
	DefaultFeaturedLimit    = 3
	DefaultBreakingLimit    = 1
	DefaultEditorsPickLimit = 1
	DefaultPopularLimit     = 5

	// MaxListLimit caps every list query.
	MaxListLimit = 100
)

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies defaultLimit to a non-positive limit, clamps the limit to
// MaxListLimit and clamps a negative offset to zero.
func (p Page) Normalize(defaultLimit int) Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Storage groups the per-entity repositories of one backend.
type Storage interface {
	Articles() ArticleRepository
	Users() UserRepository
	Settings() SettingsRepository
	Subscribers() SubscriberRepository
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// SettingsRepository stores the single site settings record.
type SettingsRepository interface {
	// Get returns the settings, creating the default record when none exists.
	Get(ctx context.Context) (*entity.Settings, error)
	// Update merges patch into the record, creating it first when absent.
	Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error)
}

// SubscriberRepository stores newsletter subscriptions.
type SubscriberRepository interface {
	Get(ctx context.Context, id int64) (*entity.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	// List returns subscribers, newest first.
	List(ctx context.Context, page Page) ([]*entity.Subscriber, error)
	Count(ctx context.Context) (int64, error)
	// Create is idempotent by email: an existing subscription is returned unchanged.
	Create(ctx context.Context, email string) (*entity.Subscriber, error)
}
