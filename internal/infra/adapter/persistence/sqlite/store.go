// Package sqlite provides SQLite implementations of repository interfaces for
// single-binary deployments. It runs on the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/infra/db"
	"cahaya-digital/internal/repository"
)

// timeLayout is fixed-width so that text ordering equals time ordering.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Store implements repository.Storage on a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an open database. The schema must already be migrated.
func NewStore(sqlDB *sql.DB) *Store {
	return &Store{
		db:  sqlDB,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

var _ repository.Storage = (*Store)(nil)

func (s *Store) Articles() repository.ArticleRepository {
	return &ArticleRepo{db: s.db, now: s.now, queryBuilder: NewArticleQueryBuilder()}
}

func (s *Store) Users() repository.UserRepository { return &UserRepo{db: s.db, now: s.now} }

func (s *Store) Settings() repository.SettingsRepository { return &SettingsRepo{db: s.db} }

func (s *Store) Subscribers() repository.SubscriberRepository {
	return &SubscriberRepo{db: s.db, now: s.now}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return wrapErr("Ping", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

func wrapErr(op string, err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, entity.ErrConflict, err)
	case db.IsUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, entity.ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func blankToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
