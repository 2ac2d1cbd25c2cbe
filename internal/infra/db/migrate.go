package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cahaya-digital/internal/domain/entity"
)

// SettingsID is the fixed primary key of the single settings row.
const SettingsID = 1

func quotedList[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + string(v) + "'"
	}
	return strings.Join(quoted, ", ")
}

func categoryCheck() string {
	return "category IN (" + quotedList(entity.Categories()) + ")"
}

func roleCheck() string {
	return "role IN (" + quotedList([]entity.Role{entity.RoleAdmin, entity.RoleModerator, entity.RoleEditor}) + ")"
}

// indexes are shared by both dialects.
var indexes = []string{
	// list ordering
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_views ON articles(views DESC, id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_featured ON articles(published_at DESC) WHERE is_featured`,
	`CREATE INDEX IF NOT EXISTS idx_articles_breaking ON articles(published_at DESC) WHERE is_breaking`,
	`CREATE INDEX IF NOT EXISTS idx_articles_editors_pick ON articles(published_at DESC) WHERE is_editors_pick`,
	`CREATE INDEX IF NOT EXISTS idx_subscribers_subscribed_at ON subscribers(subscribed_at DESC)`,
}

func postgresSchema() []string {
	return []string{
		`
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name     TEXT,
    email         TEXT,
    role          TEXT NOT NULL DEFAULT 'editor' CHECK (` + roleCheck() + `),
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS articles (
    id              BIGSERIAL PRIMARY KEY,
    title           TEXT NOT NULL,
    content         TEXT NOT NULL DEFAULT '',
    summary         TEXT NOT NULL DEFAULT '',
    category        TEXT NOT NULL CHECK (` + categoryCheck() + `),
    image_url       TEXT NOT NULL,
    author          TEXT NOT NULL,
    author_image    TEXT,
    is_featured     BOOLEAN NOT NULL DEFAULT FALSE,
    is_breaking     BOOLEAN NOT NULL DEFAULT FALSE,
    is_editors_pick BOOLEAN NOT NULL DEFAULT FALSE,
    published_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    views           BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0)
)`,
		`
CREATE TABLE IF NOT EXISTS settings (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    site_name       TEXT NOT NULL,
    logo_text       TEXT NOT NULL,
    primary_color   TEXT NOT NULL,
    secondary_color TEXT NOT NULL,
    accent_color    TEXT NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS subscribers (
    id            BIGSERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	}
}

func sqliteSchema() []string {
	return []string{
		`
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name     TEXT,
    email         TEXT,
    role          TEXT NOT NULL DEFAULT 'editor' CHECK (` + roleCheck() + `),
    is_active     INTEGER NOT NULL DEFAULT 1,
    created_at    TEXT NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS articles (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    title           TEXT NOT NULL,
    content         TEXT NOT NULL DEFAULT '',
    summary         TEXT NOT NULL DEFAULT '',
    category        TEXT NOT NULL CHECK (` + categoryCheck() + `),
    image_url       TEXT NOT NULL,
    author          TEXT NOT NULL,
    author_image    TEXT,
    is_featured     INTEGER NOT NULL DEFAULT 0,
    is_breaking     INTEGER NOT NULL DEFAULT 0,
    is_editors_pick INTEGER NOT NULL DEFAULT 0,
    published_at    TEXT NOT NULL,
    views           INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0)
)`,
		`
CREATE TABLE IF NOT EXISTS settings (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    site_name       TEXT NOT NULL,
    logo_text       TEXT NOT NULL,
    primary_color   TEXT NOT NULL,
    secondary_color TEXT NOT NULL,
    accent_color    TEXT NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS subscribers (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    subscribed_at TEXT NOT NULL
)`,
	}
}

// MigratePostgres creates the schema on PostgreSQL. It is idempotent.
func MigratePostgres(ctx context.Context, sqlDB *sql.DB) error {
	return migrate(ctx, sqlDB, append(postgresSchema(), indexes...))
}

// MigrateSQLite creates the schema on SQLite. It is idempotent.
func MigrateSQLite(ctx context.Context, sqlDB *sql.DB) error {
	return migrate(ctx, sqlDB, append(sqliteSchema(), indexes...))
}

func migrate(ctx context.Context, sqlDB *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %s: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// MigrateDown drops every table. Use with caution: all data is lost.
func MigrateDown(ctx context.Context, sqlDB *sql.DB) error {
	for _, table := range []string{"subscribers", "settings", "articles", "users"} {
		if _, err := sqlDB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("MigrateDown: %s: %w", table, err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return strings.TrimSpace(strings.TrimSuffix(stmt[:i], "("))
	}
	return stmt
}
