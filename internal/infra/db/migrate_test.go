package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectSchema(mock sqlmock.Sqlmock) {
	for _, table := range []string{"users", "articles", "settings", "subscribers"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range indexes {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestMigratePostgres_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	expectSchema(mock)

	require.NoError(t, MigratePostgres(context.Background(), sqlDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigratePostgres_TableError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(sql.ErrConnDone)

	err = MigratePostgres(context.Background(), sqlDB)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "CREATE TABLE IF NOT EXISTS users")
}

func TestMigrateSQLite_Idempotent(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", SQLiteDSN(t.TempDir()+"/migrate.db"))
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, sqlDB))
	require.NoError(t, MigrateSQLite(ctx, sqlDB))

	var n int
	err = sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'articles', 'settings', 'subscribers')`).
		Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMigrateSQLite_Constraints(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", SQLiteDSN(t.TempDir()+"/constraints.db"))
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, sqlDB))

	_, err = sqlDB.ExecContext(ctx, `
INSERT INTO articles (title, category, image_url, author, published_at)
VALUES ('x', 'sains', '/a.jpg', 'r', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown category must be rejected")

	_, err = sqlDB.ExecContext(ctx, `
INSERT INTO users (username, password_hash, role, created_at)
VALUES ('root', 'h', 'superuser', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown role must be rejected")

	_, err = sqlDB.ExecContext(ctx, `INSERT INTO subscribers (email, subscribed_at) VALUES ('a@b.co', 'now')`)
	require.NoError(t, err)
	_, err = sqlDB.ExecContext(ctx, `INSERT INTO subscribers (email, subscribed_at) VALUES ('a@b.co', 'now')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestMigrateDown(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	for _, table := range []string{"subscribers", "settings", "articles", "users"} {
		mock.ExpectExec("DROP TABLE IF EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, MigrateDown(context.Background(), sqlDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCheck(t *testing.T) {
	check := categoryCheck()
	assert.Contains(t, check, "'gaya_hidup'")
	assert.Contains(t, check, "'properti'")
	assert.Contains(t, roleCheck(), "'moderator'")
}
