package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cahaya-digital/internal/domain/entity"
	pg "cahaya-digital/internal/infra/adapter/persistence/postgres"
	"cahaya-digital/internal/repository"
)

var userCols = []string{"id", "username", "password_hash", "full_name", "email", "role", "is_active", "created_at"}

const testHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoO5v1Vq3v1rZtJ0u0Ow4r9pY1h0u3nC2e"

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "admin", testHash, "Administrator", nil, "admin", true, created))

	u, err := pg.NewUserRepo(db).GetByUsername(context.Background(), " admin ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	require.NotNil(t, u.FullName)
	assert.Equal(t, "Administrator", *u.FullName)
	assert.Nil(t, u.Email)
	assert.Equal(t, created, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Get_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := pg.NewUserRepo(db).Get(context.Background(), 8)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

/* ─────────────────────────── 2. List ─────────────────────────── */

func TestUserRepo_List(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id\nLIMIT $1 OFFSET $2")).
		WithArgs(repository.DefaultListLimit, 0).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "admin", testHash, nil, nil, "admin", true, now).
			AddRow(int64(2), "budi", testHash, nil, "budi@example.com", "editor", false, now))

	got, err := pg.NewUserRepo(db).List(context.Background(), repository.Page{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

/* ─────────────────────────── 3. Create ─────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("budi", testHash, "Budi", nil, "editor", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	u, err := pg.NewUserRepo(db).Create(context.Background(), entity.UserInput{
		Username: "budi", PasswordHash: testHash, FullName: ptr("Budi"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, entity.RoleEditor, u.Role)
	assert.True(t, u.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Conflict(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := pg.NewUserRepo(db).Create(context.Background(), entity.UserInput{
		Username: "admin", PasswordHash: testHash,
	})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

/* ─────────────────────────── 4. Update ─────────────────────────── */

func TestUserRepo_Update_Partial(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET email = $1, role = $2\nWHERE id = $3")).
		WithArgs(nil, "moderator", int64(2)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(2), "budi", testHash, "Budi", nil, "moderator", true, now))

	role := entity.RoleModerator
	u, err := pg.NewUserRepo(db).Update(context.Background(), 2, entity.UserPatch{Email: ptr(""), Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, u.Role)
	assert.Nil(t, u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_active = $1")).
		WithArgs(false, int64(77)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := pg.NewUserRepo(db).Update(context.Background(), 77, entity.UserPatch{IsActive: ptr(false)})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

/* ─────────────────────────── 5. Delete ─────────────────────────── */

func TestUserRepo_Delete(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := pg.NewUserRepo(db).Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)
}
