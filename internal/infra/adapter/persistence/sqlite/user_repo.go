package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

const userColumns = `id, username, password_hash, full_name, email, role, is_active, created_at`

// UserRepo implements the UserRepository interface using SQLite.
type UserRepo struct {
	db  *sql.DB
	now func() time.Time
}

func scanUser(row scanner) (*entity.User, error) {
	var u entity.User
	var fullName, email sql.NullString
	var role, createdAt string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &fullName, &email,
		&role, &u.IsActive, &createdAt); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	u.FullName = stringPtr(fullName)
	u.Email = stringPtr(email)
	u.Role = entity.Role(role)
	u.CreatedAt = t
	return &u, nil
}

func (repo *UserRepo) getBy(ctx context.Context, op, column string, value any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ? LIMIT 1`
	u, err := scanUser(repo.db.QueryRowContext(ctx, query, value))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: user %v: %w", op, value, entity.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	return repo.getBy(ctx, "Get", "id", id)
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.getBy(ctx, "GetByUsername", "username", strings.TrimSpace(username))
}

func (repo *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT ? OFFSET ?`
	page = page.Normalize(repository.DefaultListLimit)
	rows, err := repo.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, wrapErr("List", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, page.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("List", err)
	}
	return users, nil
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, wrapErr("Count", err)
	}
	return count, nil
}

func (repo *UserRepo) Create(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	u := entity.NewUser(in, repo.now())

	const query = `
INSERT INTO users
       (username, password_hash, full_name, email, role, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query,
		u.Username, u.PasswordHash, nullString(u.FullName), nullString(u.Email),
		string(u.Role), u.IsActive, formatTime(u.CreatedAt),
	)
	if err != nil {
		return nil, wrapErr("Create", err)
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return nil, wrapErr("Create: LastInsertId", err)
	}
	return u, nil
}

func userSetClause(patch entity.UserPatch) (string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Username != nil {
		add("username", strings.TrimSpace(*patch.Username))
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	if patch.FullName != nil {
		add("full_name", nullString(blankToNil(*patch.FullName)))
	}
	if patch.Email != nil {
		add("email", nullString(blankToNil(*patch.Email)))
	}
	if patch.Role != nil {
		add("role", string(*patch.Role))
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	return strings.Join(sets, ", "), args
}

func (repo *UserRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	if patch.IsEmpty() {
		return repo.Get(ctx, id)
	}
	setClause, args := userSetClause(patch)
	args = append(args, id)
	query := `UPDATE users SET ` + setClause + ` WHERE id = ? RETURNING ` + userColumns

	u, err := scanUser(repo.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Update: user %d: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("Update", err)
	}
	return u, nil
}

func (repo *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, wrapErr("Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("Delete", err)
	}
	return n > 0, nil
}
