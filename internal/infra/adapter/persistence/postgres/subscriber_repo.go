package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

type SubscriberRepo struct {
	db  *sql.DB
	now func() time.Time
}

func scanSubscriber(row scanner) (*entity.Subscriber, error) {
	var s entity.Subscriber
	if err := row.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (repo *SubscriberRepo) getBy(ctx context.Context, op, column string, value any) (*entity.Subscriber, error) {
	query := `SELECT id, email, subscribed_at FROM subscribers WHERE ` + column + ` = $1 LIMIT 1`
	s, err := scanSubscriber(repo.db.QueryRowContext(ctx, query, value))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return s, nil
}

func (repo *SubscriberRepo) Get(ctx context.Context, id int64) (*entity.Subscriber, error) {
	return repo.getBy(ctx, "Get", "id", id)
}

func (repo *SubscriberRepo) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	return repo.getBy(ctx, "GetByEmail", "email", entity.NormalizeEmail(email))
}

func (repo *SubscriberRepo) List(ctx context.Context, page repository.Page) ([]*entity.Subscriber, error) {
	const query = `
SELECT id, email, subscribed_at
FROM subscribers
ORDER BY subscribed_at DESC, id DESC
LIMIT $1 OFFSET $2`
	page = page.Normalize(repository.DefaultListLimit)
	rows, err := repo.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, wrapErr("List", err)
	}
	defer func() { _ = rows.Close() }()

	subs := make([]*entity.Subscriber, 0, page.Limit)
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("List", err)
	}
	return subs, nil
}

func (repo *SubscriberRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&count); err != nil {
		return 0, wrapErr("Count", err)
	}
	return count, nil
}

// Create inserts email unless it is already subscribed, in which case the
// existing row is returned.
func (repo *SubscriberRepo) Create(ctx context.Context, email string) (*entity.Subscriber, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	const query = `
INSERT INTO subscribers (email, subscribed_at)
VALUES ($1, $2)
ON CONFLICT (email) DO NOTHING
RETURNING id, email, subscribed_at`
	s, err := scanSubscriber(repo.db.QueryRowContext(ctx, query, email, repo.now()))
	if errors.Is(err, sql.ErrNoRows) {
		return repo.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, wrapErr("Create", err)
	}
	return s, nil
}
