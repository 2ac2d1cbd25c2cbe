package repository

import (
	"context"

	"cahaya-digital/internal/domain/entity"
)

// UserRepository is the user part of the storage contract.
// Duplicate usernames are reported with entity.ErrConflict.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List returns users ordered by id.
	List(ctx context.Context, page Page) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, in entity.UserInput) (*entity.User, error)
	Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
