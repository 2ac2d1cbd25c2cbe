// Package user provides the admin use cases for panel accounts. Passwords
// are accepted in plaintext here, hashed with bcrypt and never returned.
package user

import (
	"context"
	"errors"
	"fmt"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
	"cahaya-digital/pkg/security/password"
)

// Sentinel errors for user use case operations.
var (
	ErrUserNotFound  = fmt.Errorf("user: %w", entity.ErrNotFound)
	ErrInvalidUserID = fmt.Errorf("invalid user ID: %w", entity.ErrInvalidInput)
	ErrUsernameTaken = fmt.Errorf("username %w", entity.ErrConflict)
	ErrEmptyPatch    = fmt.Errorf("no fields to update: %w", entity.ErrInvalidInput)
)

// CreateInput is a new account as submitted by an administrator.
type CreateInput struct {
	Username string
	Password string
	FullName *string
	Email    *string
	Role     entity.Role
	IsActive *bool
}

// UpdateInput changes the supplied fields. A non-nil Password is re-hashed.
type UpdateInput struct {
	Username *string
	Password *string
	FullName *string
	Email    *string
	Role     *entity.Role
	IsActive *bool
}

// Service provides user management use cases.
type Service struct {
	Repo   repository.UserRepository
	Hasher *password.Hasher
}

// NewService creates a user service.
func NewService(repo repository.UserRepository, hasher *password.Hasher) *Service {
	return &Service{Repo: repo, Hasher: hasher}
}

func (s *Service) hash(plain string) (string, error) {
	hash, err := s.Hasher.Hash(plain)
	switch {
	case errors.Is(err, password.ErrTooShort):
		return "", &entity.ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", password.MinLength)}
	case errors.Is(err, password.ErrTooLong):
		return "", &entity.ValidationError{Field: "password", Message: "must be at most 72 bytes"}
	case err != nil:
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func mapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, entity.ErrConflict):
		return ErrUsernameTaken
	case errors.Is(err, entity.ErrValidationFailed):
		return err
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// List returns users ordered by id.
func (s *Service) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}

// Get returns one user.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr("get user", err)
	}
	return u, nil
}

// Create validates the input, hashes the password and stores the account.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}
	input := entity.UserInput{
		Username:     in.Username,
		PasswordHash: "pending",
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		IsActive:     in.IsActive,
	}
	// Validate before hashing; bcrypt is slow.
	if err := input.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	input.PasswordHash = hash

	u, err := s.Repo.Create(ctx, input)
	if err != nil {
		return nil, mapRepoErr("create user", err)
	}
	return u, nil
}

// Update applies the supplied fields.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	patch := entity.UserPatch{
		Username: in.Username,
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
		IsActive: in.IsActive,
	}
	if patch.IsEmpty() && in.Password == nil {
		return nil, ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if in.Password != nil {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	u, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoErr("update user", err)
	}
	return u, nil
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// Count returns the number of accounts.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
