// Package auth verifies admin panel credentials against stored bcrypt hashes.
// It knows nothing about HTTP or tokens; the handler layer issues JWTs for
// the users this package authenticates.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/observability/metrics"
	"cahaya-digital/internal/repository"
	"cahaya-digital/pkg/security/password"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInactiveUser is returned for a correct password on a disabled account.
	ErrInactiveUser = errors.New("account is disabled")
)

// Login attempt results recorded in auth_login_attempts_total.
const (
	ResultSuccess            = "success"
	ResultInvalidCredentials = "invalid_credentials"
	ResultInactive           = "inactive"
	ResultError              = "error"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// AuthService authenticates users stored in a UserRepository.
type AuthService struct {
	users     repository.UserRepository
	dummyHash string
}

// NewAuthService creates an authentication service. hasher produces the
// dummy hash compared against when the username does not exist, so that
// unknown and known usernames take the same time to reject.
func NewAuthService(users repository.UserRepository, hasher *password.Hasher) (*AuthService, error) {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthService{users: users, dummyHash: dummy}, nil
}

// Authenticate returns the user matching creds.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		metrics.RecordLoginAttempt(ResultInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			_ = password.Compare(s.dummyHash, creds.Password)
			metrics.RecordLoginAttempt(ResultInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		metrics.RecordLoginAttempt(ResultError)
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := password.Compare(u.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			metrics.RecordLoginAttempt(ResultInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		metrics.RecordLoginAttempt(ResultError)
		return nil, err
	}

	if !u.IsActive {
		metrics.RecordLoginAttempt(ResultInactive)
		return nil, ErrInactiveUser
	}

	metrics.RecordLoginAttempt(ResultSuccess)
	return u, nil
}
