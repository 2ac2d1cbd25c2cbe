// Package password hashes and verifies account passwords with bcrypt.
// Hashes carry their own salt and cost, so only the hash is ever stored.
package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the minimum password length in characters.
const MinLength = 8

// maxBytes is the bcrypt input limit; longer passwords are rejected rather than truncated.
const maxBytes = 72

var (
	// ErrTooShort is returned when a password is shorter than MinLength.
	ErrTooShort = fmt.Errorf("password must be at least %d characters", MinLength)
	// ErrTooLong is returned when a password exceeds the bcrypt input limit.
	ErrTooLong = fmt.Errorf("password must be at most %d bytes", maxBytes)
	// ErrMismatch is returned when a password does not match its hash.
	ErrMismatch = errors.New("password does not match")
)

// Hasher hashes passwords at a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the bcrypt cost used for new hashes.
func (h *Hasher) Cost() int { return h.cost }

// Validate checks the length rules without hashing.
func Validate(plain string) error {
	if utf8.RuneCountInString(plain) < MinLength {
		return ErrTooShort
	}
	if len(plain) > maxBytes {
		return ErrTooLong
	}
	return nil
}

// Hash validates plain and returns its salted bcrypt hash.
func (h *Hasher) Hash(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether plain matches hash. It returns ErrMismatch for a
// wrong password and a wrapped error for a malformed hash.
func Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("compare password: %w", err)
	}
}
