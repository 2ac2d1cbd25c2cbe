// Package auth issues and verifies the JWTs used by the admin panel, and
// provides the login endpoint and the role-checking middleware.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cahaya-digital/internal/domain/entity"
)

// ErrInvalidToken is returned for any token that fails signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by an access token. The subject is the user id.
type Claims struct {
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	ID       int64
	Username string
	Role     entity.Role
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenIssuer creates an issuer. The secret length is checked by config validation.
func NewTokenIssuer(secret string, ttl time.Duration, issuer string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

// Issue returns a signed token for u and its expiry time.
func (t *TokenIssuer) Issue(u *entity.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := Claims{
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies tokenString and returns the caller it identifies.
func (t *TokenIssuer) Parse(tokenString string) (Principal, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || !claims.Role.IsValid() {
		return Principal{}, ErrInvalidToken
	}
	return Principal{ID: id, Username: claims.Username, Role: claims.Role}, nil
}
