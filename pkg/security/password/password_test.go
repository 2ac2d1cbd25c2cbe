package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cahaya-digital/pkg/security/password"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("rahasia-sekali")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-sekali", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, password.Compare(hash, "rahasia-sekali"))
	assert.ErrorIs(t, password.Compare(hash, "salah-sandi"), password.ErrMismatch)
}

func TestHasher_Salted(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	a, err := h.Hash("sama-persis")
	require.NoError(t, err)
	b, err := h.Hash("sama-persis")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "each hash must carry its own salt")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		want  error
	}{
		{"too short", "pendek", password.ErrTooShort},
		{"exactly min", "12345678", nil},
		{"multibyte counts runes", "sandi✓✓✓", nil},
		{"too long", strings.Repeat("a", 73), password.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Validate(tt.plain), tt.want)
		})
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, password.NewHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, password.NewHasher(99).Cost())
	assert.Equal(t, 12, password.NewHasher(12).Cost())
}

func TestCompare_MalformedHash(t *testing.T) {
	err := password.Compare("not-a-hash", "whatever1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
