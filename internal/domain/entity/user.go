package entity

import (
	"regexp"
	"strings"
	"time"
)

// Role is the permission level of an admin panel account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleEditor    Role = "editor"

	// DefaultRole is assigned when a user is created without a role.
	DefaultRole = RoleEditor
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleEditor:
		return true
	}
	return false
}

// rank orders roles from least to most privileged.
func (r Role) rank() int {
	switch r {
	case RoleEditor:
		return 1
	case RoleModerator:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.rank() >= min.rank()
}

// User is an admin panel account. PasswordHash holds a salted hash, never the plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     *string
	Email        *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// UserInput is the insert shape of a user. The caller hashes the password.
// A nil IsActive means active.
type UserInput struct {
	Username     string  `validate:"required,min=3,max=50,username"`
	PasswordHash string  `validate:"required"`
	FullName     *string `validate:"omitempty,max=120"`
	Email        *string `validate:"omitempty,email,max=254"`
	Role         Role    `validate:"omitempty,role"`
	IsActive     *bool
}

// UserPatch is a partial update. Nil fields are left unchanged.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	FullName     *string
	Email        *string
	Role         *Role
	IsActive     *bool
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// NewUser builds the stored form of in with defaults applied.
func NewUser(in UserInput, now time.Time) *User {
	u := &User{
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: in.PasswordHash,
		FullName:     optionalString(in.FullName),
		Email:        optionalString(in.Email),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
	}
	if u.Role == "" {
		u.Role = DefaultRole
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	return u
}

// Validate checks a user insert shape.
func (in UserInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	return validateStruct(in)
}

// Validate checks the supplied fields of a user patch.
func (p UserPatch) Validate() error {
	if p.Username != nil {
		if err := checkVar("username", strings.TrimSpace(*p.Username), "required,min=3,max=50,username"); err != nil {
			return err
		}
	}
	if p.PasswordHash != nil && *p.PasswordHash == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	if p.FullName != nil {
		if err := checkVar("fullName", *p.FullName, "max=120"); err != nil {
			return err
		}
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) != "" {
		if err := checkVar("email", strings.TrimSpace(*p.Email), "email,max=254"); err != nil {
			return err
		}
	}
	if p.Role != nil && !p.Role.IsValid() {
		return &ValidationError{Field: "role", Message: roleMessage}
	}
	return nil
}

// Apply merges the non-nil fields of p into u. Blank full name or email clears them.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = strings.TrimSpace(*p.Username)
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.FullName != nil {
		u.FullName = optionalString(p.FullName)
	}
	if p.Email != nil {
		u.Email = optionalString(p.Email)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// IsEmpty reports whether the patch carries no changes.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.FullName == nil &&
		p.Email == nil && p.Role == nil && p.IsActive == nil
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.FullName = optionalString(u.FullName)
	c.Email = optionalString(u.Email)
	return &c
}
