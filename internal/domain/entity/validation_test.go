package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve.Field
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "pembaca@example.com"},
		{email: "nama.belakang+news@mail.co.id"},
		{email: "", wantErr: true},
		{email: "bukan-email", wantErr: true},
		{email: "a@", wantErr: true},
		{email: "Name <a@b.com>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Equal(t, "email", fieldOf(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "pembaca@example.com", NormalizeEmail("  Pembaca@Example.COM "))
}

func TestUserInput_Validate(t *testing.T) {
	base := func() UserInput {
		return UserInput{Username: "redaksi", PasswordHash: "$2a$10$hash"}
	}
	tests := []struct {
		name      string
		mutate    func(*UserInput)
		wantField string
	}{
		{name: "valid minimal", mutate: func(*UserInput) {}},
		{name: "valid full", mutate: func(in *UserInput) {
			in.FullName = ptr("Redaksi Utama")
			in.Email = ptr("redaksi@cahayadigital25.com")
			in.Role = RoleModerator
		}},
		{name: "short username", mutate: func(in *UserInput) { in.Username = "ab" }, wantField: "username"},
		{name: "username with space", mutate: func(in *UserInput) { in.Username = "red aksi" }, wantField: "username"},
		{name: "missing hash", mutate: func(in *UserInput) { in.PasswordHash = "" }, wantField: "password"},
		{name: "bad email", mutate: func(in *UserInput) { in.Email = ptr("nope") }, wantField: "email"},
		{name: "bad role", mutate: func(in *UserInput) { in.Role = "superuser" }, wantField: "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantField, fieldOf(t, err))
		})
	}
}

func TestNewUser_Defaults(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	u := NewUser(UserInput{Username: " redaksi ", PasswordHash: "h"}, now)

	assert.Equal(t, "redaksi", u.Username)
	assert.Equal(t, RoleEditor, u.Role)
	assert.True(t, u.IsActive)
	assert.Equal(t, now, u.CreatedAt)

	u = NewUser(UserInput{Username: "x12", PasswordHash: "h", IsActive: ptr(false), Role: RoleAdmin}, now)
	assert.False(t, u.IsActive)
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestUserPatch_ApplyOnlySuppliedFields(t *testing.T) {
	u := &User{
		ID: 3, Username: "editor1", PasswordHash: "h1",
		FullName: ptr("Budi Santoso"), Email: ptr("budi@example.com"),
		Role: RoleEditor, IsActive: true,
	}
	UserPatch{Role: ptr(RoleModerator)}.Apply(u)

	assert.Equal(t, RoleModerator, u.Role)
	assert.Equal(t, "editor1", u.Username)
	assert.Equal(t, "h1", u.PasswordHash)
	assert.Equal(t, "Budi Santoso", *u.FullName)
	assert.True(t, u.IsActive)

	UserPatch{Email: ptr("")}.Apply(u)
	assert.Nil(t, u.Email)
}

func TestUserPatch_Validate(t *testing.T) {
	assert.NoError(t, UserPatch{}.Validate())
	assert.NoError(t, UserPatch{Email: ptr("")}.Validate())
	assert.Equal(t, "role", fieldOf(t, UserPatch{Role: ptr(Role("root"))}.Validate()))
	assert.Equal(t, "username", fieldOf(t, UserPatch{Username: ptr("")}.Validate()))
	assert.Equal(t, "password", fieldOf(t, UserPatch{PasswordHash: ptr("")}.Validate()))
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))
	assert.False(t, RoleEditor.AtLeast(RoleModerator))
	assert.False(t, Role("ghost").AtLeast(RoleEditor))
}

func TestSettingsPatch(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "CahayaDigital25", s.SiteName)
	assert.Equal(t, "CD", s.LogoText)
	assert.Equal(t, "#e53e3e", s.PrimaryColor)
	assert.Equal(t, "#333333", s.SecondaryColor)
	assert.Equal(t, "#f6ad55", s.AccentColor)

	p := SettingsPatch{SiteName: ptr("Cahaya Digital"), AccentColor: ptr("#000")}
	require.NoError(t, p.Validate())
	p.Apply(&s)
	assert.Equal(t, "Cahaya Digital", s.SiteName)
	assert.Equal(t, "#000", s.AccentColor)
	assert.Equal(t, "CD", s.LogoText)

	assert.Equal(t, "primaryColor", fieldOf(t, SettingsPatch{PrimaryColor: ptr("red")}.Validate()))
	assert.Equal(t, "siteName", fieldOf(t, SettingsPatch{SiteName: ptr(" ")}.Validate()))
}
