package entity

import "strings"

// Default branding values of the portal.
const (
	DefaultSiteName       = "CahayaDigital25"
	DefaultLogoText       = "CD"
	DefaultPrimaryColor   = "#e53e3e"
	DefaultSecondaryColor = "#333333"
	DefaultAccentColor    = "#f6ad55"
)

// Settings holds the site branding. Exactly one record exists at any time.
type Settings struct {
	ID             int64
	SiteName       string
	LogoText       string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
}

// DefaultSettings returns the branding used when no settings row exists yet.
func DefaultSettings() Settings {
	return Settings{
		SiteName:       DefaultSiteName,
		LogoText:       DefaultLogoText,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
	}
}

// SettingsPatch is a partial update. Nil fields are left unchanged.
type SettingsPatch struct {
	SiteName       *string
	LogoText       *string
	PrimaryColor   *string
	SecondaryColor *string
	AccentColor    *string
}

// Validate checks the supplied fields of a settings patch.
func (p SettingsPatch) Validate() error {
	checks := []struct {
		field string
		value *string
		tag   string
	}{
		{"siteName", p.SiteName, "required,notblank,max=100"},
		{"logoText", p.LogoText, "required,notblank,max=10"},
		{"primaryColor", p.PrimaryColor, "required,hexcolor"},
		{"secondaryColor", p.SecondaryColor, "required,hexcolor"},
		{"accentColor", p.AccentColor, "required,hexcolor"},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := checkVar(c.field, strings.TrimSpace(*c.value), c.tag); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the non-nil fields of p into s.
func (p SettingsPatch) Apply(s *Settings) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&s.SiteName, p.SiteName)
	set(&s.LogoText, p.LogoText)
	set(&s.PrimaryColor, p.PrimaryColor)
	set(&s.SecondaryColor, p.SecondaryColor)
	set(&s.AccentColor, p.AccentColor)
}
