package entity

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return isImageRef(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// isImageRef accepts absolute http(s) URLs and root-relative paths such as /uploads/a.jpg.
// The empty string is left to the required rule.
func isImageRef(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return !strings.ContainsFunc(s, unicode.IsSpace)
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// fieldNames maps Go field names to the JSON names clients send.
var fieldNames = map[string]string{
	"ImageURL":       "imageUrl",
	"AuthorImage":    "authorImage",
	"IsFeatured":     "isFeatured",
	"IsBreaking":     "isBreaking",
	"IsEditorsPick":  "isEditorsPick",
	"FullName":       "fullName",
	"IsActive":       "isActive",
	"PasswordHash":   "password",
	"SiteName":       "siteName",
	"LogoText":       "logoText",
	"PrimaryColor":   "primaryColor",
	"SecondaryColor": "secondaryColor",
	"AccentColor":    "accentColor",
}

func jsonField(name string) string {
	if n, ok := fieldNames[name]; ok {
		return n
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

const (
	categoryMessage = "must be one of politik, ekonomi, teknologi, olahraga, hiburan, pendidikan, kesehatan, gaya_hidup, otomotif, properti"
	roleMessage     = "must be one of admin, moderator, editor"
)

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "category":
		return categoryMessage
	case "role":
		return roleMessage
	case "imageurl":
		return "must be an http(s) URL or an absolute path"
	case "hexcolor":
		return "must be a hex color such as #e53e3e"
	case "username":
		return "must contain only letters, digits, dots, dashes or underscores"
	default:
		return "is invalid"
	}
}

// toValidationError converts the first validator failure into a *ValidationError.
// field overrides the reported field name for single-value checks.
func toValidationError(err error, field string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := field
		if name == "" {
			name = jsonField(fe.Field())
		}
		return &ValidationError{Field: name, Message: fieldMessage(fe)}
	}
	return fmt.Errorf("%w: %v", ErrValidationFailed, err)
}

func validateStruct(s any) error {
	return toValidationError(validate.Struct(s), "")
}

// checkVar validates a single value. Used for patch fields, where nil means "unchanged".
func checkVar(field string, value any, tag string) error {
	return toValidationError(validate.Var(value, tag), field)
}

// ValidateEmail checks the syntax of an email address.
func ValidateEmail(email string) error {
	if err := checkVar("email", email, "required,email,max=254"); err != nil {
		return err
	}
	// validator accepts some forms net/mail rejects (and vice versa); require both.
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// NormalizeEmail lower-cases and trims an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks an article insert shape.
func (in ArticleInput) Validate() error {
	return validateStruct(in)
}

// Validate checks the supplied fields of an article patch.
func (p ArticlePatch) Validate() error {
	checks := []struct {
		field string
		value *string
		tag   string
	}{
		{"title", p.Title, "required,notblank,max=300"},
		{"content", p.Content, "max=200000"},
		{"summary", p.Summary, "max=1000"},
		{"imageUrl", p.ImageURL, "required,imageurl,max=2048"},
		{"author", p.Author, "required,notblank,max=120"},
		{"authorImage", p.AuthorImage, "imageurl,max=2048"},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := checkVar(c.field, *c.value, c.tag); err != nil {
			return err
		}
	}
	if p.Category != nil && !p.Category.IsValid() {
		return &ValidationError{Field: "category", Message: categoryMessage}
	}
	return nil
}
