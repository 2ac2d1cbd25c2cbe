package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_String(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   string
	}{
		{"empty", Policy{}, ""},
		{
			"single directive",
			Policy{}.Directive("default-src", "'self'"),
			"default-src 'self'",
		},
		{
			"rendered in fixed order",
			Policy{}.
				Directive("frame-ancestors", "'none'").
				Directive("script-src", "'self'", "https://cdn.example.com").
				Directive("default-src", "'self'"),
			"default-src 'self'; script-src 'self' https://cdn.example.com; frame-ancestors 'none'",
		},
		{
			"unknown directives last and sorted",
			Policy{}.
				Directive("worker-src", "'none'").
				Directive("manifest-src", "'self'").
				Directive("default-src", "'none'"),
			"default-src 'none'; manifest-src 'self'; worker-src 'none'",
		},
		{
			"empty source list is skipped",
			Policy{}.Directive("img-src").Directive("default-src", "'none'"),
			"default-src 'none'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.String())
		})
	}
}

func TestPolicy_DirectiveDoesNotMutate(t *testing.T) {
	base := Policy{}.Directive("default-src", "'self'")
	_ = base.Directive("default-src", "'none'")
	assert.Equal(t, "default-src 'self'", base.String())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'; form-action 'none'; base-uri 'none'", API().String())

	swagger := SwaggerUI().String()
	assert.Contains(t, swagger, "script-src 'self' 'unsafe-inline'")
	assert.Contains(t, swagger, "object-src 'none'")
	assert.False(t, SwaggerUI().IsEmpty())
	assert.True(t, Policy{}.IsEmpty())
}
