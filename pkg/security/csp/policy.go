// Package csp builds Content-Security-Policy header values.
package csp

import (
	"slices"
	"strings"
)

// Header names for enforcing and report-only policies.
const (
	HeaderName           = "Content-Security-Policy"
	ReportOnlyHeaderName = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the rendering order so header values are stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Policy is a set of directives. The zero value is an empty policy.
type Policy struct {
	directives map[string][]string
}

// Directive returns a copy of p with name set to sources. Unknown directive
// names are kept but rendered after the known ones, in call order.
func (p Policy) Directive(name string, sources ...string) Policy {
	next := make(map[string][]string, len(p.directives)+1)
	for k, v := range p.directives {
		next[k] = v
	}
	next[name] = append([]string(nil), sources...)
	return Policy{directives: next}
}

// String renders the header value, e.g. "default-src 'none'; frame-ancestors 'none'".
func (p Policy) String() string {
	var parts []string
	seen := make(map[string]bool, len(directiveOrder))
	for _, name := range directiveOrder {
		seen[name] = true
		if sources := p.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	var extra []string
	for name := range p.directives {
		if !seen[name] && len(p.directives[name]) > 0 {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		parts = append(parts, name+" "+strings.Join(p.directives[name], " "))
	}
	return strings.Join(parts, "; ")
}

// IsEmpty reports whether p has no directives.
func (p Policy) IsEmpty() bool { return len(p.directives) == 0 }

// API is the policy for JSON responses: nothing may load and nothing may frame them.
func API() Policy {
	return Policy{}.
		Directive("default-src", "'none'").
		Directive("frame-ancestors", "'none'").
		Directive("base-uri", "'none'").
		Directive("form-action", "'none'")
}

// SwaggerUI allows the inline bootstrap script and styles the bundled UI uses.
func SwaggerUI() Policy {
	return Policy{}.
		Directive("default-src", "'self'").
		Directive("script-src", "'self'", "'unsafe-inline'").
		Directive("style-src", "'self'", "'unsafe-inline'").
		Directive("img-src", "'self'", "data:").
		Directive("font-src", "'self'", "data:").
		Directive("connect-src", "'self'").
		Directive("frame-ancestors", "'none'").
		Directive("base-uri", "'self'").
		Directive("object-src", "'none'")
}
