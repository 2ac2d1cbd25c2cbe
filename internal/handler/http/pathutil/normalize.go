// Package pathutil parses identifiers from request paths and collapses
// concrete paths into route templates for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Evaluated in order; the static article sub-routes must stay ahead of the {id} pattern.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/(featured|breaking|editors-pick|popular)$`), Template: "/api/articles/$1"},
	{Pattern: regexp.MustCompile(`^/api/articles/category/[^/]+$`), Template: "/api/articles/category/{category}"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/{id}"},
	{Pattern: regexp.MustCompile(`^/api/users/[^/]+$`), Template: "/api/users/{id}"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/"},
}

// NormalizePath is the fallback used when a request did not match a ServeMux
// pattern (404s, preflights answered by CORS). Unknown paths collapse to
// "other" to keep label cardinality bounded.
//
//	NormalizePath("/api/articles/123")             // "/api/articles/{id}"
//	NormalizePath("/api/articles/category/hiburan") // "/api/articles/category/{category}"
//	NormalizePath("/api/articles/featured?limit=3") // "/api/articles/featured"
//	NormalizePath("/wp-login.php")                  // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	for _, p := range pathPatterns {
		if m := p.Pattern.FindStringSubmatchIndex(path); m != nil {
			return string(p.Pattern.ExpandString(nil, p.Template, path, m))
		}
	}
	if _, ok := staticPaths[path]; ok {
		return path
	}
	return "other"
}

var staticPaths = map[string]struct{}{
	"/api/articles":    {},
	"/api/settings":    {},
	"/api/subscribers": {},
	"/api/users":       {},
	"/api/auth/login":  {},
	"/api/stats":       {},
	"/rss.xml":         {},
	"/health":          {},
	"/ready":           {},
	"/live":            {},
	"/metrics":         {},
	"/swagger":         {},
}

// Label returns the metric label for a request: the matched ServeMux pattern
// without its method prefix, or NormalizePath of the raw path.
func Label(pattern, path string) string {
	if pattern == "" {
		return NormalizePath(path)
	}
	if _, rest, ok := strings.Cut(pattern, " "); ok {
		return rest
	}
	return pattern
}
