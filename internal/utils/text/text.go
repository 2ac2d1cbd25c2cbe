// Package text holds rune-aware helpers for turning article HTML into short
// plain-text excerpts.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Ellipsis terminates a truncated excerpt.
const Ellipsis = "…"

// CountRunes counts characters rather than bytes, so "berita…" is 7.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// PlainText returns the visible text of an HTML fragment with whitespace
// collapsed. Script and style contents are dropped.
func PlainText(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate shortens s to at most n runes, ending in Ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if CountRunes(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n-1])) + Ellipsis
}

// Excerpt prefers summary and falls back to the plain text of content.
func Excerpt(summary, content string, n int) string {
	s := strings.TrimSpace(summary)
	if s == "" {
		s = PlainText(content)
	}
	return Truncate(s, n)
}
