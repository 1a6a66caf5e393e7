// Package htmlsanitize turns untrusted markup, such as backend error bodies
// that may be full HTML error pages, into short plain text fit for a notice.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// MaxTextLen bounds the text returned by Text.
const MaxTextLen = 300

var (
	strictOnce sync.Once
	strict     *bluemonday.Policy
)

func policy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
		strict.SkipElementsContent("script", "style", "head", "title")
	})
	return strict
}

// Text strips all markup from s, collapses whitespace and truncates the
// result to MaxTextLen runes. The returned string is unescaped plain text;
// html/template escapes it again on output.
func Text(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	clean := html.UnescapeString(policy().Sanitize(s))
	clean = strings.Join(strings.Fields(clean), " ")
	return truncate(clean, MaxTextLen)
}

// TextOr returns Text(s), or fallback when nothing readable remains.
func TextOr(s, fallback string) string {
	if t := Text(s); t != "" {
		return t
	}
	return fallback
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
