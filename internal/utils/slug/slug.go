// Package slug turns article titles into URL path segments.
package slug

import (
	"regexp"
	"strings"
)

// MaxLength bounds generated slugs; longer results are cut at a hyphen.
const MaxLength = 120

var (
	disallowed     = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace     = regexp.MustCompile(`\s+`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
	validSlugShape = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate lowercases s, drops everything but ASCII letters, digits and
// hyphens, and joins words with single hyphens.
func Generate(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = disallowed.ReplaceAllString(out, "")
	out = whitespace.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	if len(out) > MaxLength {
		out = out[:MaxLength]
		if i := strings.LastIndex(out, "-"); i > 0 {
			out = out[:i]
		}
		out = strings.Trim(out, "-")
	}
	return out
}

// Valid reports whether s already has slug shape.
func Valid(s string) bool {
	return len(s) <= MaxLength && validSlugShape.MatchString(s)
}
