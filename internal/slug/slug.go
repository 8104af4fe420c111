// Package slug derives filesystem-safe identifiers from card titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[-\s]+`)
)

// Make returns the ASCII, lowercase, hyphenated form of text.
// "The Fool" becomes "the-fool" and "Pagé of Cups" becomes "page-of-cups".
func Make(text string) string {
	text = ASCII(text)
	text = strings.ToLower(strings.TrimSpace(disallowed.ReplaceAllString(text, "")))
	return separators.ReplaceAllString(text, "-")
}

// ASCII decomposes text (NFKD) and drops everything outside the ASCII range,
// so accented letters fall back to their base letter.
func ASCII(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	result, _, err := transform.String(t, text)
	if err != nil {
		return ""
	}
	return result
}
