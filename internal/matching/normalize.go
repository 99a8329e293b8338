package matching

import "strings"

// yoFolder maps the Cyrillic ё to е so that catalog lookups are stable for
// names that are typed either way.
var yoFolder = strings.NewReplacer("ё", "е", "Ё", "Е")

// Normalize canonicalizes a free-text ingredient or category name: trims
// surrounding whitespace, lowercases, collapses internal whitespace runs to
// a single space and folds look-alike Cyrillic variants. It is pure, never
// fails and is idempotent, so normalized values can be normalized again.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = yoFolder.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
