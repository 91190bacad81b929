package fcubed

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerKey lower-cases key using the casing rules of tag.
func lowerKey(tag language.Tag, key string) string {
	return cases.Lower(tag).String(key)
}

// keyMatcher returns a predicate reporting whether a key equals key,
// ignoring case under the casing rules of tag. Keys are lower-cased with
// the rules of tag, which handle the Turkic dotted and dotless i, and then
// case-folded, which maps final sigma, ligatures and the like to one form.
// A cases.Caser is stateful, so every matcher owns its own.
func keyMatcher(tag language.Tag, key string) func(string) bool {
	lower := cases.Lower(tag)
	fold := cases.Fold()
	canonical := func(s string) string {
		return fold.String(lower.String(s))
	}
	want := canonical(key)
	return func(candidate string) bool {
		return canonical(candidate) == want
	}
}
