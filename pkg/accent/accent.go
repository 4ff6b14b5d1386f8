// Package accent strips pitch-accent and length marks from Serbian word forms
// so that accented dictionary forms can be compared with plain user input.
package accent

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= '\u0300' && r <= '\u036f'
})

// Normalize canonically decomposes text and removes every combining
// diacritical mark. Case is left untouched.
func Normalize(text string) string {
	// a fresh chain per call, transform.Chain is stateful
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

// Matches reports whether a and b are the same word once case and accents are ignored.
func Matches(a, b string) bool {
	return Normalize(strings.ToLower(a)) == Normalize(strings.ToLower(b))
}
