// Package textstats computes word-level statistics over raw text.
package textstats

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize lower-cases text, drops every rune that is not a letter, a number,
// or whitespace, and splits the remainder on runs of whitespace.
// Dropped runes join their neighbours: "don't" becomes "dont".
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	// A Caser keeps state, so each call gets its own.
	for _, r := range cases.Lower(language.Und).String(text) {
		switch {
		case isSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// IsBlank reports whether text holds nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, isSpace) == ""
}

// isSpace matches the ECMAScript whitespace class: NEL is not whitespace,
// the byte order mark is.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}
