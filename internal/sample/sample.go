// Package sample provides built-in sample texts and random text generation.
package sample

// Texts returns the sample inputs offered next to the text field.
func Texts() []string {
	return []string{
		"Hello world",
		"Shannon entropy was introduced by Claude Shannon in 1948",
		"AAAAAAAA",
		"The quick brown fox jumps over the lazy dog",
	}
}

// Label shortens a sample to at most 20 runes for button-style display.
func Label(text string) string {
	runes := []rune(text)
	if len(runes) <= 20 {
		return text
	}
	return string(runes[:20]) + "..."
}
