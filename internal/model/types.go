// Package model defines shared data structures.
package model

import "time"

// AnalysisResult is the immutable outcome of analyzing one block of text.
type AnalysisResult struct {
	Text             string         `json:"text"`
	WordCount        int            `json:"wordCount"`
	UniqueWords      []string       `json:"uniqueWords"`
	UniqueWordCount  int            `json:"uniqueWordCount"`
	LexicalDiversity float64        `json:"lexicalDiversity"`
	ShannonEntropy   float64        `json:"shannonEntropy"`
	WordFrequency    map[string]int `json:"wordFrequency"`
	Timestamp        time.Time      `json:"timestamp"`
}

// WordCount pairs a token with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies enumerates the frequency mapping in first-seen order.
func (r AnalysisResult) Frequencies() []WordCount {
	out := make([]WordCount, 0, len(r.UniqueWords))
	for _, w := range r.UniqueWords {
		out = append(out, WordCount{Word: w, Count: r.WordFrequency[w]})
	}
	return out
}

// IsEmpty reports whether the analysis found no tokens.
func (r AnalysisResult) IsEmpty() bool {
	return r.WordCount == 0
}

// HistoryItem is a stored analysis keyed by a host-generated identifier.
type HistoryItem struct {
	ID     string         `json:"id"`
	Result AnalysisResult `json:"result"`
}

// Interpretation buckets an entropy value for display.
type Interpretation string

const (
	InterpretationLow    Interpretation = "low"
	InterpretationMedium Interpretation = "medium"
	InterpretationHigh   Interpretation = "high"
)

// Theme selects a colour palette.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the theme for s and whether it is recognised.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeAuto, ThemeLight, ThemeDark:
		return Theme(s), true
	case "":
		return ThemeAuto, true
	default:
		return ThemeAuto, false
	}
}

// Config holds resolved analysis and display settings.
type Config struct {
	Top         int
	Save        bool
	HistorySize int
	Theme       Theme
	Lang        string
}
