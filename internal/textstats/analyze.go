package textstats

import (
	"time"

	"github.com/verte-zerg/zscore/internal/model"
)

// Analyzer runs the tokenize, count, and metric pipeline. It holds no state
// between calls and is safe for concurrent use.
type Analyzer struct {
	now func() time.Time
}

var defaultAnalyzer = NewAnalyzer(nil)

// NewAnalyzer returns an Analyzer stamping results with now, or time.Now when nil.
func NewAnalyzer(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{now: now}
}

// Analyze computes the full result for text using the current time.
func Analyze(text string) model.AnalysisResult {
	return defaultAnalyzer.Analyze(text)
}

// Analyze computes the full result for text. Empty or whitespace-only text
// yields a zero-valued result with empty (non-nil) collections.
func (a *Analyzer) Analyze(text string) model.AnalysisResult {
	tokens := Tokenize(text)
	total := len(tokens)
	freq := CountWords(tokens)
	unique := len(freq.Words)

	return model.AnalysisResult{
		Text:             text,
		WordCount:        total,
		UniqueWords:      freq.Words,
		UniqueWordCount:  unique,
		LexicalDiversity: LexicalDiversity(unique, total),
		ShannonEntropy:   entropy(freq.Words, freq.Counts, total),
		WordFrequency:    freq.Counts,
		Timestamp:        a.now(),
	}
}
