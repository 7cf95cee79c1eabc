// Package textstats computes word-level statistics over raw text.
package textstats

import (
	"math"
	"sort"

	"github.com/verte-zerg/zscore/internal/model"
)

const (
	mediumEntropyBits = 3.0
	highEntropyBits   = 6.0
)

// LexicalDiversity returns uniqueCount/totalCount, or 0 when totalCount is 0.
func LexicalDiversity(uniqueCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0
	}
	return float64(uniqueCount) / float64(totalCount)
}

// ShannonEntropy returns -Σ p·log2(p) in bits per word over the frequency table,
// or 0 when totalCount is 0.
func ShannonEntropy(frequency map[string]int, totalCount int) float64 {
	if totalCount == 0 {
		return 0
	}
	words := make([]string, 0, len(frequency))
	for w := range frequency {
		words = append(words, w)
	}
	sort.Strings(words)
	return entropy(words, frequency, totalCount)
}

// entropy sums in the order of words with Neumaier compensation so the result
// does not depend on map iteration order.
func entropy(words []string, frequency map[string]int, totalCount int) float64 {
	total := float64(totalCount)
	var sum, comp float64
	for _, w := range words {
		c := frequency[w]
		if c <= 0 {
			continue
		}
		p := float64(c) / total
		term := -p * math.Log2(p)
		t := sum + term
		if math.Abs(sum) >= math.Abs(term) {
			comp += (sum - t) + term
		} else {
			comp += (term - t) + sum
		}
		sum = t
	}
	h := sum + comp
	if h <= 0 {
		// Normalizes -0 from a single distinct word.
		return 0
	}
	return h
}

// MaxEntropy is the entropy of uniqueCount equiprobable words.
func MaxEntropy(uniqueCount int) float64 {
	if uniqueCount <= 1 {
		return 0
	}
	return math.Log2(float64(uniqueCount))
}

// NormalizedEntropy scales the entropy of r into [0, 1] against MaxEntropy.
func NormalizedEntropy(r model.AnalysisResult) float64 {
	maxH := MaxEntropy(r.UniqueWordCount)
	if maxH == 0 {
		return 0
	}
	n := r.ShannonEntropy / maxH
	if n > 1 {
		return 1
	}
	return n
}

// Interpret buckets an entropy value in bits per word.
func Interpret(entropyBits float64) model.Interpretation {
	switch {
	case entropyBits < mediumEntropyBits:
		return model.InterpretationLow
	case entropyBits < highEntropyBits:
		return model.InterpretationMedium
	default:
		return model.InterpretationHigh
	}
}
