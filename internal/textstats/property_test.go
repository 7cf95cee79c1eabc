package textstats

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/sample"
)

func checkInvariants(t *testing.T, r model.AnalysisResult) {
	t.Helper()
	sum := 0
	for w, c := range r.WordFrequency {
		if c < 1 {
			t.Fatalf("word %q has count %d", w, c)
		}
		sum += c
	}
	if sum != r.WordCount {
		t.Fatalf("frequency sum %d != word count %d", sum, r.WordCount)
	}
	if len(r.UniqueWords) != r.UniqueWordCount || len(r.WordFrequency) != r.UniqueWordCount {
		t.Fatalf("unique word count mismatch: %d words, %d keys, count %d",
			len(r.UniqueWords), len(r.WordFrequency), r.UniqueWordCount)
	}
	seen := make(map[string]struct{}, len(r.UniqueWords))
	for _, w := range r.UniqueWords {
		if _, ok := r.WordFrequency[w]; !ok {
			t.Fatalf("unique word %q missing from frequency", w)
		}
		if _, dup := seen[w]; dup {
			t.Fatalf("unique word %q repeated", w)
		}
		seen[w] = struct{}{}
	}
	if r.ShannonEntropy < 0 || math.IsNaN(r.ShannonEntropy) {
		t.Fatalf("invalid entropy %v", r.ShannonEntropy)
	}
	if r.LexicalDiversity < 0 || r.LexicalDiversity > 1 {
		t.Fatalf("lexical diversity %v out of range", r.LexicalDiversity)
	}
	if r.WordCount > 0 && (r.LexicalDiversity == 1) != (r.UniqueWordCount == r.WordCount) {
		t.Fatalf("diversity %v inconsistent with %d/%d", r.LexicalDiversity, r.UniqueWordCount, r.WordCount)
	}
	if (r.ShannonEntropy == 0) != (r.UniqueWordCount <= 1) {
		t.Fatalf("entropy %v inconsistent with %d unique words", r.ShannonEntropy, r.UniqueWordCount)
	}
	if r.ShannonEntropy > MaxEntropy(r.UniqueWordCount)+1e-9 {
		t.Fatalf("entropy %v exceeds max %v", r.ShannonEntropy, MaxEntropy(r.UniqueWordCount))
	}
}

func TestAnalyzeRandomTextInvariants(t *testing.T) {
	gen := sample.New(1948)
	for i := 0; i < 500; i++ {
		text := gen.Text(sample.Vocabulary, i%60, 0.3, 0.3)
		r := Analyze(text)
		checkInvariants(t, r)

		tokens := Tokenize(text)
		var firstSeen []string
		seen := map[string]bool{}
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				firstSeen = append(firstSeen, tok)
			}
		}
		if strings.Join(firstSeen, " ") != strings.Join(r.UniqueWords, " ") {
			t.Fatalf("unique words %v not in first-seen order %v", r.UniqueWords, firstSeen)
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	texts := sample.Texts()
	want := make([]model.AnalysisResult, len(texts))
	for i, text := range texts {
		want[i] = Analyze(text)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, text := range texts {
				got := Analyze(text)
				if got.WordCount != want[i].WordCount || got.ShannonEntropy != want[i].ShannonEntropy {
					errs <- text
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for text := range errs {
		t.Fatalf("concurrent analysis diverged for %q", text)
	}
}
