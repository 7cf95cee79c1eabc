// Package sample provides built-in sample texts and random text generation.
package sample

import (
	"math/rand"
	"strings"
	"unicode"
)

// DefaultPunct is the punctuation noise appended by Generate.
const DefaultPunct = ".,!?;:\"'()-"

// Vocabulary is a small mixed-script word pool for random texts.
var Vocabulary = []string{
	"the", "of", "and", "entropy", "signal", "noise", "channel", "bit",
	"word", "text", "shannon", "1948", "information", "théorie", "größe",
	"résumé", "日本語", "情報", "энтропия", "bilgi", "çeşitlilik", "λόγος",
	"42", "x", "a",
}

// Generator produces randomized texts from a word pool.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator with a fixed seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Words selects count words uniformly and applies caps/punctuation noise.
func (g *Generator) Words(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result
}

// Text joins generated words with random runs of whitespace.
func (g *Generator) Text(words []string, count int, capsPct, punctPct float64) string {
	picked := g.Words(words, count, capsPct, punctPct, []rune(DefaultPunct))
	seps := []string{" ", "  ", "\t", "\n", " \n "}
	var b strings.Builder
	for i, w := range picked {
		if i > 0 {
			b.WriteString(seps[g.rnd.Intn(len(seps))])
		}
		b.WriteString(w)
	}
	return b.String()
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
