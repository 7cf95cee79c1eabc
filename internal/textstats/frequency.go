package textstats

// Frequency is a token count table that remembers first-seen order.
type Frequency struct {
	Words  []string
	Counts map[string]int
}

// CountWords aggregates tokens into a Frequency in a single pass.
// Every key in Counts has a count of at least one.
func CountWords(tokens []string) Frequency {
	freq := Frequency{
		Words:  []string{},
		Counts: make(map[string]int),
	}
	for _, tok := range tokens {
		if _, seen := freq.Counts[tok]; !seen {
			freq.Words = append(freq.Words, tok)
		}
		freq.Counts[tok]++
	}
	return freq
}
