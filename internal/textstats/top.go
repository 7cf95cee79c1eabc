package textstats

import (
	"sort"

	"github.com/verte-zerg/zscore/internal/model"
)

// TopWords returns the n most frequent words. Ties keep first-seen order.
func TopWords(r model.AnalysisResult, n int) []model.WordCount {
	if n <= 0 || r.UniqueWordCount == 0 {
		return nil
	}
	items := r.Frequencies()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
