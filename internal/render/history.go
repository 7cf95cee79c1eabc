package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/zscore/internal/model"
)

const previewRunes = 50

// Preview shortens text to a single line of at most 50 runes plus an ellipsis.
func Preview(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= previewRunes {
		return flat
	}
	return string(runes[:previewRunes]) + "..."
}

// FormatTimestamp renders a timestamp in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

// RenderHistory prints history entries newest first with an entropy trend.
func RenderHistory(w io.Writer, items []model.HistoryItem, opts Options) error {
	msg := opts.Messages
	st := opts.Styles
	if len(items) == 0 {
		return writeLines(w, []string{st.Muted.Render(msg.HistoryEmpty)})
	}

	lines := []string{st.Title.Render(fmt.Sprintf("%s (%d)", msg.HistoryTitle, len(items)))}
	for _, item := range items {
		r := item.Result
		lines = append(lines,
			"",
			st.Accent.Render(item.ID)+"  "+st.Muted.Render(msg.AnalyzedOn+" "+FormatTimestamp(r.Timestamp)),
			st.Value.Render(Preview(r.Text)),
			st.Label.Render(HistorySummary(r, opts)),
		)
	}
	if len(items) > 1 {
		values := make([]float64, len(items))
		for i, item := range items {
			values[len(items)-1-i] = item.Result.ShannonEntropy
		}
		lines = append(lines, "", st.Label.Render(msg.Trend+": ")+st.Bar.Render(Sparkline(values)))
	}
	return writeLines(w, lines)
}

// HistorySummary formats the four headline metrics on one line.
func HistorySummary(r model.AnalysisResult, opts Options) string {
	msg := opts.Messages
	return fmt.Sprintf("%s: %d  %s: %d  %s: %s  %s: %s %s",
		msg.WordCount, r.WordCount,
		msg.UniqueWords, r.UniqueWordCount,
		msg.LexicalDiversity, FormatNumber(r.LexicalDiversity),
		msg.ShannonEntropy, FormatNumber(r.ShannonEntropy), msg.BitsPerWord,
	)
}
