package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/textstats"
)

const (
	labelWidth  = 24
	maxBarWidth = 40
	minBarWidth = 10
)

// Options controls result rendering.
type Options struct {
	Top      int
	All      bool
	Width    int
	Messages i18n.Messages
	Styles   Styles
}

// FormatNumber formats a metric with four decimals.
func FormatNumber(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// RenderResult prints the metrics, interpretation, and word frequencies.
func RenderResult(w io.Writer, r model.AnalysisResult, opts Options) error {
	msg := opts.Messages
	st := opts.Styles

	lines := []string{st.Title.Render(msg.ResultsTitle)}
	for _, line := range metricLines(r, msg) {
		lines = append(lines, st.Value.Render(line))
	}
	interp := textstats.Interpret(r.ShannonEntropy)
	lines = append(lines, "",
		st.Label.Render(msg.Interpretation+": ")+st.Accent.Render(msg.Interpretations[interp]))

	if r.IsEmpty() {
		lines = append(lines, "", st.Muted.Render(msg.NoResults))
		return writeLines(w, lines)
	}

	if top := textstats.TopWords(r, opts.Top); len(top) > 0 {
		lines = append(lines, "", st.Title.Render(fmt.Sprintf(msg.TopWords, len(top))))
		lines = append(lines, barLines(top, barWidth(opts.Width), st)...)
	}
	if opts.All {
		lines = append(lines, "", st.Title.Render(msg.AllWords))
		lines = append(lines, frequencyLines(r, msg)...)
	}
	return writeLines(w, lines)
}

// RenderResultString is RenderResult into a string.
func RenderResultString(r model.AnalysisResult, opts Options) string {
	var b strings.Builder
	if err := RenderResult(&b, r, opts); err != nil {
		return err.Error()
	}
	return strings.TrimRight(b.String(), "\n")
}

func metricLines(r model.AnalysisResult, msg i18n.Messages) []string {
	percent := textstats.NormalizedEntropy(r) * 100
	rows := [][]string{
		{msg.WordCount, fmt.Sprintf("%d", r.WordCount), ""},
		{msg.UniqueWords, fmt.Sprintf("%d", r.UniqueWordCount), ""},
		{msg.LexicalDiversity, FormatNumber(r.LexicalDiversity), "(" + msg.RatioExplanation + ")"},
		{msg.ShannonEntropy, FormatNumber(r.ShannonEntropy),
			fmt.Sprintf("%s  (%.1f%% %s)", msg.BitsPerWord, percent, msg.OfMax)},
	}
	lines := formatTable(nil, rows, map[int]bool{1: true})
	lines = append(lines, fmt.Sprintf("(%s)", msg.EntropyExplanation))
	return lines
}

func barWidth(total int) int {
	if total <= 0 {
		total = fallbackWidth
	}
	// label, two gaps and a count column
	w := total - labelWidth - 2 - 8
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < minBarWidth {
		w = minBarWidth
	}
	return w
}

func barLines(top []model.WordCount, width int, st Styles) []string {
	maxCount := top[0].Count
	for _, wc := range top {
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}
	lines := make([]string, 0, len(top))
	for _, wc := range top {
		n := int(math.Round(float64(wc.Count) / float64(maxCount) * float64(width)))
		if n < 1 {
			n = 1
		}
		label := runewidth.FillRight(truncate(wc.Word, labelWidth), labelWidth)
		lines = append(lines, fmt.Sprintf("%s %s %d", st.Label.Render(label), st.Bar.Render(strings.Repeat("█", n)), wc.Count))
	}
	return lines
}

func frequencyLines(r model.AnalysisResult, msg i18n.Messages) []string {
	items := textstats.TopWords(r, r.UniqueWordCount)
	rows := make([][]string, 0, len(items))
	for _, wc := range items {
		share := float64(wc.Count) / float64(r.WordCount) * 100
		rows = append(rows, []string{wc.Word, fmt.Sprintf("%d", wc.Count), fmt.Sprintf("%.2f%%", share)})
	}
	return formatTable([]string{msg.Word, msg.Count, msg.Share}, rows, map[int]bool{1: true, 2: true})
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
