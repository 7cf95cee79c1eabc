package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/textstats"
)

func plainOptions() Options {
	return Options{
		Top:      10,
		Width:    80,
		Messages: i18n.For(i18n.English),
		Styles:   NewStyles(model.ThemeDark, false),
	}
}

func fixedResult(text string) model.AnalysisResult {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return textstats.NewAnalyzer(func() time.Time { return ts }).Analyze(text)
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Count", "Share"}
	rows := [][]string{
		{"the", "12", "40.00%"},
		{"çiçek", "3", "10.00%"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true})
	want := []string{
		"Word   Count   Share",
		"the       12  40.00%",
		"çiçek      3  10.00%",
	}
	assert.Equal(t, want, lines)
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable(nil, [][]string{{"日本", "1"}, {"ab", "22"}}, map[int]bool{1: true})
	require.Len(t, lines, 2)
	assert.Equal(t, displayWidth(lines[0]), displayWidth(lines[1]))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "▅▅▅", Sparkline([]float64{2, 2, 2}))
	assert.Equal(t, "▁█", Sparkline([]float64{0, 5}))
	line := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, "▁▂▃▄▅▆▇█", line)
}

func TestRenderResultMetrics(t *testing.T) {
	r := fixedResult("the cat sat on the mat")
	out := RenderResultString(r, plainOptions())

	assert.Contains(t, out, "Analysis Results")
	assert.Contains(t, out, "Word Count")
	assert.Contains(t, out, "0.8333")
	assert.Contains(t, out, "2.2516  bits/word")
	assert.Contains(t, out, "Interpretation: Low entropy")
	assert.Contains(t, out, "Top 5 Word Frequencies")
	assert.NotContains(t, out, "Share")
}

func TestRenderResultTopBars(t *testing.T) {
	r := fixedResult("a a a a b b c")
	opts := plainOptions()
	opts.Top = 2
	out := RenderResultString(r, opts)

	lines := strings.Split(out, "\n")
	var bars []string
	for _, line := range lines {
		if strings.Contains(line, "█") {
			bars = append(bars, line)
		}
	}
	require.Len(t, bars, 2)
	assert.True(t, strings.HasPrefix(bars[0], "a "))
	assert.True(t, strings.HasSuffix(bars[0], " 4"))
	assert.True(t, strings.HasPrefix(bars[1], "b "))
	assert.Greater(t, strings.Count(bars[0], "█"), strings.Count(bars[1], "█"))
}

func TestRenderResultTruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("x", 40)
	out := RenderResultString(fixedResult(long), plainOptions())
	assert.Contains(t, out, strings.Repeat("x", labelWidth-1)+"…")
	assert.NotContains(t, out, strings.Repeat("x", labelWidth+1))
}

func TestRenderResultAllTable(t *testing.T) {
	opts := plainOptions()
	opts.All = true
	out := RenderResultString(fixedResult("b a b"), opts)

	assert.Contains(t, out, "Word Frequencies")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "33.33%")
}

func TestRenderResultEmpty(t *testing.T) {
	out := RenderResultString(fixedResult("  ...  "), plainOptions())
	assert.Contains(t, out, "0.0000")
	assert.Contains(t, out, "No analysis results yet")
	assert.NotContains(t, out, "█")
}

func TestRenderResultTurkish(t *testing.T) {
	opts := plainOptions()
	opts.Messages = i18n.For(i18n.Turkish)
	out := RenderResultString(fixedResult("bir iki üç"), opts)
	assert.Contains(t, out, "Kelime Sayısı")
	assert.Contains(t, out, "bit/kelime")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short text", Preview("short\n text"))
	long := strings.Repeat("é", 60)
	assert.Equal(t, strings.Repeat("é", 50)+"...", Preview(long))
	assert.Equal(t, strings.Repeat("a", 50), Preview(strings.Repeat("a", 50)))
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, nil, plainOptions()))
	assert.Contains(t, buf.String(), "No analysis history yet")

	items := []model.HistoryItem{
		{ID: "newest", Result: fixedResult("one two three four")},
		{ID: "oldest", Result: fixedResult("one one one")},
	}
	buf.Reset()
	require.NoError(t, RenderHistory(&buf, items, plainOptions()))
	out := buf.String()

	assert.Contains(t, out, "Analysis History (2)")
	assert.Less(t, strings.Index(out, "newest"), strings.Index(out, "oldest"))
	assert.Contains(t, out, "Entropy trend: ▁█")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := fixedResult("Hello hello world")
	require.NoError(t, RenderJSON(&buf, r, false))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 3, decoded["wordCount"])
	assert.EqualValues(t, 2, decoded["uniqueWordCount"])
	assert.Equal(t, []any{"hello", "world"}, decoded["uniqueWords"])
	assert.Contains(t, buf.String(), "\n  \"")
}
