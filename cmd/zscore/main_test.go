package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/zscore/internal/config"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Cleanup(config.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	config.Reload()
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	if !containsArg(args, "--log-level") {
		args = append(args, "--log-level", "disabled")
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func containsArg(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestAnalyzeArgsJSON(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "", "analyze", "--json", "--no-save", "Hello,", "hello", "world!")
	require.NoError(t, err)

	var r model.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Hello, hello world!", r.Text)
	assert.Equal(t, 3, r.WordCount)
	assert.Equal(t, []string{"hello", "world"}, r.UniqueWords)
	assert.Equal(t, map[string]int{"hello": 2, "world": 1}, r.WordFrequency)

	_, statErr := os.Stat(config.DefaultDBPath())
	assert.True(t, os.IsNotExist(statErr), "--no-save must not create the database")
}

func TestAnalyzeBlankInput(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"analyze", "--json", "--no-save", " \ufeff\t"},
		{"analyze", "--json", " \ufeff\t"},
	} {
		out, err := runCLI(t, "", args...)
		require.NoError(t, err)
		var r model.AnalysisResult
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, "", r.Text, "args %v", args)
		assert.Equal(t, 0, r.WordCount)
	}
}

func TestAnalyzeStdin(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "the cat sat on the mat\n", "analyze", "--no-save", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "0.8333")
	assert.Contains(t, out, "Word Frequencies")
	assert.Contains(t, out, "33.33%")
}

func TestAnalyzeFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAAAAAAA"), 0o644))

	out, err := runCLI(t, "", "analyze", "--no-save", "--json", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"uniqueWordCount": 1`)

	_, err = runCLI(t, "", "analyze", "--no-save", "--file", path, "extra")
	require.Error(t, err)
}

func TestAnalyzeConfigAndFlagPrecedence(t *testing.T) {
	isolate(t)
	writeConfig(t, "[analyze]\ntop = 2\nsave = false\n")

	out, err := runCLI(t, "", "analyze", "a b c d a")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 2 Word Frequencies")

	out, err = runCLI(t, "", "analyze", "--top", "3", "a b c d a")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 3 Word Frequencies")

	_, statErr := os.Stat(config.DefaultDBPath())
	assert.True(t, os.IsNotExist(statErr), "save = false must not create the database")
}

func TestConfigLangAndHistorySizePrecedence(t *testing.T) {
	isolate(t)
	writeConfig(t, "[analyze]\nhistory-size = 2\n\n[ui]\nlang = \"tr\"\n")

	out, err := runCLI(t, "", "analyze", "--no-save", "bir iki")
	require.NoError(t, err)
	assert.Contains(t, out, "Kelime Sayısı", "config lang must win over the environment")

	out, err = runCLI(t, "", "analyze", "--no-save", "--lang", "en", "bir iki")
	require.NoError(t, err)
	assert.Contains(t, out, "Word Count", "--lang must win over config")

	for _, text := range []string{"one", "two", "three"} {
		_, err := runCLI(t, "", "analyze", text)
		require.NoError(t, err)
	}
	out, err = runCLI(t, "", "history", "list", "--json")
	require.NoError(t, err)
	var items []model.HistoryItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)

	_, err = runCLI(t, "", "analyze", "--history-size", "3", "four")
	require.NoError(t, err)
	out, err = runCLI(t, "", "history", "list", "--json", "--history-size", "3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "four", items[0].Result.Text)
}

func TestLanguageFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("LANG", "tr_TR.UTF-8")
	out, err := runCLI(t, "", "analyze", "--no-save", "bir iki")
	require.NoError(t, err)
	assert.Contains(t, out, "Kelime Sayısı")

	out, err = runCLI(t, "", "analyze", "--no-save", "--lang", "en", "bir iki")
	require.NoError(t, err)
	assert.Contains(t, out, "Word Count")
}

func TestHistoryCommands(t *testing.T) {
	isolate(t)
	_, err := runCLI(t, "", "analyze", "first entry")
	require.NoError(t, err)
	_, err = runCLI(t, "", "analyze", "second entry here")
	require.NoError(t, err)
	_, err = runCLI(t, "", "analyze", "   ")
	require.NoError(t, err)

	out, err := runCLI(t, "", "history", "list", "--json")
	require.NoError(t, err)
	var items []model.HistoryItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "second entry here", items[0].Result.Text)

	out, err = runCLI(t, "", "history", "show", items[1].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "first entry")

	out, err = runCLI(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis History (2)")

	_, err = runCLI(t, "", "history", "rm", items[1].ID)
	require.NoError(t, err)
	_, err = runCLI(t, "", "history", "rm", items[1].ID)
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)

	_, err = runCLI(t, "", "history", "clear")
	require.NoError(t, err)
	out, err = runCLI(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No analysis history yet")
}

func TestHistorySizeCap(t *testing.T) {
	isolate(t)
	for _, text := range []string{"one", "two", "three", "four"} {
		_, err := runCLI(t, "", "analyze", "--history-size", "3", text)
		require.NoError(t, err)
	}
	out, err := runCLI(t, "", "history", "list", "--json")
	require.NoError(t, err)
	var items []model.HistoryItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "four", items[0].Result.Text)
	assert.Equal(t, "two", items[2].Result.Text)
}

func TestSamples(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "", "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Hello world")
	assert.Contains(t, out, "4. The quick brown fox jumps over the lazy dog")

	first, err := runCLI(t, "", "samples", "--random", "2", "--seed", "7")
	require.NoError(t, err)
	second, err := runCLI(t, "", "samples", "--random", "2", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, strings.TrimSpace(first))
}

func TestInvalidSettings(t *testing.T) {
	isolate(t)
	_, err := runCLI(t, "", "analyze", "--theme", "neon", "x")
	require.Error(t, err)
	_, err = runCLI(t, "", "analyze", "--top", "-1", "x")
	require.Error(t, err)
	_, err = runCLI(t, "", "analyze", "--log-level", "loud", "x")
	require.Error(t, err)

	writeConfig(t, "[ui]\ncolour = \"red\"\n")
	_, err = runCLI(t, "", "analyze", "x")
	require.Error(t, err)
}

func TestWriteConfigTemplate(t *testing.T) {
	isolate(t)
	path := config.DefaultConfigPath()
	require.NoError(t, writeConfigTemplate(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template(), string(data))

	require.NoError(t, os.WriteFile(path, []byte("[analyze]\ntop = 4\n"), 0o644))
	require.NoError(t, writeConfigTemplate(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[analyze]\ntop = 4\n", string(data))
}

func TestSamplesVocabulary(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("zeta\n"), 0o644))

	out, err := runCLI(t, "", "samples", "--random", "1", "--seed", "3", "--words", "5", "--vocab", path,
		"--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "zeta")
	assert.Len(t, strings.Fields(out), 5)

	_, err = runCLI(t, "", "samples", "--random", "1", "--vocab", filepath.Join(dir, "missing.txt"))
	require.ErrorContains(t, err, "failed to open vocabulary")
}
