package sample

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadVocabulary(t *testing.T) {
	data := "# custom words\nalpha\n\n  beta  \nçiçek\n"
	words, err := ReadVocabulary(strings.NewReader(data), "words.txt")
	if err != nil {
		t.Fatalf("read vocabulary: %v", err)
	}
	want := []string{"alpha", "beta", "çiçek"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, words)
		}
	}
}

func TestReadVocabularyErrors(t *testing.T) {
	if _, err := ReadVocabulary(strings.NewReader("# only a comment\n\n"), "empty.txt"); err == nil ||
		!strings.Contains(err.Error(), "empty.txt") {
		t.Fatalf("expected empty vocabulary error, got %v", err)
	}

	broken := errors.New("disk gone")
	_, err := ReadVocabulary(iotest.ErrReader(broken), "broken.txt")
	if !errors.Is(err, broken) {
		t.Fatalf("expected read error to wrap cause, got %v", err)
	}
}
