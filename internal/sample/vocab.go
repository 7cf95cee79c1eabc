package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadVocabulary reads one word per line from r. Blank lines and # comments
// are skipped. name labels r in errors.
func ReadVocabulary(r io.Reader, name string) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", name, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary %s is empty", name)
	}
	return words, nil
}
