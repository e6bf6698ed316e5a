package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadVocabulary reads one entry per line, trimming whitespace, skipping blank
// lines and dropping repeats.
func ReadVocabulary(r io.Reader) ([]string, error) {
	seen := map[string]bool{}
	var vocab []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		vocab = append(vocab, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}

func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVocabulary(f)
}
