package analyzer

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords.txt
var defaultStopWordsRaw string

// StopWords is a set of words excluded from counting.
type StopWords map[string]struct{}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// DefaultStopWords returns the built-in English stop-word list.
func DefaultStopWords() StopWords {
	words, err := LoadStopWords(strings.NewReader(defaultStopWordsRaw))
	if err != nil {
		// Reading from a strings.Reader cannot fail.
		panic(err)
	}
	return words
}

// LoadStopWords reads comma-separated words, any number per line.
// Entries are trimmed and lowercased; empty entries are ignored.
func LoadStopWords(r io.Reader) (StopWords, error) {
	words := make(StopWords)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, word := range strings.Split(scanner.Text(), ",") {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop words: %w", err)
	}

	return words, nil
}

// LoadStopWordsFile loads stop words from path, or the built-in list when
// path is empty.
func LoadStopWordsFile(path string) (StopWords, error) {
	if path == "" {
		return DefaultStopWords(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop words file: %w", err)
	}
	defer f.Close()

	return LoadStopWords(f)
}
