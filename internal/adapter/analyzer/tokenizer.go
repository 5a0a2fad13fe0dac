package analyzer

import (
	"fmt"
	"strings"

	"topwords/internal/domain"
)

// Tokenizer normalizes text into lowercase ASCII words.
type Tokenizer struct {
	splitLines bool
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithLineBreaks makes tabs, carriage returns and line feeds separate words
// like spaces do, instead of being deleted.
func WithLineBreaks() TokenizerOption {
	return func(t *Tokenizer) {
		t.splitLines = true
	}
}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize deletes every character that is neither an ASCII letter nor a
// space, lowercases what is left and splits it on runs of spaces. Deleted
// characters join their neighbours, so "don't" becomes "dont" and "ever\nnote"
// becomes "evernote" unless the tokenizer was built WithLineBreaks.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text to tokenize is empty", domain.ErrInvalidInput)
	}
	return t.splitWords(text), nil
}

// splitWords runs in a single pass over text.
func (t *Tokenizer) splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		case r == ' ' || (t.splitLines && isLineSpace(r)):
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isLineSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
