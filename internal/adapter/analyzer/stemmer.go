package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"

	"topwords/internal/domain"
)

// stemFunc matches the Stem functions of the snowball language packages.
type stemFunc func(word string, stemStopWords bool) string

var stemmers = map[string]stemFunc{
	"english": english.Stem,
	"french":  french.Stem,
	"russian": russian.Stem,
	"spanish": spanish.Stem,
	"swedish": swedish.Stem,
}

// SnowballStemmer stems words with the Snowball algorithm of one language.
type SnowballStemmer struct {
	language string
	stem     stemFunc
}

// NewStemmer returns the stemmer registered for language. Lookup ignores
// case and surrounding whitespace.
func NewStemmer(language string) (*SnowballStemmer, error) {
	name := strings.ToLower(strings.TrimSpace(language))
	fn, ok := stemmers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
	}
	return &SnowballStemmer{language: name, stem: fn}, nil
}

// Stem returns the stem of word, or word itself when stemming yields nothing.
// Stop words are filtered before stemming, so they are stemmed like any other word.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed := s.stem(word, true)
	if stemmed == "" {
		return word
	}
	return stemmed
}

// Language returns the registry name of the stemmer.
func (s *SnowballStemmer) Language() string {
	return s.language
}

// Languages returns the registered stemmer languages in sorted order.
func Languages() []string {
	names := make([]string, 0, len(stemmers))
	for name := range stemmers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
