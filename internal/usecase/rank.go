package usecase

import (
	"fmt"
	"log/slog"

	"topwords/internal/adapter/analyzer"
	"topwords/internal/domain"
	"topwords/internal/port"
)

// FrequencyUseCase ranks the words of a text by frequency. It owns its
// stemmer configuration, so two use cases never affect each other. A single
// FrequencyUseCase must not be reconfigured while another goroutine ranks with it.
type FrequencyUseCase struct {
	tokenizer port.Tokenizer
	stopWords analyzer.StopWords
	stemmer   port.Stemmer
	logger    *slog.Logger
}

// NewFrequencyUseCase creates a use case with stemming switched off.
func NewFrequencyUseCase(tokenizer port.Tokenizer, stopWords analyzer.StopWords, logger *slog.Logger) *FrequencyUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &FrequencyUseCase{
		tokenizer: tokenizer,
		stopWords: stopWords,
		logger:    logger,
	}
}

// ActivateStemmer switches on stemming for language. An unsupported language
// switches stemming off; the failure is logged, not returned.
func (u *FrequencyUseCase) ActivateStemmer(language string) {
	stemmer, err := analyzer.NewStemmer(language)
	if err != nil {
		u.logger.Warn("stemmer not available, counting unstemmed words", "language", language, "error", err)
		u.stemmer = nil
		return
	}
	u.logger.Info("stemmer activated", "language", stemmer.Language())
	u.stemmer = stemmer
}

// UseStemmer switches on stemming with an already constructed stemmer.
// A nil stemmer switches stemming off.
func (u *FrequencyUseCase) UseStemmer(stemmer port.Stemmer) {
	u.stemmer = stemmer
}

// DeactivateStemmer switches stemming off. Calling it again has no effect.
func (u *FrequencyUseCase) DeactivateStemmer() {
	if u.stemmer != nil {
		u.logger.Info("stemmer deactivated", "language", u.stemmer.Language())
	}
	u.stemmer = nil
}

// StemmerActive reports whether words are stemmed before counting.
func (u *FrequencyUseCase) StemmerActive() bool {
	return u.stemmer != nil
}

// StemmerLanguage returns the active stemmer language, or "" when inactive.
func (u *FrequencyUseCase) StemmerLanguage() string {
	if u.stemmer == nil {
		return ""
	}
	return u.stemmer.Language()
}

// MostFrequentWords returns up to k words of text in descending frequency.
// Words with equal frequency keep their first-occurrence order.
func (u *FrequencyUseCase) MostFrequentWords(text string, k int) ([]string, error) {
	words, _, err := u.rank(text, k)
	return words, err
}

// MostFrequentCounts is MostFrequentWords with the count of every word.
func (u *FrequencyUseCase) MostFrequentCounts(text string, k int) ([]domain.WordCount, error) {
	words, freq, err := u.rank(text, k)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.WordCount, len(words))
	for i, w := range words {
		counts[i] = domain.WordCount{Word: w, Count: freq.Count(w)}
	}
	return counts, nil
}

func (u *FrequencyUseCase) rank(text string, k int) ([]string, *domain.FrequencyMap, error) {
	if text == "" {
		return nil, nil, fmt.Errorf("%w: valid text required to find the most frequent words", domain.ErrInvalidInput)
	}
	if k <= 0 {
		return []string{}, nil, nil
	}

	tokens, err := u.tokenizer.Tokenize(text)
	if err != nil {
		return nil, nil, err
	}

	freq, maxFreq := ExtractWordFrequency(tokens, u.stopWords, u.stemmer)
	u.logger.Debug("counted words",
		"tokens", len(tokens),
		"distinct", freq.Len(),
		"max_frequency", maxFreq,
		"stemmer", u.StemmerLanguage(),
	)
	if maxFreq == 0 {
		return []string{}, freq, nil
	}

	buckets := BucketRank(freq, maxFreq)
	return SelectTopK(buckets, maxFreq, k), freq, nil
}
