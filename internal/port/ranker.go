package port

import "topwords/internal/domain"

// Ranker returns the most frequent words of a text together with their counts.
type Ranker interface {
	MostFrequentCounts(text string, k int) ([]domain.WordCount, error)
}
