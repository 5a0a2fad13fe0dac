package usecase

import (
	"fmt"

	"topwords/internal/domain"
	"topwords/internal/port"
)

// ExtractWordFrequency counts tokens in a single pass, skipping empty tokens
// and stop words. When stemmer is non-nil each token is counted under its stem.
// It returns the counts and the largest count seen, which is 0 only when
// nothing was counted.
func ExtractWordFrequency(tokens []string, stopWords map[string]struct{}, stemmer port.Stemmer) (*domain.FrequencyMap, int) {
	freq := domain.NewFrequencyMap(len(tokens) / 2)
	maxFreq := 0

	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}

		word := token
		if stemmer != nil {
			if stemmed := stemmer.Stem(token); stemmed != "" {
				word = stemmed
			}
		}

		if count := freq.Add(word, 1); count > maxFreq {
			maxFreq = count
		}
	}

	return freq, maxFreq
}

// BucketRank places every word of freq into the bucket at index count-1.
// Buckets are filled in first-occurrence order, so words sharing a count keep
// the order in which they first appeared in the text.
func BucketRank(freq *domain.FrequencyMap, maxFreq int) domain.Buckets {
	if freq == nil || freq.Len() == 0 {
		violate("BucketRank called with an empty frequency map")
	}
	if maxFreq < 1 {
		violate("BucketRank called with maxFreq %d", maxFreq)
	}

	buckets := make(domain.Buckets, maxFreq)
	freq.Each(func(word string, count int) {
		if count < 1 || count > maxFreq {
			violate("word %q has count %d outside [1, %d]", word, count, maxFreq)
		}
		buckets[count-1] = append(buckets[count-1], word)
	})

	return buckets
}

// SelectTopK walks buckets from the highest frequency down and collects at
// most k words. Fewer than k words are returned when the buckets run out.
func SelectTopK(buckets domain.Buckets, maxFreq, k int) []string {
	if k < 1 {
		violate("SelectTopK called with k %d", k)
	}
	if len(buckets) == 0 {
		violate("SelectTopK called with no buckets")
	}
	if maxFreq < 1 || maxFreq > len(buckets) {
		violate("SelectTopK called with maxFreq %d for %d buckets", maxFreq, len(buckets))
	}

	words := make([]string, 0, min(k, buckets.Len()))
	for i := maxFreq - 1; i >= 0 && len(words) < k; i-- {
		for _, word := range buckets[i] {
			if word == "" {
				continue
			}
			words = append(words, word)
			if len(words) == k {
				break
			}
		}
	}

	return words
}

func violate(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{domain.ErrContractViolation}, args...)...))
}
