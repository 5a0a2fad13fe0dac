package domain

// FrequencyMap counts words while remembering the order in which each word
// was first seen. Iteration follows that order, which makes ranking ties
// deterministic.
type FrequencyMap struct {
	counts map[string]int
	order  []string
}

// NewFrequencyMap creates an empty map sized for roughly n distinct words.
func NewFrequencyMap(n int) *FrequencyMap {
	return &FrequencyMap{
		counts: make(map[string]int, n),
		order:  make([]string, 0, n),
	}
}

// Add increments the count of word by delta and returns the new count.
func (m *FrequencyMap) Add(word string, delta int) int {
	count, seen := m.counts[word]
	if !seen {
		m.order = append(m.order, word)
	}
	count += delta
	m.counts[word] = count
	return count
}

// Count returns the count of word, or 0 if it was never added.
func (m *FrequencyMap) Count(word string) int {
	return m.counts[word]
}

// Len returns the number of distinct words.
func (m *FrequencyMap) Len() int {
	return len(m.order)
}

// Each calls fn for every word in first-occurrence order.
func (m *FrequencyMap) Each(fn func(word string, count int)) {
	for _, w := range m.order {
		fn(w, m.counts[w])
	}
}

// Words returns the distinct words in first-occurrence order.
func (m *FrequencyMap) Words() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
