package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"topwords/internal/domain"
	"topwords/internal/port"
)

// ResultCache keeps recent rankings in memory, evicting the least recently
// used entry once full. Entries expire after ttl or when Invalidate is called.
type ResultCache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	order      []string
	maxSize    int
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

type cacheEntry struct {
	words      []domain.WordCount
	timestamp  time.Time
	generation uint64
}

func NewResultCache(maxSize int, ttl time.Duration) *ResultCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ResultCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey hashes the profile, k and text. The profile separates rankings made
// with different stemmer or stop-word setups.
func cacheKey(profile string, k int, text string) string {
	h := sha256.New()
	h.Write([]byte(profile))
	h.Write([]byte{0})
	var kb [8]byte
	binary.BigEndian.PutUint64(kb[:], uint64(k))
	h.Write(kb[:])
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (c *ResultCache) Get(profile string, k int, text string) ([]domain.WordCount, bool) {
	key := cacheKey(profile, k, text)

	c.mu.RLock()
	entry, exists := c.entries[key]
	currentGen := c.generation
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl || entry.generation != currentGen {
		c.mu.Lock()
		// A Put may have replaced the entry since the read lock was released.
		if c.entries[key] == entry {
			delete(c.entries, key)
			c.removeFromOrder(key)
		}
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	if c.entries[key] == entry {
		c.moveToEnd(key)
	}
	c.mu.Unlock()

	return cloneWords(entry.words), true
}

func (c *ResultCache) Put(profile string, k int, text string, words []domain.WordCount) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(profile, k, text)
	entry := &cacheEntry{
		words:      cloneWords(words),
		timestamp:  c.now(),
		generation: c.generation,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate drops every entry, e.g. after the stop-word list changed.
func (c *ResultCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.generation++
}

func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ResultCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ResultCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ResultCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func cloneWords(words []domain.WordCount) []domain.WordCount {
	if words == nil {
		return nil
	}
	out := make([]domain.WordCount, len(words))
	copy(out, words)
	return out
}

// CachedRanker serves rankings from a ResultCache before asking its ranker.
type CachedRanker struct {
	ranker  port.Ranker
	cache   *ResultCache
	profile string
}

func NewCachedRanker(ranker port.Ranker, cache *ResultCache, profile string) *CachedRanker {
	return &CachedRanker{
		ranker:  ranker,
		cache:   cache,
		profile: profile,
	}
}

// MostFrequentCounts implements port.Ranker. Errors are not cached.
func (r *CachedRanker) MostFrequentCounts(text string, k int) ([]domain.WordCount, error) {
	words, _, err := r.Lookup(text, k)
	return words, err
}

// Lookup is MostFrequentCounts that also reports whether the cache answered.
func (r *CachedRanker) Lookup(text string, k int) ([]domain.WordCount, bool, error) {
	if words, hit := r.cache.Get(r.profile, k, text); hit {
		return words, true, nil
	}

	words, err := r.ranker.MostFrequentCounts(text, k)
	if err != nil {
		return nil, false, err
	}

	r.cache.Put(r.profile, k, text, words)
	return words, false, nil
}
