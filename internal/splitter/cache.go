package splitter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/maypok86/otter"
)

// ExtractionCache memoizes extraction results by content hash so repeated
// splits of the same file skip the parse. It is an explicit object owned by
// the caller, never package state: batch drivers that want isolation build
// one per worker, and tests build fresh instances.
//
// The cache is bounded by entry count; overflow evicts cold entries.
type ExtractionCache struct {
	entries otter.Cache[string, []SplitCandidate]
}

// NewExtractionCache builds a cache holding at most maxEntries extractions.
func NewExtractionCache(maxEntries int) (*ExtractionCache, error) {
	if maxEntries < 1 {
		return nil, errors.New("cache capacity must be positive")
	}
	entries, err := otter.MustBuilder[string, []SplitCandidate](maxEntries).
		Cost(func(key string, value []SplitCandidate) uint32 { return 1 }).
		Build()
	if err != nil {
		return nil, err
	}
	return &ExtractionCache{entries: entries}, nil
}

// contentKey derives the cache key for one (language, content) pair.
func contentKey(lang, content string) string {
	h := sha256.New()
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ExtractionCache) get(key string) ([]SplitCandidate, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(key)
}

func (c *ExtractionCache) put(key string, candidates []SplitCandidate) {
	if c == nil {
		return
	}
	c.entries.Set(key, candidates)
}

// Size returns the current number of cached extractions.
func (c *ExtractionCache) Size() int {
	return c.entries.Size()
}

// Capacity returns the configured maximum entry count.
func (c *ExtractionCache) Capacity() int {
	return c.entries.Capacity()
}

// Close releases the cache's internal resources.
func (c *ExtractionCache) Close() {
	c.entries.Close()
}
