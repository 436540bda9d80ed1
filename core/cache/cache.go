// Package cache provides caller-side memoization of sizing results.
// Correctness rests on the engine being a total function of its input:
// the key is a canonical hash over every input field, standard
// included, so identical requests are interchangeable and
// cross-standard collisions are impossible.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"cablesize/core/types"
)

// DefaultSize is the default number of cached results
const DefaultSize = 1024

// ResultCache is an LRU cache of sizing results keyed by input hash
type ResultCache struct {
	entries *lru.Cache[string, *types.CableSizingResult]
	hits    atomic.Int64
	misses  atomic.Int64
}

// New creates a cache holding up to size results
func New(size int) (*ResultCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *types.CableSizingResult](size)
	if err != nil {
		return nil, err
	}
	return &ResultCache{entries: entries}, nil
}

// GetOrCompute returns the cached result for the input, or runs compute
// on a miss and stores its result. Errors are never cached. The second
// return reports whether the result came from cache.
func (c *ResultCache) GetOrCompute(in *types.CableSizingInput, compute func() (*types.CableSizingResult, error)) (*types.CableSizingResult, bool, error) {
	key := in.Hash()
	if result, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return result, true, nil
	}

	c.misses.Add(1)
	result, err := compute()
	if err != nil {
		return nil, false, err
	}
	c.entries.Add(key, result)
	return result, false, nil
}

// Stats reports hit/miss counts and current length
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Len    int   `json:"len"`
}

// Stats returns a snapshot of cache statistics
func (c *ResultCache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

// Purge empties the cache
func (c *ResultCache) Purge() {
	c.entries.Purge()
}
