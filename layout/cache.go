package layout

import "sync"

// defaultCacheCapacity bounds the result cache. Resize storms revisit the
// same handful of dimensions, so a small window is enough.
const defaultCacheCapacity = 64

type cacheKey struct {
	cardCount int
	width     float64
	height    float64
	tier      DeviceTier
}

// resultCache is a bounded FIFO cache of layout results keyed by the
// full computation input. One writer (the owning engine), so a plain
// mutex is sufficient.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]LayoutResult
	order    []cacheKey

	hits   int64
	misses int64
}

func newResultCache(capacity int) *resultCache {
	if capacity < 1 {
		capacity = defaultCacheCapacity
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[cacheKey]LayoutResult, capacity),
	}
}

// Get returns a deep copy of the cached result, preserving the
// fresh-positions-slice invariant toward callers.
func (c *resultCache) Get(key cacheKey) (LayoutResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.entries[key]
	if !ok {
		c.misses++
		return LayoutResult{}, false
	}
	c.hits++
	return res.clone(), true
}

func (c *resultCache) Set(key cacheKey, res LayoutResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = res.clone()
}

// Invalidate clears the cache. The presentation layer decides when a
// recompute is forced.
func (c *resultCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey]LayoutResult, c.capacity)
	c.order = nil
}

func (c *resultCache) Stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
