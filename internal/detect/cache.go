package detect

import (
	"sync"
	"time"
)

// DefaultTTL is the validity window for cached detection results.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	info      ToolInfo
	timestamp time.Time
	ttl       time.Duration
}

// Cache is a TTL-bounded in-memory store of detection results. Expiry is
// lazy: a Get past the entry's TTL evicts it and reports a miss; there is no
// background sweep. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache returns a cache whose entries default to the given TTL
// (DefaultTTL when ttl <= 0).
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached result for key. An entry older than its TTL is
// evicted and reported as a miss.
func (c *Cache) Get(key string) (ToolInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return ToolInfo{}, false
	}
	if c.now().Sub(e.timestamp) > e.ttl {
		delete(c.entries, key)
		return ToolInfo{}, false
	}
	return e.info, true
}

// Set stores info under key with the cache's default TTL.
func (c *Cache) Set(key string, info ToolInfo) {
	c.SetWithTTL(key, info, c.ttl)
}

// SetWithTTL stores info under key with a per-entry TTL override.
func (c *Cache) SetWithTTL(key string, info ToolInfo, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{info: info, timestamp: c.now(), ttl: ttl}
}

// Has reports whether a live entry exists for key, honoring expiry.
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Invalidate removes the entry for key, if any.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll removes every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
