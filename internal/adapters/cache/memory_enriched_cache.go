package cache

import (
	"cost-intelligence-service/internal/domain"
	"sync"
)

// In-memory cache holding a single enriched table for one source fingerprint.
// A Put under a new key replaces the previous entry.
type MemoryEnrichedCache struct {
	mu    sync.RWMutex
	key   string
	value *domain.Enriched
}

func NewMemoryEnrichedCache() *MemoryEnrichedCache {
	return &MemoryEnrichedCache{}
}

func (c *MemoryEnrichedCache) Get(key string) (*domain.Enriched, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil || key == "" || c.key != key {
		return nil, false
	}
	return c.value, true
}

func (c *MemoryEnrichedCache) Put(key string, e *domain.Enriched) {
	if key == "" || e == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.value = e
}

func (c *MemoryEnrichedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = ""
	c.value = nil
}
