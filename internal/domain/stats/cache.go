package stats

import (
	"sync"
	"time"
)

type Cache interface {
	Get() (*Dashboard, bool)
	Set(dashboard *Dashboard, ttl time.Duration)
}

type noopCache struct{}

func (noopCache) Get() (*Dashboard, bool)       { return nil, false }
func (noopCache) Set(*Dashboard, time.Duration) {}

func NewNoopCache() Cache {
	return noopCache{}
}

type memoryCache struct {
	mu        sync.RWMutex
	dashboard *Dashboard
	expires   time.Time
}

func NewMemoryCache() Cache {
	return &memoryCache{}
}

func (c *memoryCache) Get() (*Dashboard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.dashboard == nil || time.Now().After(c.expires) {
		return nil, false
	}
	copied := *c.dashboard
	return &copied, true
}

func (c *memoryCache) Set(dashboard *Dashboard, ttl time.Duration) {
	if dashboard == nil || ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *dashboard
	c.dashboard = &copied
	c.expires = time.Now().Add(ttl)
}
