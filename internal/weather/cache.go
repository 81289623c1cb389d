package weather

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	report  Report
	fetched time.Time
}

// Cache is a concurrency-safe TTL cache in front of a Provider. Concurrent
// misses for the same location share one upstream fetch.
type Cache struct {
	mu       sync.RWMutex
	provider Provider
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]cacheEntry
	group    singleflight.Group
}

func NewCache(provider Provider, ttl time.Duration) *Cache {
	return &Cache{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]cacheEntry),
	}
}

// WithClock replaces the clock used for expiry.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

func (c *Cache) Fetch(ctx context.Context, loc Location) (Report, error) {
	key := loc.Key()
	if r, ok := c.lookup(key); ok {
		return r, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if r, ok := c.lookup(key); ok {
			return r, nil
		}
		r, err := c.provider.Fetch(ctx, loc)
		if err != nil {
			return Report{}, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{report: r, fetched: c.now()}
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		// Serve a stale copy rather than nothing.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return e.report, nil
		}
		return Report{}, err
	}
	return v.(Report), nil
}

func (c *Cache) lookup(key string) (Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) >= c.ttl {
		return Report{}, false
	}
	return e.report, true
}

// Invalidate drops the cached report for loc so the next Fetch goes upstream.
func (c *Cache) Invalidate(loc Location) {
	c.mu.Lock()
	delete(c.entries, loc.Key())
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
