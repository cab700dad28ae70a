package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a bounded in-memory cache with insertion-order eviction.
// It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	max     int
	entries map[string]memEntry
	order   []string
}

type memEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates a memory cache holding at most max entries
// (256 when max is not positive).
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 256
	}
	return &Memory{
		max:     max,
		entries: make(map[string]memEntry),
	}
}

// Get retrieves a value, treating expired entries as misses.
func (c *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.remove(key)
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores a value, evicting the oldest insertions once the cache is
// full.
func (c *Memory) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.max && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	e := memEntry{data: data}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// Delete removes a value if present.
func (c *Memory) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
	return nil
}

// remove drops key from both the entry map and the insertion order, so
// a later Set of the same key cannot leave a stale duplicate for
// eviction to pop. Callers must hold mu.
func (c *Memory) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Close drops all entries.
func (c *Memory) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memEntry)
	c.order = nil
	return nil
}

// Len reports the current number of entries.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ Cache = (*Memory)(nil)
