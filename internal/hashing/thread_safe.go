package hashing

import (
	"sync"
)

type nodeKey struct {
	hash  uint64
	depth int
}

// ThreadSafeNodeCache stores perft node counts by position hash and depth.
// Parallel perft workers share one cache, so access is mutex protected.
type ThreadSafeNodeCache struct {
	mu          sync.RWMutex
	entries     map[nodeKey]uint64
	maxCapacity int
	hits        int64
}

// NewThreadSafeNodeCache creates a cache. maxCapacity of 0 means unlimited
// capacity; once full, new entries are dropped.
func NewThreadSafeNodeCache(maxCapacity int) *ThreadSafeNodeCache {
	return &ThreadSafeNodeCache{
		entries:     make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached node count for a position hash at depth.
func (c *ThreadSafeNodeCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[nodeKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return nodes, ok
}

// Put stores a node count unless the cache is full.
func (c *ThreadSafeNodeCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isFull() {
		return
	}
	c.entries[nodeKey{hash, depth}] = nodes
}

// Len returns the number of cached entries.
func (c *ThreadSafeNodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *ThreadSafeNodeCache) Hits() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *ThreadSafeNodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *ThreadSafeNodeCache) isFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
