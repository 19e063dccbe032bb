package logic

import (
	"container/list"
	"sync"

	"github.com/rahulbattula415/NBAShotPrediction/internal/models"
)

// DefaultCacheCapacity bounds the prediction cache.
const DefaultCacheCapacity = 1000

type cacheEntry struct {
	fingerprint string
	result      models.PredictionResult
}

// resultCache is a bounded fingerprint -> PredictionResult store. Eviction is
// strict FIFO by first insertion: when the capacity is exceeded the entry
// inserted earliest among those still present is removed. Overwriting an
// existing fingerprint keeps its original queue position (first-write-wins
// ordering). Access recency never matters.
//
// The map points into a doubly linked list that holds insertion order, the
// same map+list pairing used for bounded in-memory caches elsewhere. All
// access goes through the mutex; callers hold no locks.
type resultCache struct {
	mu       sync.RWMutex
	data     map[string]*list.Element
	queue    *list.List // front = oldest insert
	capacity int
}

func newResultCache(capacity int) *resultCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &resultCache{
		data:     make(map[string]*list.Element),
		queue:    list.New(),
		capacity: capacity,
	}
}

// Lookup returns the cached result for a fingerprint, if present. Reads have
// no side effects on eviction order.
func (c *resultCache) Lookup(fingerprint string) (models.PredictionResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	elem, ok := c.data[fingerprint]
	if !ok {
		return models.PredictionResult{}, false
	}
	return elem.Value.(*cacheEntry).result, true
}

// Insert stores a result under its fingerprint, evicting the oldest-inserted
// entry if the capacity would be exceeded.
func (c *resultCache) Insert(fingerprint string, result models.PredictionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.data[fingerprint]; ok {
		// Existing key keeps its insertion position.
		elem.Value.(*cacheEntry).result = result
		return
	}

	elem := c.queue.PushBack(&cacheEntry{fingerprint: fingerprint, result: result})
	c.data[fingerprint] = elem

	if c.queue.Len() > c.capacity {
		c.evictOldest()
	}
}

// evictOldest removes the front-of-queue entry. Caller must hold the lock.
func (c *resultCache) evictOldest() {
	elem := c.queue.Front()
	if elem == nil {
		return
	}
	c.queue.Remove(elem)
	delete(c.data, elem.Value.(*cacheEntry).fingerprint)
}

// Clear removes all entries.
func (c *resultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*list.Element)
	c.queue.Init()
}

// Size returns the current entry count.
func (c *resultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queue.Len()
}
