package lfu

import (
	"errors"

	"github.com/wilderfield/prioritymap"
)

// ErrInvalidCapacity is returned when a cache is created with a capacity
// below one.
var ErrInvalidCapacity = errors.New("lfu: capacity must be greater than 0")

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict sets a callback invoked with every entry the cache evicts to
// make room for a new one. Entries removed explicitly with Remove are not
// reported.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// Cache is a fixed-capacity cache that evicts the least frequently used
// entry when full. Use counts ride on a min-first priority map, so bumping
// a count on access is amortized O(1) and the eviction victim is always at
// the front.
//
// A Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]V
	freq     *prioritymap.Map[K, int64]
	onEvict  func(key K, value V)
}

// New creates a Cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]V),
		freq:     prioritymap.NewFunc[K, int64](func(a, b int64) bool { return a < b }),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Put inserts key or updates its value, counting the use either way. A new
// key entering a full cache first evicts the least frequently used entry;
// among equally rare entries the victim is arbitrary. Fresh keys start at
// use count one.
func (c *Cache[K, V]) Put(key K, value V) {
	if _, ok := c.items[key]; ok {
		c.items[key] = value
		c.freq.Increment(key)
		return
	}

	if len(c.items) >= c.capacity {
		c.evict()
	}

	c.items[key] = value
	c.freq.Increment(key)
}

// Get returns the value cached under key, counting the access.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.freq.Increment(key)
	return value, true
}

// Peek returns the value cached under key without counting an access.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	value, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return value, true
}

// Remove drops key from the cache, reporting whether it was present. The
// eviction callback is not invoked.
func (c *Cache[K, V]) Remove(key K) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	c.freq.Delete(key)
	return true
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the maximum number of entries the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// evict removes the least frequently used entry and reports it to the
// eviction callback.
func (c *Cache[K, V]) evict() {
	key, _, ok := c.freq.Pop()
	if !ok {
		return
	}

	value := c.items[key]
	delete(c.items, key)

	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
