// Package lfu implements a fixed-capacity cache with least-frequently-used
// eviction. Each cached entry carries a use count that rises on every Put
// and Get; when an insert finds the cache full, the entry with the lowest
// count is evicted to make room.
//
// Key features:
//   - Generic over comparable keys and any value type
//   - Amortized O(1) puts, gets, and eviction-victim selection
//   - Peek reads without disturbing use counts
//   - Optional eviction callback for write-back or accounting
//
// Basic usage:
//
//	cache, err := lfu.New[string, []byte](1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache.Put("config", data)
//
//	if data, ok := cache.Get("config"); ok {
//	    process(data)
//	}
//
// An eviction callback observes entries as they leave:
//
//	cache, err := lfu.New(1024, lfu.WithOnEvict(func(key string, data []byte) {
//	    log.Printf("evicted %s (%d bytes)", key, len(data))
//	}))
//
// The cache is not safe for concurrent use. Callers that share one across
// goroutines must serialize access with their own lock.
package lfu
