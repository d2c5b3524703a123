// Package prioritymap implements an associative container that keeps every
// key annotated with a numeric priority and supports retrieving or removing
// the extreme-priority key at any moment. It is the building block behind
// frequency-ranked eviction policies such as least-frequently-used caches,
// priority-based schedulers, and in-place topological processing by residual
// degree.
//
// The map maintains a sorted list of buckets, one per distinct priority
// value, with each bucket holding the set of keys currently at that value.
// A hash index ties every key to its bucket, so moving a key to a new
// priority starts the search at the key's current position and walks toward
// the destination. Unit steps, the dominant workload when counting
// frequencies, therefore touch only a neighbouring bucket and run in
// amortized constant time. Arbitrary reassignment degrades linearly in the
// number of distinct live values. Buckets are created on demand and freed
// the instant their last key leaves, so memory is bounded by the live keys
// and values rather than by the historical value range.
//
// Key features:
//   - Generic implementation over comparable keys and numeric priorities
//   - Amortized O(1) increment and decrement of a key's priority
//   - O(1) lookup and removal of the extreme-priority key
//   - Caller-supplied ordering: max-first by default, min-first or any
//     strict total order via NewFunc
//   - Entry accessor with map-like default-to-zero semantics
//
// Basic usage:
//
//	// Count word frequencies, largest count first
//	counts := prioritymap.New[string, int]()
//
//	for _, w := range words {
//	    counts.Increment(w)
//	}
//
//	// The most frequent word
//	word, count, ok := counts.Top()
//	if ok {
//	    fmt.Printf("%s appears %d times\n", word, count)
//	}
//
//	// Drain in descending frequency
//	for counts.Len() > 0 {
//	    word, count, _ := counts.Pop()
//	    fmt.Println(word, count)
//	}
//
// A min-first map uses a comparator that ranks smaller values ahead:
//
//	degrees := prioritymap.NewFunc[string, int](func(a, b int) bool {
//	    return a < b
//	})
//
// The map is not safe for concurrent use. Callers that share one across
// goroutines must serialize access with their own lock.
package prioritymap
