package prioritymap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number constrains priority values to the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map is a priority-ordered map. Every key carries a numeric priority, and
// the map keeps the distinct priorities sorted so the extreme value under
// the configured comparator is always at hand. Keys sharing a value share
// one bucket, which keeps unit-step priority changes cheap: the destination
// bucket is almost always a neighbour of the current one.
//
// A Map is not safe for concurrent use; callers must serialize access.
type Map[K comparable, V Number] struct {
	less  func(a, b V) bool // returns true if a has higher priority than b
	head  *bucket[K, V]
	tail  *bucket[K, V]
	byKey map[K]*bucket[K, V]
}

// New creates a priority map where larger values rank first.
func New[K comparable, V Number]() *Map[K, V] {
	return NewFunc[K, V](func(a, b V) bool { return a > b })
}

// NewFunc creates a priority map ordered by less, which reports whether a
// has higher priority than b. less must define a strict total order over
// priority values; func(a, b V) bool { return a < b } ranks smaller values
// first.
func NewFunc[K comparable, V Number](less func(a, b V) bool) *Map[K, V] {
	return &Map[K, V]{
		less:  less,
		byKey: make(map[K]*bucket[K, V]),
	}
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return len(m.byKey)
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.byKey[key]
	return ok
}

// Get returns the priority currently associated with key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	b, ok := m.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return b.value, true
}

// Set associates key with value. An absent key is created; setting a
// present key to its current value is a no-op.
func (m *Map[K, V]) Set(key K, value V) {
	b, ok := m.byKey[key]
	if !ok {
		b = m.materialize(key)
	}
	m.update(key, b, value)
}

// Increment raises key's priority by one and returns the new value. An
// absent key is created at zero first, so incrementing it yields 1.
func (m *Map[K, V]) Increment(key K) V {
	b, ok := m.byKey[key]
	if !ok {
		b = m.materialize(key)
	}
	value := b.value + 1
	m.update(key, b, value)
	return value
}

// Decrement lowers key's priority by one and returns the new value. An
// absent key is created at zero first, so decrementing it yields -1.
func (m *Map[K, V]) Decrement(key K) V {
	b, ok := m.byKey[key]
	if !ok {
		b = m.materialize(key)
	}
	value := b.value - 1
	m.update(key, b, value)
	return value
}

// Delete removes key from the map, reporting whether it was present.
// Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) bool {
	b, ok := m.byKey[key]
	if !ok {
		return false
	}
	m.drop(key, b)
	return true
}

// Top returns a key holding the extreme priority under the map's comparator
// together with that priority. When several keys tie at the extreme value,
// which one is returned is arbitrary.
func (m *Map[K, V]) Top() (key K, value V, ok bool) {
	if m.head == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.head.anyKey(), m.head.value, true
}

// Pop removes and returns a key holding the extreme priority. Ties are
// broken arbitrarily, like Top.
func (m *Map[K, V]) Pop() (key K, value V, ok bool) {
	if m.head == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	b := m.head
	k := b.anyKey()
	m.drop(k, b)
	return k, b.value, true
}

// All returns an iterator over the map's key-priority pairs, walking from
// the extreme value toward the other end. Key order within one priority is
// arbitrary. The map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for b := m.head; b != nil; b = b.next {
			for k := range b.keys {
				if !yield(k, b.value) {
					return
				}
			}
		}
	}
}

// materialize creates key at the zero priority. Placement runs on the same
// directional scan used by update, starting from whichever end of the list
// the comparator puts zero-ranked values nearest to.
func (m *Map[K, V]) materialize(key K) *bucket[K, V] {
	var zero V
	var dst *bucket[K, V]
	if m.less(zero, zero+1) {
		dst = m.bucketForward(m.head, zero)
	} else {
		dst = m.bucketBackward(m.tail, zero)
	}
	dst.keys[key] = struct{}{}
	m.byKey[key] = dst
	return dst
}

// update moves key from bucket old to the bucket for value, keeping the
// list sorted. The scan starts at old's position and walks in the direction
// the comparator places value, so a unit step usually touches only the
// neighbouring bucket. old stays linked while the scan runs, anchoring it,
// and is reclaimed at the end if the move left it empty.
func (m *Map[K, V]) update(key K, old *bucket[K, V], value V) {
	if old.value == value {
		return
	}

	delete(old.keys, key)

	var dst *bucket[K, V]
	if m.less(old.value, value) {
		dst = m.bucketForward(old.next, value)
	} else {
		dst = m.bucketBackward(old.prev, value)
	}
	dst.keys[key] = struct{}{}
	m.byKey[key] = dst

	if len(old.keys) == 0 {
		m.unlink(old)
	}
}

// drop removes key from bucket b and the key index, unlinking b when it
// empties.
func (m *Map[K, V]) drop(key K, b *bucket[K, V]) {
	delete(b.keys, key)
	delete(m.byKey, key)
	if len(b.keys) == 0 {
		m.unlink(b)
	}
}
