package prioritymap

// bucket is one node in the sorted value list. It holds a single distinct
// priority value and the set of keys currently at that value. Buckets are
// doubly linked in comparator order, with the highest ranking value at the
// head of the list.
type bucket[K comparable, V Number] struct {
	value V
	keys  map[K]struct{}
	prev  *bucket[K, V]
	next  *bucket[K, V]
}

func newBucket[K comparable, V Number](value V) *bucket[K, V] {
	return &bucket[K, V]{
		value: value,
		keys:  make(map[K]struct{}),
	}
}

// anyKey returns an arbitrary key from the bucket. Which key is unspecified:
// bucket membership has no meaningful order. A linked bucket must never be
// empty, so anyKey panics rather than return a zero key.
func (b *bucket[K, V]) anyKey() K {
	for k := range b.keys {
		return k
	}
	panic("prioritymap: bucket with no keys")
}

// insertBefore links nb immediately before at. A nil at appends nb at the
// back of the list.
func (m *Map[K, V]) insertBefore(at, nb *bucket[K, V]) {
	if at == nil {
		nb.prev = m.tail
		if m.tail != nil {
			m.tail.next = nb
		} else {
			m.head = nb
		}
		m.tail = nb
		return
	}
	nb.prev = at.prev
	nb.next = at
	if at.prev != nil {
		at.prev.next = nb
	} else {
		m.head = nb
	}
	at.prev = nb
}

// insertAfter links nb immediately after at. A nil at prepends nb at the
// front of the list.
func (m *Map[K, V]) insertAfter(at, nb *bucket[K, V]) {
	if at == nil {
		nb.next = m.head
		if m.head != nil {
			m.head.prev = nb
		} else {
			m.tail = nb
		}
		m.head = nb
		return
	}
	nb.next = at.next
	nb.prev = at
	if at.next != nil {
		at.next.prev = nb
	} else {
		m.tail = nb
	}
	at.next = nb
}

// unlink removes b from the list and clears its links.
func (m *Map[K, V]) unlink(b *bucket[K, V]) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		m.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		m.tail = b.prev
	}
	b.prev = nil
	b.next = nil
}

// bucketForward walks from start toward the back of the list and returns
// the bucket for value, creating it if missing. The scan stops at the first
// bucket whose value does not rank ahead of value: that bucket either holds
// value itself or is the insertion point for a fresh bucket. A scan that
// runs off the list appends at the back.
func (m *Map[K, V]) bucketForward(start *bucket[K, V], value V) *bucket[K, V] {
	n := start
	for n != nil && m.less(n.value, value) {
		n = n.next
	}
	if n != nil && n.value == value {
		return n
	}
	nb := newBucket[K, V](value)
	m.insertBefore(n, nb)
	return nb
}

// bucketBackward is the mirror of bucketForward. It walks from start toward
// the front of the list, stopping at the first bucket that value does not
// rank ahead of, and links a fresh bucket just after the stop point when
// value is missing. A scan that runs off the list prepends at the front.
func (m *Map[K, V]) bucketBackward(start *bucket[K, V], value V) *bucket[K, V] {
	n := start
	for n != nil && m.less(value, n.value) {
		n = n.prev
	}
	if n != nil && n.value == value {
		return n
	}
	nb := newBucket[K, V](value)
	m.insertAfter(n, nb)
	return nb
}
