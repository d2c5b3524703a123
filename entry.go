package prioritymap

// Entry is a mutable view of a single key, the closest analogue of indexing
// into a built-in map: obtaining one for an absent key creates the key at
// the zero priority. Every mutation delegates to the corresponding Map
// operation, so an Entry is interchangeable with the named calls.
type Entry[K comparable, V Number] struct {
	m   *Map[K, V]
	key K
}

// Entry returns a mutable view of key, creating it at the zero priority if
// it is absent.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	if _, ok := m.byKey[key]; !ok {
		m.materialize(key)
	}
	return Entry[K, V]{m: m, key: key}
}

// Key returns the key the entry is bound to.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Value returns the key's current priority. A key removed from the map
// after the entry was obtained is created again at zero, matching the
// default-access behaviour of Entry itself.
func (e Entry[K, V]) Value() V {
	if b, ok := e.m.byKey[e.key]; ok {
		return b.value
	}
	return e.m.materialize(e.key).value
}

// Inc raises the key's priority by one and returns the new value.
func (e Entry[K, V]) Inc() V {
	return e.m.Increment(e.key)
}

// Dec lowers the key's priority by one and returns the new value.
func (e Entry[K, V]) Dec() V {
	return e.m.Decrement(e.key)
}

// Set assigns value as the key's priority.
func (e Entry[K, V]) Set(value V) {
	e.m.Set(e.key, value)
}
