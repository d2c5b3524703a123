package unionfind

// Set is a disjoint-set forest over elements of type T. Elements are added
// explicitly; Union and Find only operate on elements already in the set.
//
// Find performs path halving and Union joins by component size, so a long
// sequence of operations costs near-constant time per call. A Set is not
// safe for concurrent use.
type Set[T comparable] struct {
	parent map[T]T
	size   map[T]int
}

// New creates an empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		parent: make(map[T]T),
		size:   make(map[T]int),
	}
}

// Add inserts x as its own singleton component. Adding an element already
// in the set has no effect.
func (s *Set[T]) Add(x T) {
	if _, ok := s.parent[x]; ok {
		return
	}
	s.parent[x] = x
	s.size[x] = 1
}

// Find returns the representative of x's component, reporting whether x is
// in the set. Lookups compress the path they walk.
func (s *Set[T]) Find(x T) (T, bool) {
	if _, ok := s.parent[x]; !ok {
		var zero T
		return zero, false
	}
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x, true
}

// Union merges the components of x and y, attaching the smaller component
// under the larger. It reports whether a merge happened; it returns false
// if either element is missing or both are already in one component.
func (s *Set[T]) Union(x, y T) bool {
	rx, ok := s.Find(x)
	if !ok {
		return false
	}
	ry, ok := s.Find(y)
	if !ok {
		return false
	}
	if rx == ry {
		return false
	}

	// On ties x's root wins.
	if s.size[rx] < s.size[ry] {
		rx, ry = ry, rx
	}
	s.parent[ry] = rx
	s.size[rx] += s.size[ry]
	delete(s.size, ry)
	return true
}

// Connected reports whether x and y are in the set and share a component.
func (s *Set[T]) Connected(x, y T) bool {
	rx, ok := s.Find(x)
	if !ok {
		return false
	}
	ry, ok := s.Find(y)
	if !ok {
		return false
	}
	return rx == ry
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.parent)
}

// MaxSize returns the size of the largest component, or 0 for an empty set.
func (s *Set[T]) MaxSize() int {
	largest := 0
	for _, n := range s.size {
		if n > largest {
			largest = n
		}
	}
	return largest
}
