package comm

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the distinct values of elems.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts elem.
func (s Set[T]) Add(elem T) {
	s[elem] = struct{}{}
}

// Has reports whether elem is in the set.
func (s Set[T]) Has(elem T) bool {
	_, ok := s[elem]
	return ok
}

// Difference returns the elements of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := make(Set[T])
	for e := range s {
		if !other.Has(e) {
			out.Add(e)
		}
	}
	return out
}

// Intersection returns the elements present in both sets.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for e := range small {
		if large.Has(e) {
			out.Add(e)
		}
	}
	return out
}
