package viewkit

import (
	"iter"

	"go.llib.dev/iterkit"
)

// Set is an insertion-ordered collection of unique values.
type Set[T comparable] struct {
	vs map[T]int
}

// Add appends the values that the set doesn't hold yet, keeping arrival order.
func (s *Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *Set[T]) add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]int)
	}
	if _, ok := s.vs[v]; ok {
		return
	}
	index := len(s.vs)
	s.vs[v] = index
}

func (s Set[T]) Has(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s.vs)
}

func (s Set[T]) ToSlice() []T {
	var out []T = make([]T, len(s.vs))
	for v, index := range s.vs {
		out[index] = v
	}
	return out
}

// Iter ranges over the set values in insertion order.
func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns the pair view of the set.
// A set has no distinct keys, so each pair holds the value on both sides.
func (s Set[T]) Entries() View[iterkit.KV[T, T]] {
	return newView("Set Entries", func(yield func(iterkit.KV[T, T]) bool) {
		for v := range s.Iter() {
			if !yield(iterkit.KV[T, T]{K: v, V: v}) {
				return
			}
		}
	})
}

// Keys returns the key view of the set, which are the values themselves.
func (s Set[T]) Keys() View[T] {
	return newView("Set Keys", s.Iter())
}

// Values returns the value view of the set.
func (s Set[T]) Values() View[T] {
	return newView("Set Values", s.Iter())
}
