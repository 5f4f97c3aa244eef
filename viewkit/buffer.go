package viewkit

import (
	"go.llib.dev/iterkit"
	"go.llib.dev/iterkit/internal/constraints"
)

// Buffer is a fixed element width numeric sequence.
// Its element type is constrained to the machine numeric kinds,
// so a Buffer value always has a well defined per-element byte width.
type Buffer[N constraints.Number] []N

// Len tells how many elements the buffer holds.
func (b Buffer[N]) Len() int { return len(b) }

// At returns the element at the given index.
func (b Buffer[N]) At(index int) N { return b[index] }

// Entries returns the index-value pair view of the buffer.
func (b Buffer[N]) Entries() View[iterkit.KV[int, N]] {
	return newView("Buffer Entries", func(yield func(iterkit.KV[int, N]) bool) {
		for i, n := range b {
			if !yield(iterkit.KV[int, N]{K: i, V: n}) {
				return
			}
		}
	})
}

// Keys returns the index view of the buffer.
func (b Buffer[N]) Keys() View[int] {
	return newView("Buffer Keys", func(yield func(int) bool) {
		for i := range b {
			if !yield(i) {
				return
			}
		}
	})
}

// Values returns the value view of the buffer.
func (b Buffer[N]) Values() View[N] {
	return newView("Buffer Values", func(yield func(N) bool) {
		for _, n := range b {
			if !yield(n) {
				return
			}
		}
	})
}

var _ iterkit.ArrayLike[int] = (Buffer[int])(nil)
