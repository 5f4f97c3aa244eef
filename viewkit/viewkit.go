// Package viewkit provides iteration views over container kinds.
//
// Each container kind (slice, map, set, numeric buffer, string) exposes three
// derived views built atop the same underlying traversal:
// entries (key-value pairs), keys and values.
// Every view is a cursor that is also its own iterable,
// and it carries a diagnostic tag naming its producing view for introspection.
package viewkit

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"go.llib.dev/iterkit"
)

// View is a tagged cursor over a container,
// satisfying both the cursor and the factory capability:
// its Iterate method returns the view itself.
type View[V any] interface {
	iterkit.IterIterable[V]
	// Tag identifies the producing view, e.g. "Map Entries".
	Tag() string
}

type view[V any] struct {
	tag  string
	seq  iter.Seq[V]
	next func() (V, bool)
	stop func()
	val  V
	done bool
}

func newView[V any](tag string, seq iter.Seq[V]) *view[V] {
	return &view[V]{tag: tag, seq: seq}
}

func (v *view[V]) Next() bool {
	if v.done {
		return false
	}
	if v.next == nil {
		v.next, v.stop = iter.Pull(v.seq)
	}
	val, ok := v.next()
	if !ok {
		v.done = true
		v.stop()
		return false
	}
	v.val = val
	return true
}

func (v *view[V]) Value() V { return v.val }

func (v *view[V]) Err() error { return nil }

func (v *view[V]) Close() error {
	if v.stop != nil {
		v.stop()
	}
	v.done = true
	return nil
}

func (v *view[V]) Iterate() iterkit.Iter[V] { return v }

func (v *view[V]) Tag() string { return v.tag }

func (v *view[V]) String() string { return v.tag }

// SliceEntries returns the index-value pair view of a slice.
func SliceEntries[V any](vs []V) View[iterkit.KV[int, V]] {
	return newView("Slice Entries", func(yield func(iterkit.KV[int, V]) bool) {
		for i, v := range vs {
			if !yield(iterkit.KV[int, V]{K: i, V: v}) {
				return
			}
		}
	})
}

// SliceKeys returns the index view of a slice.
func SliceKeys[V any](vs []V) View[int] {
	return newView("Slice Keys", func(yield func(int) bool) {
		for i := range vs {
			if !yield(i) {
				return
			}
		}
	})
}

// SliceValues returns the value view of a slice.
func SliceValues[V any](vs []V) View[V] {
	return newView("Slice Values", slices.Values(vs))
}

// MapEntries returns the key-value pair view of a map.
// Go maps are unordered, so the view iterates in ascending key order to stay deterministic.
func MapEntries[K cmp.Ordered, V any](m map[K]V) View[iterkit.KV[K, V]] {
	return newView("Map Entries", func(yield func(iterkit.KV[K, V]) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(iterkit.KV[K, V]{K: k, V: m[k]}) {
				return
			}
		}
	})
}

// MapKeys returns the key view of a map, in ascending key order.
func MapKeys[K cmp.Ordered, V any](m map[K]V) View[K] {
	return newView("Map Keys", func(yield func(K) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k) {
				return
			}
		}
	})
}

// MapValues returns the value view of a map, in ascending key order.
func MapValues[K cmp.Ordered, V any](m map[K]V) View[V] {
	return newView("Map Values", func(yield func(V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(m[k]) {
				return
			}
		}
	})
}

// StringEntries returns the byte offset and rune pair view of a string.
func StringEntries(s string) View[iterkit.KV[int, rune]] {
	return newView("String Entries", func(yield func(iterkit.KV[int, rune]) bool) {
		for i, r := range s {
			if !yield(iterkit.KV[int, rune]{K: i, V: r}) {
				return
			}
		}
	})
}

// StringKeys returns the byte offset view of a string.
// Offsets advance by the encoded width of each rune.
func StringKeys(s string) View[int] {
	return newView("String Keys", func(yield func(int) bool) {
		for i := range s {
			if !yield(i) {
				return
			}
		}
	})
}

// StringValues returns the rune view of a string.
func StringValues(s string) View[rune] {
	return newView("String Values", func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	})
}
