package iterkit

// ArrayLike is an indexable, length-bearing source.
// Any concrete ordered container can act as a bulk construction input through it.
type ArrayLike[V any] interface {
	// Len tells how many elements the source holds.
	Len() int
	// At returns the element at the given index.
	// It is only defined for indices within [0, Len).
	At(index int) V
}

// From materialises a concrete ordered slice out of an Iterable source,
// keeping the source order.
func From[V any](src Iterable[V]) ([]V, error) {
	return CollectIter(src.Iterate())
}

// MapFrom materialises a concrete ordered slice out of an Iterable source,
// applying the transform function on each element.
// The transform receives the element together with its position in the sequence.
func MapFrom[To, V any](src Iterable[V], transform func(v V, index int) To) ([]To, error) {
	itr := src.Iterate()
	vs, err := CollectIter(itr)
	if err != nil {
		return nil, err
	}
	var out = make([]To, 0, len(vs))
	for i, v := range vs {
		out = append(out, transform(v, i))
	}
	return out, nil
}

// FromArrayLike materialises a concrete ordered slice out of an indexable, length-bearing source.
func FromArrayLike[V any](src ArrayLike[V]) []V {
	var out = make([]V, 0, src.Len())
	for i, l := 0, src.Len(); i < l; i++ {
		out = append(out, src.At(i))
	}
	return out
}

// MapFromArrayLike materialises a concrete ordered slice out of an indexable, length-bearing source,
// applying the transform function on each element.
func MapFromArrayLike[To, V any](src ArrayLike[V], transform func(v V, index int) To) []To {
	var out = make([]To, 0, src.Len())
	for i, l := 0, src.Len(); i < l; i++ {
		out = append(out, transform(src.At(i), i))
	}
	return out
}
