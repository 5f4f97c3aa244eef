package iterkit

import (
	"io"
	"iter"
	"reflect"

	"go.llib.dev/iterkit/internal/errorkitlite"
	"go.llib.dev/iterkit/option"
)

// Iter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// An Iter is a single use, stateful cursor.
// It is mutated only by advancing it, and it is not safe for concurrent use
// without external synchronisation.
// A conforming Iter that reported completion keeps reporting completion on
// every further Next call.
type Iter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underlying io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// Iterable is the factory capability for iteration.
// Repeated Iterate calls yield independent cursors over the same logical sequence
// for stateless sources, while inherently single use sources may document that
// only one traversal is meaningful.
type Iterable[V any] interface {
	// Iterate returns a fresh cursor over the sequence.
	Iterate() Iter[V]
}

// IterIterable is an Iter that is also its own Iterable.
// Its Iterate method returns the receiver itself,
// which is the common case for cursors obtained directly from a one-shot traversal call.
type IterIterable[V any] interface {
	Iter[V]
	Iterable[V]
}

// Thrower is an optional capability of a cursor.
// It injects a fault at the producer's current suspension point,
// giving producer side error handling a chance to run.
type Thrower interface {
	// Throw delivers the fault to the producer.
	// A nil return value means the producer handled the fault and iteration may continue,
	// a non nil return value is the propagated failure.
	Throw(err error) error
}

// ToIter adapts a failable push sequence into a pull style cursor.
// The returned cursor is its own Iterable.
func ToIter[T any](itr ErrSeq[T]) IterIterable[T] {
	next, stop := iter.Pull2(itr)
	return &pullIter[T]{next: next, stop: stop}
}

type pullIter[T any] struct {
	next func() (T, error, bool)
	stop func()
	val  T
	err  error
	done bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	i.val = v
	i.err = err
	return true
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Value() T {
	return i.val
}

func (i *pullIter[T]) Iterate() Iter[T] {
	return i
}

// FromIter adapts a pull style cursor into a failable push sequence.
// Closing and the error cause of the cursor are folded into the sequence.
func FromIter[T any](itr Iter[T]) SingleUseErrSeq[T] {
	return Once2(func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		var zero T
		if err := itr.Err(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
		if err := itr.Close(); err != nil {
			if !yield(zero, err) {
				return
			}
		}
	})
}

// FromIterable adapts an Iterable into a failable push sequence.
// Every iteration of the returned sequence requests a fresh cursor from the factory.
func FromIterable[T any](src Iterable[T]) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		FromIter(src.Iterate())(yield)
	}
}

// CollectIter collects the values of a pull style cursor,
// closing it afterwards, and merging iteration and closing errors.
func CollectIter[T any](itr Iter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	defer itr.Close()
	var vs []T
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	var errs []error
	if err := itr.Err(); err != nil {
		errs = append(errs, err)
	}
	if err := itr.Close(); err != nil {
		errs = append(errs, err)
	}
	return vs, errorkitlite.Merge(errs...)
}

// ErrViolation is returned by Validate when a type claims the Iterable capability
// but its factory or cursor does not satisfy the structural contract.
const ErrViolation errorkitlite.Error = "iterkit: iteration protocol violation"

type ValidateConfig struct {
	// ProbeDepth is the number of advances Validate grants the cursor
	// before a non completing, non advancing cursor is deemed stuck.
	ProbeDepth int
}

type ValidateOption option.Option[ValidateConfig]

func ProbeDepth(n int) ValidateOption {
	return option.Func[ValidateConfig](func(c *ValidateConfig) {
		c.ProbeDepth = n
	})
}

func (c ValidateConfig) getProbeDepth() int {
	const defaultProbeDepth = 32
	if c.ProbeDepth <= 0 {
		return defaultProbeDepth
	}
	return c.ProbeDepth
}

// Validate probes whether an Iterable behaves as a conforming traversal source.
//
// It rejects with ErrViolation when
//   - the Iterate factory returns a nil cursor,
//   - the cursor keeps reporting further elements within the probe depth
//     while its value never advances (a stuck cursor is not a valid traversal source),
//   - the cursor reports further elements after it already reported completion.
//
// Validate consumes up to probe depth elements, so it is meant for
// stateless sources whose factory hands out independent cursors.
//
// The stuck-cursor check is a heuristic: within the probe window an endless
// sequence that keeps repeating the very same value is indistinguishable
// from a cursor that never advances, and is rejected as well.
// Such a source would spin a range based traversal forever on a single value,
// so it is not accepted as a traversal source either.
func Validate[V any](src Iterable[V], opts ...ValidateOption) error {
	c := option.Use(opts)
	if src == nil {
		return ErrViolation.F("nil Iterable")
	}
	itr := src.Iterate()
	if itr == nil {
		return ErrViolation.F("the Iterate factory returned a nil cursor")
	}
	defer itr.Close()
	var (
		depth    = c.getProbeDepth()
		total    int
		advanced bool
		last     V
	)
	for total < depth && itr.Next() {
		v := itr.Value()
		if 0 < total && !reflect.DeepEqual(last, v) {
			advanced = true
		}
		last = v
		total++
	}
	if depth <= total && !advanced {
		return ErrViolation.F("the cursor reports further elements but never advances")
	}
	if total < depth {
		// the cursor reported completion, it must keep doing so
		for i := 0; i < 2; i++ {
			if itr.Next() {
				return ErrViolation.F("the cursor reported further elements after completion")
			}
		}
	}
	return nil
}
