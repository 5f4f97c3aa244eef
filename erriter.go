package iterkit

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"go.llib.dev/iterkit/internal/errorkitlite"
)

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// SingleUseErrSeq is an ErrSeq that can only be iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseErrSeq[T any] = ErrSeq[T]

// ErrFunc is the check function that can tell if currently an iterator that is related to the error function has an issue or not.
type ErrFunc = errorkitlite.ErrFunc

// Error returns an iterator which has no elements and only yields the given error.
func Error[T any](err error) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// ErrorF behaves exactly like fmt.Errorf but returns the error wrapped as an iterator.
func ErrorF[T any](format string, a ...any) ErrSeq[T] {
	return Error[T](fmt.Errorf(format, a...))
}

// ToErrSeq will turn an iter.Seq[T] into an iter.Seq2[T, error] iterator,
// and use the error functions to yield potential issues with the iteration.
func ToErrSeq[T any](i iter.Seq[T], errFuncs ...ErrFunc) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
		if 0 < len(errFuncs) {
			errFunc := errorkitlite.MergeErrFunc(errFuncs...)
			if err := errFunc(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}

// SplitErrSeq will split an iter.Seq2[T, error] iterator into an iter.Seq[T] iterator plus an error retrieval func.
func SplitErrSeq[T any](i ErrSeq[T]) (iter.Seq[T], ErrFunc) {
	var m sync.RWMutex
	var errs []error
	return func(yield func(T) bool) {
			m.Lock()
			errs = nil
			m.Unlock()
			for v, err := range i {
				if err != nil {
					m.Lock()
					errs = append(errs, err)
					m.Unlock()
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
		func() error {
			m.RLock()
			defer m.RUnlock()
			return errorkitlite.Merge(errs...)
		}
}

// CollectErr collects the values of a failable sequence,
// and returns the merged error value of the failed iteration steps.
func CollectErr[T any](i ErrSeq[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var (
		vs   []T
		errs []error
	)
	for v, err := range i {
		if err == nil {
			vs = append(vs, v)
		} else {
			errs = append(errs, err)
		}
	}
	return vs, errorkitlite.Merge(errs...)
}

// MapErr allows you to do additional transformation on the values of a failable sequence.
func MapErr[To any, From any](i ErrSeq[From], transform func(From) (To, error)) ErrSeq[To] {
	return func(yield func(To, error) bool) {
		for v, err := range i {
			if err != nil {
				var zero To
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// FilterErr keeps the values of a failable sequence that the filter function approves.
// Failed iteration steps are passed through untouched.
func FilterErr[T any](i ErrSeq[T], filter func(T) bool) ErrSeq[T] {
	if i == nil {
		return nil
	}
	return func(yield func(T, error) bool) {
		for v, err := range i {
			if err != nil {
				var zero T
				if !yield(zero, err) {
					return
				}
				continue
			}
			if filter(v) {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// NoMore is the sentinel error with which a paginated data source signals that no further pages are left.
const NoMore errorkitlite.Error = "iterkit: no more pages"

// FromPages will create an ErrSeq[T] which can be used like any other iterator.
// Under the hood the "next" function will be used to dynamically retrieve more values
// when the previously fetched values are already used up.
//
// An empty result is interpreted as "no more pages left".
func FromPages[T any](next func(offset int) (values []T, _ error)) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var (
			offset  int
			hasMore bool = true
		)
	fetching:
		for hasMore {
			vs, err := next(offset)
			if err != nil {
				if errors.Is(err, NoMore) {
					hasMore = false
				} else {
					var zero T
					yield(zero, err)
					return
				}
			}
			switch vsLen := len(vs); true {
			case vsLen == 0:
				break fetching
			case 0 < vsLen:
				offset += vsLen
			}
			for _, v := range vs {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
