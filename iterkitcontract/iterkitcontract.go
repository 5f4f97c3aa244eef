// Package iterkitcontract defines the behavioural contracts of the iteration protocol.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterkit"
	"go.llib.dev/iterkit/contract"
)

// probeDepth bounds how far a contract is willing to advance a cursor
// before it considers the subject an endless sequence.
const probeDepth = 128

// IterSeq asserts that a push sequence can serve as a traversal source.
func IterSeq[T any](mk contract.Make[iter.Seq[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	return s.AsSuite("IterSeq")
}

// Iter asserts the pull cursor capability:
// a stateful single use cursor whose completion is final.
func Iter[V any](mk contract.Make[iterkit.Iter[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.Iter[V] {
		itr := mk(t)
		t.Defer(itr.Close)
		return itr
	})

	s.Then("the value is repeatable between advances", func(t *testcase.T) {
		itr := subject.Get(t)
		if !itr.Next() {
			t.Log("the cursor held no values, nothing to assert on")
			return
		}
		assert.Equal(t, itr.Value(), itr.Value())
	})

	s.Then("once completion is reported, it keeps being reported", func(t *testcase.T) {
		itr := subject.Get(t)
		var total int
		for itr.Next() {
			total++
			if probeDepth <= total {
				t.Log("the cursor kept yielding values, treating it as an endless sequence")
				return
			}
		}
		assert.False(t, itr.Next())
		assert.False(t, itr.Next())
	})

	s.Then("closing the cursor is idempotent", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.NoError(t, itr.Close())
	})

	s.Then("after closing, the cursor reports completion", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.False(t, itr.Next())
	})

	return s.AsSuite("Iter")
}

// Iterable asserts the factory capability:
// the subject must hand out conforming cursors on demand.
func Iterable[V any](mk contract.Make[iterkit.Iterable[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.Iterable[V] {
		return mk(t)
	})

	s.Then("the factory provides a cursor", func(t *testcase.T) {
		itr := subject.Get(t).Iterate()
		assert.NotNil(t, itr)
		assert.NoError(t, itr.Close())
	})

	s.Then("it is accepted as a traversal source", func(t *testcase.T) {
		assert.NoError(t, iterkit.Validate(subject.Get(t), iterkit.ProbeDepth(probeDepth)))
	})

	return s.AsSuite("Iterable")
}

// IterIterable asserts the self referential iteration capability:
// the subject is a cursor whose factory operation returns the cursor itself.
func IterIterable[V any](mk contract.Make[iterkit.IterIterable[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.IterIterable[V] {
		itr := mk(t)
		t.Defer(itr.Close)
		return itr
	})

	s.Then("its factory operation returns the same cursor reference", func(t *testcase.T) {
		itr := subject.Get(t)
		var self iterkit.Iter[V] = itr
		assert.True(t, itr.Iterate() == self)
	})

	testcase.RunSuite(s, Iter[V](func(tb testing.TB) iterkit.Iter[V] {
		return mk(tb)
	}))

	return s.AsSuite("IterIterable")
}
