package viewkit_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterkit"
	"go.llib.dev/iterkit/viewkit"
)

func ExampleSliceValues() {
	vals := viewkit.SliceValues([]string{"foo", "bar", "baz"})
	defer vals.Close()
	for vals.Next() {
		fmt.Println(vals.Value())
	}
	// Output:
	// foo
	// bar
	// baz
}

func collectView[V any](t *testcase.T, v viewkit.View[V]) []V {
	t.Helper()
	vs, err := iterkit.CollectIter[V](v)
	assert.NoError(t, err)
	return vs
}

func TestSliceViews(t *testing.T) {
	s := testcase.NewSpec(t)

	src := testcase.Let(s, func(t *testcase.T) []string {
		return []string{"a", "b", "c"}
	})

	s.Test("entries pair each index with its element", func(t *testcase.T) {
		got := collectView(t, viewkit.SliceEntries(src.Get(t)))
		assert.Equal(t, []iterkit.KV[int, string]{
			{K: 0, V: "a"},
			{K: 1, V: "b"},
			{K: 2, V: "c"},
		}, got)
	})

	s.Test("keys are the indexes", func(t *testcase.T) {
		assert.Equal(t, []int{0, 1, 2}, collectView(t, viewkit.SliceKeys(src.Get(t))))
	})

	s.Test("values are the elements in order", func(t *testcase.T) {
		assert.Equal(t, []string{"a", "b", "c"}, collectView(t, viewkit.SliceValues(src.Get(t))))
	})

	s.Test("an empty slice produces empty views", func(t *testcase.T) {
		assert.Empty(t, collectView(t, viewkit.SliceValues[string](nil)))
		assert.Empty(t, collectView(t, viewkit.SliceKeys[string](nil)))
		assert.Empty(t, collectView(t, viewkit.SliceEntries[string](nil)))
	})

	s.Test("each view carries its diagnostic tag", func(t *testcase.T) {
		assert.Equal(t, "Slice Entries", viewkit.SliceEntries(src.Get(t)).Tag())
		assert.Equal(t, "Slice Keys", viewkit.SliceKeys(src.Get(t)).Tag())
		assert.Equal(t, "Slice Values", viewkit.SliceValues(src.Get(t)).Tag())
	})
}

func TestMapViews(t *testing.T) {
	s := testcase.NewSpec(t)

	src := testcase.Let(s, func(t *testcase.T) map[string]int {
		return map[string]int{"b": 2, "a": 1, "c": 3}
	})

	s.Test("entries iterate in ascending key order", func(t *testcase.T) {
		got := collectView(t, viewkit.MapEntries(src.Get(t)))
		assert.Equal(t, []iterkit.KV[string, int]{
			{K: "a", V: 1},
			{K: "b", V: 2},
			{K: "c", V: 3},
		}, got)
	})

	s.Test("keys iterate in ascending order", func(t *testcase.T) {
		assert.Equal(t, []string{"a", "b", "c"}, collectView(t, viewkit.MapKeys(src.Get(t))))
	})

	s.Test("values follow the key order", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2, 3}, collectView(t, viewkit.MapValues(src.Get(t))))
	})

	s.Test("each view carries its diagnostic tag", func(t *testcase.T) {
		assert.Equal(t, "Map Entries", viewkit.MapEntries(src.Get(t)).Tag())
		assert.Equal(t, "Map Keys", viewkit.MapKeys(src.Get(t)).Tag())
		assert.Equal(t, "Map Values", viewkit.MapValues(src.Get(t)).Tag())
	})
}

func TestStringViews(t *testing.T) {
	s := testcase.NewSpec(t)

	const src = "gő" // the second rune is two bytes wide

	s.Test("entries pair each rune with its byte offset", func(t *testcase.T) {
		got := collectView(t, viewkit.StringEntries(src))
		assert.Equal(t, []iterkit.KV[int, rune]{
			{K: 0, V: 'g'},
			{K: 1, V: 'ő'},
		}, got)
	})

	s.Test("keys advance by the encoded rune width", func(t *testcase.T) {
		assert.Equal(t, []int{0, 1}, collectView(t, viewkit.StringKeys(src)))
		assert.Equal(t, []int{0, 1, 3}, collectView(t, viewkit.StringKeys(src+"!")))
	})

	s.Test("values are the decoded runes", func(t *testcase.T) {
		assert.Equal(t, []rune{'g', 'ő'}, collectView(t, viewkit.StringValues(src)))
	})

	s.Test("each view carries its diagnostic tag", func(t *testcase.T) {
		assert.Equal(t, "String Entries", viewkit.StringEntries(src).Tag())
		assert.Equal(t, "String Keys", viewkit.StringKeys(src).Tag())
		assert.Equal(t, "String Values", viewkit.StringValues(src).Tag())
	})
}

func TestView_behavesAsCursor(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) viewkit.View[string] {
		return viewkit.SliceValues([]string{"a", "b"})
	})

	s.Test("it is its own iterable", func(t *testcase.T) {
		v := subject.Get(t)
		var self iterkit.Iter[string] = v
		assert.True(t, v.Iterate() == self)
	})

	s.Test("exhaustion is final", func(t *testcase.T) {
		v := subject.Get(t)
		for v.Next() {
		}
		assert.False(t, v.Next())
		assert.NoError(t, v.Err())
	})

	s.Test("closing stops the traversal for good", func(t *testcase.T) {
		v := subject.Get(t)
		assert.True(t, v.Next())
		assert.NoError(t, v.Close())
		assert.False(t, v.Next())
		assert.NoError(t, v.Close())
	})

	s.Test("closing before the first advance is safe", func(t *testcase.T) {
		v := subject.Get(t)
		assert.NoError(t, v.Close())
		assert.False(t, v.Next())
	})

	s.Test("the tag doubles as the string representation", func(t *testcase.T) {
		assert.Equal(t, "Slice Values", fmt.Sprint(subject.Get(t)))
	})
}
