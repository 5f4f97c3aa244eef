package iterkit_test

import (
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterkit"
)

func ExampleZip() {
	names := iterkit.Slice([]string{"alpha", "beta"})
	codes := iterkit.Slice([]int{1, 2, 3})

	for name, code := range iterkit.Zip(names, codes) {
		fmt.Println(name, code)
	}
	// Output:
	// alpha 1
	// beta 2
}

func TestZip(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are paired up position by position", func(t *testcase.T) {
		got := iterkit.Collect2Map(iterkit.Zip(
			iterkit.Slice([]string{"a", "b", "c"}),
			iterkit.Slice([]int{1, 2, 3}),
		))
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
	})

	s.Test("the pairing stops at the shortest input", func(t *testcase.T) {
		var n int
		for range iterkit.Zip(
			iterkit.Slice([]string{"a", "b"}),
			iterkit.IntRange(1, 100),
		) {
			n++
		}
		assert.Equal(t, 2, n)
	})

	s.Test("a completed source is not pulled any further", func(t *testcase.T) {
		var pulls int
		counting := func(yield func(int) bool) {
			for i := 0; i < 100; i++ {
				pulls++
				if !yield(i) {
					return
				}
			}
		}
		iterkit.CollectKV(iterkit.Zip[string, int](
			iterkit.Empty[string](),
			counting,
		))
		assert.Equal(t, 0, pulls)
	})

	s.Test("early break releases both sources", func(t *testcase.T) {
		for a, b := range iterkit.Zip(
			iterkit.IntRange(1, 10),
			iterkit.IntRange(1, 10),
		) {
			assert.Equal(t, a, b)
			break
		}
	})

	s.Test("empty inputs pair into an empty sequence", func(t *testcase.T) {
		vs := iterkit.CollectKV(iterkit.Zip(iterkit.Empty[int](), iterkit.Empty[string]()))
		assert.Empty(t, vs)
	})
}

func TestZipLongest(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the pairing continues until the longest input", func(t *testcase.T) {
		got := iterkit.CollectKV(iterkit.ZipLongest(
			iterkit.Slice([]string{"a", "b", "c"}),
			iterkit.Slice([]int{1}),
		))
		assert.Equal(t, []iterkit.KV[string, int]{
			{K: "a", V: 1},
			{K: "b", V: 0},
			{K: "c", V: 0},
		}, got)
	})

	s.Test("the exhausted side is padded with the zero value", func(t *testcase.T) {
		got := iterkit.CollectKV(iterkit.ZipLongest(
			iterkit.Slice([]string{"a"}),
			iterkit.Slice([]int{1, 2, 3}),
		))
		assert.Equal(t, []iterkit.KV[string, int]{
			{K: "a", V: 1},
			{K: "", V: 2},
			{K: "", V: 3},
		}, got)
	})

	s.Test("a source that reported completion is not pulled again", func(t *testcase.T) {
		var pulls int
		short := func(yield func(int) bool) {
			pulls++
			_ = yield(1)
		}
		iterkit.CollectKV(iterkit.ZipLongest[int, string](
			short,
			iterkit.Slice([]string{"a", "b", "c"}),
		))
		assert.Equal(t, 1, pulls)
	})

	s.Test("equal length inputs behave as Zip", func(t *testcase.T) {
		got := iterkit.Collect2Map(iterkit.ZipLongest(
			iterkit.Slice([]string{"a", "b"}),
			iterkit.Slice([]int{1, 2}),
		))
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
	})

	s.Test("both inputs being empty yields nothing", func(t *testcase.T) {
		assert.Empty(t, iterkit.CollectKV(iterkit.ZipLongest(iterkit.Empty[int](), iterkit.Empty[int]())))
	})
}

func TestZipAll(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("rows combine the corresponding element of every input", func(t *testcase.T) {
		rows := iterkit.Collect(iterkit.ZipAll(
			iterkit.Slice([]int{1, 2}),
			iterkit.Slice([]int{10, 20}),
			iterkit.Slice([]int{100, 200}),
		))
		assert.Equal(t, [][]int{{1, 10, 100}, {2, 20, 200}}, rows)
	})

	s.Test("the rows stop at the shortest input", func(t *testcase.T) {
		rows := iterkit.Collect(iterkit.ZipAll(
			iterkit.IntRange(1, 100),
			iterkit.Slice([]int{1}),
		))
		assert.Equal(t, 1, len(rows))
	})

	s.Test("without inputs the combined sequence is empty", func(t *testcase.T) {
		assert.Empty(t, iterkit.Collect(iterkit.ZipAll[int]()))
	})

	s.Test("a single input zips into single element rows", func(t *testcase.T) {
		rows := iterkit.Collect(iterkit.ZipAll(iterkit.Slice([]int{1, 2, 3})))
		assert.Equal(t, [][]int{{1}, {2}, {3}}, rows)
	})

	s.Test("early break stops pulling the inputs", func(t *testcase.T) {
		var pulls int
		src := iter.Seq[int](func(yield func(int) bool) {
			for i := 0; ; i++ {
				pulls++
				if !yield(i) {
					return
				}
			}
		})
		for range iterkit.ZipAll(src) {
			break
		}
		assert.Equal(t, 1, pulls)
	})
}
