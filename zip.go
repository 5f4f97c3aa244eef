package iterkit

import "iter"

// Zip combines the corresponding elements of two sequences into pairs.
// The combined sequence stops at the shortest input,
// and a source that reported completion is not pulled any further.
func Zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(as)
		defer stopA()
		nextB, stopB := iter.Pull(bs)
		defer stopB()
		for {
			a, ok := nextA()
			if !ok {
				return
			}
			b, ok := nextB()
			if !ok {
				return
			}
			if !yield(a, b) {
				return
			}
		}
	}
}

// ZipLongest combines the corresponding elements of two sequences into pairs,
// continuing until the longest input completes.
// Completion is tracked for each source independently,
// a completed source is not pulled again and its side of the pair is padded with the zero value.
func ZipLongest[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(as)
		defer stopA()
		nextB, stopB := iter.Pull(bs)
		defer stopB()
		var doneA, doneB bool
		for {
			var (
				a A
				b B
			)
			if !doneA {
				v, ok := nextA()
				if ok {
					a = v
				} else {
					doneA = true
				}
			}
			if !doneB {
				v, ok := nextB()
				if ok {
					b = v
				} else {
					doneB = true
				}
			}
			if doneA && doneB {
				return
			}
			if !yield(a, b) {
				return
			}
		}
	}
}

// ZipAll combines the corresponding elements of any number of same typed sequences into rows.
// The combined sequence stops as soon as any input completes,
// and each source's completion is observed independently.
func ZipAll[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		var nexts = make([]func() (T, bool), 0, len(seqs))
		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			var row = make([]T, 0, len(nexts))
			for _, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row = append(row, v)
			}
			if !yield(row) {
				return
			}
		}
	}
}
