package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Rows splits a slice into rows of at most width items, yielding the index
// of the first item of each row and the row itself.
func Rows[T any](items []T, width int) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if width <= 0 {
			return
		}
		for start := 0; start < len(items); start += width {
			end := min(start+width, len(items))
			if !yield(start, items[start:end]) {
				return
			}
		}
	}
}
