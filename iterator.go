// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runfold

import "iter"

// Iterator is the minimal pull-based sequence contract.
//
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    use(v)
//	}
//
// Invariants:
//  1. Next returns (element, true) while elements remain, (zero, false) on
//     exhaustion.
//  2. Behavior of Next after it has reported exhaustion is up to the
//     implementation; nothing in this package calls it again on your behalf.
//  3. An Iterator is single-consumer: no internal locking.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter is an optional capability: bounds on the number of elements
// remaining. lo is always a valid lower bound; hi is an upper bound only
// when bounded is true. The default for sources that cannot estimate is
// (0, 0, false).
type SizeHinter interface {
	SizeHint() (lo, hi int, bounded bool)
}

// Counter is an optional capability: consume the remaining elements and
// report how many there were, possibly without stepping through them.
type Counter interface {
	Count() int
}

// SliceIterator iterates over a slice in index order.
type SliceIterator[T any] struct {
	s []T
	i int
}

// Slice returns an iterator over s. The slice is not copied.
func Slice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s}
}

// Next implements Iterator. Once exhausted it keeps reporting exhaustion.
func (it *SliceIterator[T]) Next() (T, bool) {
	if it.i >= len(it.s) {
		var zero T
		return zero, false
	}
	v := it.s[it.i]
	it.i++
	return v, true
}

// SizeHint implements SizeHinter. The bounds are exact.
func (it *SliceIterator[T]) SizeHint() (lo, hi int, bounded bool) {
	n := len(it.s) - it.i
	return n, n, true
}

// Count implements Counter in O(1). The iterator is consumed.
func (it *SliceIterator[T]) Count() int {
	n := len(it.s) - it.i
	it.i = len(it.s)
	return n
}

// FuncIterator adapts an ad-hoc producer function.
type FuncIterator[T any] struct {
	next func() (T, bool)
}

// Func returns an iterator that pulls from next. The producer defines its
// own exhaustion contract; no size hint is available.
func Func[T any](next func() (T, bool)) *FuncIterator[T] {
	if next == nil {
		panic("runfold: Func requires a non-nil producer")
	}
	return &FuncIterator[T]{next: next}
}

// Next implements Iterator.
func (it *FuncIterator[T]) Next() (T, bool) { return it.next() }

// SeqIterator bridges a range-over-func sequence into an Iterator.
type SeqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq starts pulling from seq via iter.Pull. Call Stop to release the
// underlying coroutine when abandoning the iterator before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) *SeqIterator[T] {
	next, stop := iter.Pull(seq)
	return &SeqIterator[T]{next: next, stop: stop}
}

// Next implements Iterator. After exhaustion or Stop it keeps reporting
// exhaustion, per the iter.Pull contract.
func (it *SeqIterator[T]) Next() (T, bool) { return it.next() }

// Stop releases the underlying sequence. Safe to call multiple times.
func (it *SeqIterator[T]) Stop() { it.stop() }

// ToSeq exposes the remaining elements of it as a range-over-func sequence.
// The sequence is single-use: ranging advances the shared iterator.
func ToSeq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a freshly allocated slice.
// Sources with a bounded size hint pre-size the result.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	if h, ok := it.(SizeHinter); ok {
		if _, hi, bounded := h.SizeHint(); bounded {
			out = make([]T, 0, hi)
		}
	}
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
