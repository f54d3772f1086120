// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runfold

import "iter"

// Fold is a lazy running-fold adaptor: each step pulls one element from the
// source, combines it into the accumulator, and yields the new accumulator.
//
// Fold[T, B, F] produces values of the accumulator type B from a source of
// element type T. The combining callable type F is a dedicated type parameter
// so calls through it can be devirtualized at monomorphization time; F may be
// a closure carrying its own state and is invoked exactly once per element.
//
// A Fold exclusively owns its source and is mutated in place on every step.
// It retains no elements beyond the current accumulator.
type Fold[T, B any, F ~func(B, T) B] struct {
	src     Iterator[T]
	acc     B
	combine F
}

// New pairs a source with an initial accumulator value and a combining
// function. Nothing is validated and nothing is pulled: an already-exhausted
// source is acceptable and yields immediate exhaustion on the first step.
func New[T, B any, F ~func(B, T) B](src Iterator[T], init B, combine F) *Fold[T, B, F] {
	if src == nil {
		panic("runfold: New requires a non-nil source")
	}
	if combine == nil {
		panic("runfold: New requires a non-nil combining function")
	}
	return &Fold[T, B, F]{src: src, acc: init, combine: combine}
}

// Next pulls exactly one element from the source.
//
// On an element e it computes combine(acc, e), stores the result as the new
// accumulator, and returns it with true. The yielded value and the stored
// accumulator never diverge. On exhaustion it returns (zero, false) without
// invoking combine and without modifying the accumulator.
//
// Next is not fused: calling it again after exhaustion pulls the source
// again, and the source's own post-exhaustion contract applies.
//
// If combine panics, the accumulator keeps its previous value; the element
// that triggered the panic has already been consumed.
func (f *Fold[T, B, F]) Next() (B, bool) {
	e, ok := f.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	f.acc = f.combine(f.acc, e)
	return f.acc, true
}

// SizeHint reports the source's own remaining-length bounds unmodified:
// the adaptor yields exactly one output per input, so the counts coincide.
// Sources without a hint report (0, 0, false).
func (f *Fold[T, B, F]) SizeHint() (lo, hi int, bounded bool) {
	if h, ok := f.src.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, 0, false
}

// Count consumes the adaptor and reports how many values it would have
// produced. Delegation goes straight to the source — via its own Count when
// it implements Counter, else by draining it — so combine is never invoked.
func (f *Fold[T, B, F]) Count() int {
	if c, ok := f.src.(Counter); ok {
		return c.Count()
	}
	n := 0
	for {
		if _, ok := f.src.Next(); !ok {
			return n
		}
		n++
	}
}

// Seq exposes the remaining output as a range-over-func sequence. The
// sequence is single-use and shares the adaptor's state: breaking out and
// ranging again resumes from the current accumulator.
func (f *Fold[T, B, F]) Seq() iter.Seq[B] {
	return func(yield func(B) bool) {
		for {
			v, ok := f.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
