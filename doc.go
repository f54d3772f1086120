// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package runfold provides a lazy running-fold (prefix-scan) adaptor over
// pull-based sequences in Go.
//
// The core type [Fold] wraps a source sequence, an initial accumulator value,
// and a combining function. Each call to [Fold.Next] pulls exactly one element
// from the source, folds it into the accumulator, and yields the new
// accumulator value. The last value yielded before exhaustion is what a strict
// fold ([Reduce]) over the same source, initial value, and combining function
// would have returned.
//
// # Design Philosophy
//
// runfold provides:
//   - A minimal pull-iterator contract ([Iterator]) with optional capability
//     interfaces ([SizeHinter], [Counter]) discovered by structural assertion
//   - A combining callable carried as a dedicated type parameter for
//     compile-time dispatch and devirtualization
//   - O(1) state and allocation-free stepping: only the current accumulator
//     is retained, never any prefix of the input
//
// # Core Adaptor
//
//   - [New]: Pair a source with an initial value and a combining function
//   - [Fold.Next]: Pull one element, recombine, store, and yield the result
//   - [Fold.SizeHint]: Passthrough of the source's remaining-length bounds
//   - [Fold.Count]: Exhaust-and-count, delegating to the source
//   - [Fold.Seq]: Range-over-func view of the remaining output
//
// The adaptor is mutated in place: after a successful step, the stored
// accumulator and the yielded value are the same value. On exhaustion Next
// reports false without invoking the combining function and without touching
// the accumulator.
//
// # Sources
//
//   - [Slice]: Iterate a slice; exact size hint, O(1) count
//   - [Func]: Adapt an ad-hoc func() (T, bool) producer
//   - [FromSeq]: Bridge a range-over-func sequence via iter.Pull
//
// Terminal operations and bridges:
//
//   - [Reduce]: Strict full fold to a single value
//   - [Collect]: Drain an iterator into a slice
//   - [ToSeq]: Expose any [Iterator] as an iter.Seq
//   - [Running]: Running fold directly over an iter.Seq
//
// # Ownership and Laziness
//
// A [Fold] exclusively owns its source: no other code may advance the source
// while the adaptor is live, and the adaptor provides no internal locking.
// Nothing is computed until the caller requests the next value; each step
// performs exactly one underlying pull. The accumulator type must be cheaply
// copyable by value — the same value becomes the new stored state and the
// caller's result, so callers must not mutate interior pointers of a yielded
// accumulator across steps.
//
// # Exhaustion and Fusing
//
// The adaptor is not fused and it is not specified what happens when Next is
// called again after the source first reports exhaustion: the call is passed
// through to the source, and the source's own post-exhaustion contract
// applies. Callers that need a stable always-exhausted signal must wrap the
// source (or the adaptor) in a fusing layer of their own.
//
// # Combining Function Failure
//
// The combining function is expected to be total. If it panics, the panic
// propagates from [Fold.Next]; the stored accumulator keeps its last
// successfully computed value, while the element that triggered the panic has
// already been consumed from the source. Consumption is not rolled back.
//
// # Example
//
//	it := runfold.New(runfold.Slice([]int{1, 2, 3, 4, 5}), 1,
//		func(acc, x int) int { return acc * x })
//
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//		fmt.Println(v)
//	}
//	// Output: 1 2 6 24 120
//
// The last printed value, 120, equals
// Reduce(Slice([]int{1, 2, 3, 4, 5}), 1, multiply).
package runfold
