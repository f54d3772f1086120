// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runfold

import "iter"

// Running returns the running fold of seq as a range-over-func sequence:
// one output per input, applied left-to-right from init. The accumulator
// lives in the returned closure, so the sequence is single-use; nothing is
// pulled from seq until the result is ranged, and pulling stops as soon as
// the consumer breaks.
//
// Running is the native-sequence counterpart of [New] for callers already
// working with iter.Seq values.
func Running[T, B any, F ~func(B, T) B](seq iter.Seq[T], init B, combine F) iter.Seq[B] {
	if combine == nil {
		panic("runfold: Running requires a non-nil combining function")
	}
	return func(yield func(B) bool) {
		acc := init
		for e := range seq {
			acc = combine(acc, e)
			if !yield(acc) {
				return
			}
		}
	}
}
