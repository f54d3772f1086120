// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runfold

// Reduce strictly folds the remaining elements of it into a single value,
// applying combine left-to-right in consumption order. An exhausted source
// returns init unchanged.
//
// Reduce is the terminal counterpart of [Fold]: the last value a Fold over
// the same source, initial value, and combining function would yield equals
// Reduce's result.
func Reduce[T, B any, F ~func(B, T) B](it Iterator[T], init B, combine F) B {
	acc := init
	for {
		e, ok := it.Next()
		if !ok {
			return acc
		}
		acc = combine(acc, e)
	}
}
