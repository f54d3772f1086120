// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runfold_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/runfold"
)

const propertyN = 1000

// randInts returns a random slice of length [0, 16] with values in
// [-1000, 1000].
func randInts(rng *rand.Rand) []int {
	n := rng.IntN(17)
	s := make([]int, n)
	for i := range s {
		s[i] = rng.IntN(2001) - 1000
	}
	return s
}

// randStrings returns a random slice of length [0, 8] of short ASCII strings.
func randStrings(rng *rand.Rand) []string {
	n := rng.IntN(9)
	s := make([]string, n)
	for i := range s {
		b := make([]byte, rng.IntN(5))
		for j := range b {
			b[j] = byte(rng.IntN(95) + 32) // printable ASCII
		}
		s[i] = string(b)
	}
	return s
}

// TestPropertySequencingLaw: output i equals the strict fold of the first
// i+1 elements, for every i.
func TestPropertySequencingLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sum := func(acc, x int) int { return acc + x }
	for range propertyN {
		input := randInts(rng)
		init := rng.IntN(2001) - 1000

		got := runfold.Collect[int](runfold.New(runfold.Slice(input), init, sum))
		if len(got) != len(input) {
			t.Fatalf("yielded %d values for %d elements", len(got), len(input))
		}
		for i := range got {
			want := runfold.Reduce(runfold.Slice(input[:i+1]), init, sum)
			if got[i] != want {
				t.Fatalf("output %d: got %d, want %d (input=%v init=%d)",
					i, got[i], want, input, init)
			}
		}
	}
}

// TestPropertyFoldEquivalence: the last yielded value equals the strict fold
// of the whole source, including for a non-commutative combine.
func TestPropertyFoldEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	appendStr := func(acc, s string) string { return acc + s }
	for range propertyN {
		input := randStrings(rng)
		if len(input) == 0 {
			continue
		}
		got := runfold.Collect[string](runfold.New(runfold.Slice(input), "", appendStr))
		want := runfold.Reduce(runfold.Slice(input), "", appendStr)
		if got[len(got)-1] != want {
			t.Fatalf("last value %q != fold %q (input=%v)", got[len(got)-1], want, input)
		}
	}
}

// TestPropertyOneToOneConsumption: the number of successful steps equals the
// source length, and each step performs exactly one pull.
func TestPropertyOneToOneConsumption(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		input := randInts(rng)
		pulls := 0
		i := 0
		src := runfold.Func(func() (int, bool) {
			pulls++
			if i >= len(input) {
				return 0, false
			}
			v := input[i]
			i++
			return v, true
		})
		it := runfold.New[int](src, 0, func(acc, x int) int { return acc + x })

		steps := 0
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			steps++
			if pulls != steps {
				t.Fatalf("step %d: %d pulls", steps, pulls)
			}
		}
		if steps != len(input) {
			t.Fatalf("got %d steps for %d elements", steps, len(input))
		}
		if pulls != len(input)+1 {
			t.Fatalf("got %d pulls, want %d", pulls, len(input)+1)
		}
	}
}

// TestPropertySizeHintPassthrough: the adaptor's hint equals the source's at
// every step position.
func TestPropertySizeHintPassthrough(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		input := randInts(rng)
		src := runfold.Slice(input)
		it := runfold.New(src, 0, func(acc, x int) int { return acc + x })

		for {
			slo, shi, sb := src.SizeHint()
			flo, fhi, fb := it.SizeHint()
			if flo != slo || fhi != shi || fb != sb {
				t.Fatalf("hint (%d, %d, %v) != source (%d, %d, %v)",
					flo, fhi, fb, slo, shi, sb)
			}
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

// TestPropertyCountEquivalence: Count equals the number of successful steps
// an identical fold would take, from any starting position.
func TestPropertyCountEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sum := func(acc, x int) int { return acc + x }
	for range propertyN {
		input := randInts(rng)
		skip := 0
		if len(input) > 0 {
			skip = rng.IntN(len(input) + 1)
		}

		counted := runfold.New(runfold.Slice(input), 0, sum)
		stepped := runfold.New(runfold.Slice(input), 0, sum)
		for range skip {
			counted.Next()
			stepped.Next()
		}

		steps := 0
		for _, ok := stepped.Next(); ok; _, ok = stepped.Next() {
			steps++
		}
		if n := counted.Count(); n != steps {
			t.Fatalf("Count %d != %d steps (len=%d skip=%d)", n, steps, len(input), skip)
		}
	}
}

// TestPropertyRunningMatchesFold: the iter.Seq surface and the pull adaptor
// agree on every input.
func TestPropertyRunningMatchesFold(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sum := func(acc, x int) int { return acc + x }
	for range propertyN {
		input := randInts(rng)
		fromSeq := slices.Collect(runfold.Running(slices.Values(input), 0, sum))
		fromFold := runfold.Collect[int](runfold.New(runfold.Slice(input), 0, sum))
		if !slices.Equal(fromSeq, fromFold) {
			t.Fatalf("Running %v != Fold %v (input=%v)", fromSeq, fromFold, input)
		}
	}
}
