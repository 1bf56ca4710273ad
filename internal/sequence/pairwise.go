package sequence

import (
	"iter"
	"slices"
)

// sumFunc combines a seed with the next increment.
type sumFunc func(seed, increment int) int

func add(seed, increment int) int { return seed + increment }

// PairwiseAccumulate returns the pairwise chain for seed and increments.
//
// For increments [i0, i1, ..., in] the sequence is
// seed+i0, i0+i1, ..., i(n-1)+in, in. An empty increments slice yields seed
// alone, so the sequence always has len(increments)+1 values. increments is
// copied; later changes by the caller do not affect the sequence.
func PairwiseAccumulate(seed int, increments []int) iter.Seq[int] {
	return pairwise(seed, slices.Clone(increments), add)
}

func pairwise(seed int, increments []int, sum sumFunc) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(increments) == 0 {
			yield(seed)
			return
		}
		if !yield(sum(seed, increments[0])) {
			return
		}
		for v := range pairwise(increments[0], increments[1:], sum) {
			if !yield(v) {
				return
			}
		}
	}
}
