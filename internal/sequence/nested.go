package sequence

import "iter"

// NestedSequences returns the nested sequence for level n.
//
// Level 0 yields [1]. Level n > 0 drains level n-1, keeps only the last
// sequence it produced, and yields one fresh slice holding the pairwise chain
// of that sequence seeded with 0. Negative levels yield nothing.
func NestedSequences(n int) iter.Seq[[]int] {
	return nested(n, add)
}

func nested(n int, sum sumFunc) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		switch {
		case n < 0:
			return
		case n == 0:
			yield([]int{1})
			return
		}

		// Every earlier value is overwritten; only the last one is accumulated.
		var last []int
		for x := range nested(n-1, sum) {
			last = x
		}

		r := make([]int, 0, len(last)+1)
		for y := range pairwise(0, last, sum) {
			r = append(r, y)
		}
		yield(r)
	}
}
