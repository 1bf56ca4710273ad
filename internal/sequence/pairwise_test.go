package sequence

import (
	"slices"
	"testing"
)

func TestPairwiseAccumulate(t *testing.T) {
	tests := []struct {
		name       string
		seed       int
		increments []int
		want       []int
	}{
		{name: "default driver input", seed: 9, increments: []int{0, 3, 6}, want: []int{9, 3, 9, 6}},
		{name: "empty increments", seed: 7, increments: nil, want: []int{7}},
		{name: "single increment", seed: 2, increments: []int{5}, want: []int{7, 5}},
		{name: "negative values", seed: -1, increments: []int{-2, 4}, want: []int{-3, 2, 4}},
		{name: "pascal row", seed: 0, increments: []int{1, 2, 1}, want: []int{1, 3, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(PairwiseAccumulate(tt.seed, tt.increments))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if len(got) != len(tt.increments)+1 {
				t.Fatalf("expected %d values, got %d", len(tt.increments)+1, len(got))
			}
		})
	}
}

func TestPairwiseAccumulateIsRepeatable(t *testing.T) {
	seq := PairwiseAccumulate(9, []int{0, 3, 6})
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("expected identical output on reuse, got %v and %v", first, second)
	}
	if again := slices.Collect(PairwiseAccumulate(9, []int{0, 3, 6})); !slices.Equal(first, again) {
		t.Fatalf("expected identical output on rebuild, got %v and %v", first, again)
	}
}

func TestPairwiseAccumulateCopiesIncrements(t *testing.T) {
	increments := []int{0, 3, 6}
	seq := PairwiseAccumulate(9, increments)
	increments[1] = 100

	got := slices.Collect(seq)
	if want := []int{9, 3, 9, 6}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

type countingSum struct {
	calls int
}

func (c *countingSum) sum(seed, increment int) int {
	c.calls++
	return seed + increment
}

func TestPairwiseIsLazy(t *testing.T) {
	counter := &countingSum{}
	seq := pairwise(9, []int{0, 3, 6}, counter.sum)
	if counter.calls != 0 {
		t.Fatalf("expected no work before ranging, got %d calls", counter.calls)
	}

	for v := range seq {
		if v != 9 {
			t.Fatalf("expected first value 9, got %d", v)
		}
		break
	}
	if counter.calls != 1 {
		t.Fatalf("expected 1 call after first value, got %d", counter.calls)
	}
}

func TestPairwiseStopsMidChain(t *testing.T) {
	counter := &countingSum{}
	var got []int
	for v := range pairwise(9, []int{0, 3, 6}, counter.sum) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{9, 3}) {
		t.Fatalf("expected [9 3], got %v", got)
	}
	if counter.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", counter.calls)
	}
}
