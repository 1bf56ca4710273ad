// Package sequence provides recursive lazy integer sequences.
//
// Producers return [iter.Seq] values. Nothing is computed until the sequence
// is ranged over, and a consumer that stops early (break, or yield returning
// false) leaves the remaining values uncomputed.
//
// # Pairwise chains
//
// [PairwiseAccumulate] emits the seed plus the first increment, then restarts
// itself with that increment as the new seed. Each output after the first is
// therefore the sum of two neighbouring increments, not a running total, and
// the chain ends with the last increment on its own.
//
// # Nested sequences
//
// [NestedSequences] feeds the last sequence of the previous level into a
// pairwise chain seeded with zero. Only the final value of each level is
// carried forward, so level n yields a single sequence: row n of Pascal's
// triangle.
package sequence
