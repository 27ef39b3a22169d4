// Package game implements the color-matching rules: shuffling, round
// generation, answer evaluation and the per-player session state.
package game

import "math/rand"

// Shuffle returns a uniformly random permutation of in (Fisher-Yates).
// The input slice is never modified.
func Shuffle[T any](rng *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
