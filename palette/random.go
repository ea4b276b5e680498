// ABOUTME: Uniform random selection used for the initial accent
// ABOUTME: Takes the random source as a parameter so callers can seed it

package palette

import "math/rand/v2"

// PickRandom returns a uniformly chosen element of seq
// A nil rng uses the global source. Returns the zero value for an empty seq.
func PickRandom[T any](rng *rand.Rand, seq []T) T {
	var zero T
	if len(seq) == 0 {
		return zero
	}

	if rng == nil {
		return seq[rand.IntN(len(seq))]
	}

	return seq[rng.IntN(len(seq))]
}
