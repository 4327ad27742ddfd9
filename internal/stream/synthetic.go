// Package stream produces element streams for the minhash command: the synthetic stream used by
// simulations and hashed text items read from files.
package stream

import "math/rand/v2"

// Iterator is called repeatedly to yield elements. It returns false once the stream is exhausted.
type Iterator func() (uint64, bool)

// Synthetic yields the elements 1..distinct in order, followed by length-distinct elements drawn
// uniformly from [0, distinct). The draw range includes 0, so a long enough stream holds
// distinct+1 different values.
func Synthetic(distinct, length int, rng *rand.Rand) Iterator {
	i := 0
	return func() (uint64, bool) {
		if i >= length {
			return 0, false
		}
		i++
		if i <= distinct {
			return uint64(i), true
		}
		return rng.Uint64N(uint64(distinct)), true
	}
}

// Collect drains it into a slice.
func Collect(it Iterator) []uint64 {
	var out []uint64
	for {
		x, ok := it()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}
