package minhash

import "math/rand/v2"

// Option configures a Sketch at construction time.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand makes the sketch draw its moduli and coefficients from rng. Two sketches built from
// generators in the same state get the same hash family.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is a shorthand for WithRand with a PCG generator seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^pcgStream)))
}

// Arbitrary constant used to derive the second PCG word from a single seed.
const pcgStream = 0x9e3779b97f4a7c15

func defaultOptions() *options {
	return &options{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}
