package minhash

import "math/rand/v2"

// Moduli are drawn from [minModulus, maxModulus) so that every slot normalizes with roughly the
// same resolution.
const (
	minModulus = 1 << 31
	maxModulus = 1 << 32
)

// family is a set of affine hash functions h_i(x) = (a*x + b) mod p[i]. The coefficients are shared
// by all functions, the moduli are drawn per function.
type family struct {
	a, b uint64
	p    []uint64
}

// newFamily draws numSlots moduli and then the two coefficients from rng.
func newFamily(numSlots int, rng *rand.Rand) *family {
	f := &family{p: make([]uint64, numSlots)}
	for i := range f.p {
		f.p[i] = minModulus + rng.Uint64N(maxModulus-minModulus)
	}
	f.a = rng.Uint64()
	f.b = rng.Uint64()
	return f
}

// Evaluate returns h_slot(x). The product and sum wrap modulo 2^64 before the reduction by the
// slot's modulus. slot must be in range.
func (f *family) Evaluate(x uint64, slot int) uint64 {
	return (f.a*x + f.b) % f.p[slot]
}

// Normalized returns h_slot(x) / p[slot], a value in [0, 1).
func (f *family) Normalized(x uint64, slot int) float64 {
	return float64(f.Evaluate(x, slot)) / float64(f.p[slot])
}

func (f *family) Modulus(slot int) uint64 {
	return f.p[slot]
}

func (f *family) Coefficients() (a, b uint64) {
	return f.a, f.b
}

func (f *family) Size() int {
	return len(f.p)
}
