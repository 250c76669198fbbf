package sampling

import (
	"math/bits"

	"github.com/ishandutta2007/altruct/poly"
	"github.com/ishandutta2007/altruct/ring"
)

// UniformSampler draws uniformly distributed elements of a prime field,
// rejection-sampling a masked 64-bit read until it falls below the
// modulus.
type UniformSampler struct {
	prng  PRNG
	field *ring.PrimeField
	mask  uint64
}

// NewUniformSampler builds a sampler over the given field reading from
// prng.
func NewUniformSampler(prng PRNG, field *ring.PrimeField) *UniformSampler {
	return &UniformSampler{
		prng:  prng,
		field: field,
		mask:  (1 << bits.Len64(field.Modulus())) - 1,
	}
}

// ReadUint64 returns the next field element.
func (s *UniformSampler) ReadUint64() uint64 {
	q := s.field.Modulus()
	for {
		if v := RandUint64(s.prng) & s.mask; v < q {
			return v
		}
	}
}

// ReadPoly returns a polynomial with n uniformly sampled coefficients.
func (s *UniformSampler) ReadPoly(n int) *poly.Poly[uint64] {
	c := make([]uint64, n)
	for i := range c {
		c[i] = s.ReadUint64()
	}
	return poly.FromSlice[uint64](s.field, c)
}

// RandInt64 returns a value of prng in [-bound, bound].
func RandInt64(prng PRNG, bound int64) int64 {
	n := uint64(2*bound + 1)
	return int64(RandUint64(prng)%n) - bound
}

// RandFloat64 returns a value of prng in [min, max).
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 returns a complex value with both parts in [min, max).
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}
