package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishandutta2007/altruct/ring"
)

func TestKeyedPRNGIsDeterministic(t *testing.T) {
	a := assert.New(t)

	key := []byte("shared-key")
	p1, err := NewKeyedPRNG(key)
	a.NoError(err)
	p2, err := NewKeyedPRNG(key)
	a.NoError(err)

	b1 := make([]byte, 64)
	b2 := make([]byte, 64)
	_, err = p1.Read(b1)
	a.NoError(err)
	_, err = p2.Read(b2)
	a.NoError(err)
	a.Equal(b1, b2)

	a.Equal(key, p1.Key())
}

func TestKeyedPRNGReset(t *testing.T) {
	a := assert.New(t)

	prng, err := NewKeyedPRNG([]byte("reset"))
	a.NoError(err)

	first := make([]byte, 32)
	_, err = prng.Read(first)
	a.NoError(err)

	prng.Reset()
	again := make([]byte, 32)
	_, err = prng.Read(again)
	a.NoError(err)
	a.Equal(first, again)
}

func TestLabeledPRNG(t *testing.T) {
	a := assert.New(t)

	p1, err := NewLabeledPRNG("bench-inputs")
	a.NoError(err)
	p2, err := NewLabeledPRNG("bench-inputs")
	a.NoError(err)
	p3, err := NewLabeledPRNG("other-inputs")
	a.NoError(err)

	a.Equal(RandUint64(p1), RandUint64(p2))
	a.NotEqual(RandUint64(p1), RandUint64(p3))
}

func TestUniformSamplerStaysBelowModulus(t *testing.T) {
	a := assert.New(t)

	f, err := ring.NewPrimeField(65537)
	a.NoError(err)
	prng, err := NewLabeledPRNG("uniform")
	a.NoError(err)

	s := NewUniformSampler(prng, f)
	for i := 0; i < 1000; i++ {
		a.Less(s.ReadUint64(), f.Modulus())
	}

	p := s.ReadPoly(100)
	a.Equal(100, p.Len())
	for i := 0; i < p.Len(); i++ {
		a.Less(p.At(i), f.Modulus())
	}
}

func TestRandInt64Bounds(t *testing.T) {
	a := assert.New(t)

	prng, err := NewLabeledPRNG("bounded")
	a.NoError(err)
	for i := 0; i < 1000; i++ {
		v := RandInt64(prng, 10)
		a.GreaterOrEqual(v, int64(-10))
		a.LessOrEqual(v, int64(10))
	}
}
