package fft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishandutta2007/altruct/ring"
)

func naiveConvolve(f *ring.PrimeField, u, v []uint64) []uint64 {
	out := make([]uint64, len(u)+len(v)-1)
	for i := range u {
		for j := range v {
			out[i+j] = f.Add(out[i+j], f.Mul(u[i], v[j]))
		}
	}
	return out
}

// naiveCyclicConvolve evaluates the definition at every output position,
// folding indices modulo the period of v.
func naiveCyclicConvolve(f *ring.PrimeField, u, v []uint64) []uint64 {
	n := len(u) + len(v) - 1
	out := make([]uint64, n)
	for k := 0; k < n; k++ {
		var acc uint64
		for i := range u {
			j := ((k-i)%len(v) + len(v)) % len(v)
			acc = f.Add(acc, f.Mul(u[i], v[j]))
		}
		out[k] = acc
	}
	return out
}

func TestConvolveMatchesNaive(t *testing.T) {
	a := assert.New(t)
	f := testField(t)

	rootOrder := 1024
	rootBase, err := f.RootOfUnity(rootOrder)
	a.NoError(err)

	for _, sizes := range [][2]int{{1, 1}, {5, 3}, {100, 60}, {200, 200}, {256, 1}} {
		u := randData(t, f, "convolve-u", sizes[0])
		v := randData(t, f, "convolve-v", sizes[1])

		got := Convolve[uint64](f, u, v, rootBase, rootOrder)
		a.Equal(naiveConvolve(f, u, v), got, "sizes=%v", sizes)
	}
}

func TestCyclicConvolveMatchesNaive(t *testing.T) {
	a := assert.New(t)
	f := testField(t)

	rootOrder := 1024
	rootBase, err := f.RootOfUnity(rootOrder)
	a.NoError(err)

	for _, sizes := range [][2]int{{3, 10}, {10, 10}, {10, 3}, {33, 7}, {1, 16}} {
		u := randData(t, f, "cyclic-u", sizes[0])
		v := randData(t, f, "cyclic-v", sizes[1])

		got := CyclicConvolve[uint64](f, u, v, rootBase, rootOrder)
		a.Equal(naiveCyclicConvolve(f, u, v), got, "sizes=%v", sizes)
	}
}

func TestCyclicConvolveAllSmallSizes(t *testing.T) {
	a := assert.New(t)
	f := testField(t)

	rootOrder := 64
	rootBase, err := f.RootOfUnity(rootOrder)
	a.NoError(err)

	for uSize := 1; uSize <= 12; uSize++ {
		for vSize := 1; vSize <= 12; vSize++ {
			u := randData(t, f, "cyclic-sweep-u", uSize)
			v := randData(t, f, "cyclic-sweep-v", vSize)

			got := CyclicConvolve[uint64](f, u, v, rootBase, rootOrder)
			a.Equal(naiveCyclicConvolve(f, u, v), got, "sizes={%d,%d}", uSize, vSize)
		}
	}
}

func TestCyclicConvolutionResultLandsInDst(t *testing.T) {
	a := assert.New(t)
	f := testField(t)

	n := 16
	rootBase, err := f.RootOfUnity(64)
	a.NoError(err)

	u := randData(t, f, "in-place-u", n)
	v := randData(t, f, "in-place-v", n)
	want := naiveCyclicConvolve(f, u, append([]uint64(nil), v...))[:n]

	dst := make([]uint64, n)
	CyclicConvolution[uint64](f, dst, u, v, rootBase, 64)
	a.Equal(want, dst)
}

func TestConvolveOverComplex(t *testing.T) {
	a := assert.New(t)
	c := ring.NewComplex()

	rootOrder := 64
	rootBase, err := c.RootOfUnity(rootOrder)
	a.NoError(err)

	u := []complex128{1, 2, 3}
	v := []complex128{4, 5}
	want := []complex128{4, 13, 22, 15}

	got := Convolve[complex128](c, u, v, rootBase, rootOrder)
	a.Equal(len(want), len(got))
	for i := range want {
		a.InDelta(real(want[i]), real(got[i]), 1e-9)
		a.InDelta(imag(want[i]), imag(got[i]), 1e-9)
	}
}
