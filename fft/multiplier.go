package fft

import (
	"github.com/ishandutta2007/altruct/poly"
	"github.com/ishandutta2007/altruct/ring"
)

// DefaultConvolutionThreshold is the degree of the shorter operand below
// which Multiplier stays with the direct algorithms; transform setup
// dominates below that size.
const DefaultConvolutionThreshold = 64

// Multiplier is a poly.Multiplier that multiplies large operands through
// FFT convolution and falls back to schoolbook or Karatsuba below the
// threshold, or when the ring cannot supply a root of unity of the needed
// order. Install it with poly.WithMultiplier.
type Multiplier[T any] struct {
	rg        ring.RootOfUnityRing[T]
	Threshold int
}

// NewMultiplier builds a convolution-backed strategy over rg.
func NewMultiplier[T any](rg ring.RootOfUnityRing[T]) *Multiplier[T] {
	return &Multiplier[T]{rg: rg, Threshold: DefaultConvolutionThreshold}
}

func (m *Multiplier[T]) MulCoeffs(pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int) {
	if l2 >= m.Threshold {
		n := l1 + l2 + 1
		l := 1
		for l < n {
			l *= 2
		}
		if root, err := m.rg.RootOfUnity(l); err == nil {
			res := Convolve(m.rg, p1[:l1+1], p2[:l2+1], root, l)
			copy(pr[:lr+1], res)
			return
		}
	}
	if l2 < poly.DefaultKaratsubaThreshold {
		poly.Schoolbook(m.rg, pr, lr, p1, l1, p2, l2)
	} else {
		poly.Karatsuba(m.rg, m, pr, lr, p1, l1, p2, l2)
	}
}
