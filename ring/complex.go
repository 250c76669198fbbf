package ring

import (
	"errors"
	"math"
)

// Complex is the field of complex128 values. It admits principal roots of
// unity of every order, which makes it the reference ring for the
// floating-point Fourier transforms.
type Complex struct{}

// NewComplex returns the complex128 ring.
func NewComplex() Complex { return Complex{} }

func (Complex) Zero() complex128           { return 0 }
func (Complex) One() complex128            { return 1 }
func (Complex) FromInt(v int64) complex128 { return complex(float64(v), 0) }

func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Sub(a, b complex128) complex128 { return a - b }
func (Complex) Neg(a complex128) complex128    { return -a }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Div(a, b complex128) complex128 { return a / b }

func (Complex) Equal(a, b complex128) bool { return a == b }

// Less orders lexicographically by (real, imaginary). Complex numbers have
// no natural order; this exists only to satisfy the ring contract used by
// polynomial comparison.
func (Complex) Less(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}

func (Complex) IsField() bool { return true }

var errRootOrderTooSmall = errors.New("root order must be >= 1")

// RootOfUnity returns e^(2*pi*i/n).
func (Complex) RootOfUnity(n int) (complex128, error) {
	if n < 1 {
		return 0, errRootOrderTooSmall
	}
	theta := 2 * math.Pi / float64(n)
	return complex(math.Cos(theta), math.Sin(theta)), nil
}
