package poly

import (
	"github.com/ishandutta2007/altruct/ring"
)

// Ring bundles a coefficient ring with the strategy knobs used by the
// polynomial operations: which multiplier to dispatch to and when division
// should switch from the long algorithm to the Hensel lift.
type Ring[T any] struct {
	coeff ring.Ring[T]
	mul   Multiplier[T]

	henselMinDividend int
	henselMinDivisor  int
	henselLogFactor   int
}

// Option configures a Ring.
type Option[T any] func(*Ring[T])

// WithMultiplier installs a coefficient-level multiplication strategy. The
// default is a StandardMultiplier with the stock Karatsuba threshold.
func WithMultiplier[T any](m Multiplier[T]) Option[T] {
	return func(r *Ring[T]) { r.mul = m }
}

// WithHenselThresholds overrides the size cutoffs below which division uses
// the plain long algorithm instead of the Hensel lift: the dividend length,
// the divisor length, and the multiplier on log2 of the dividend length.
func WithHenselThresholds[T any](minDividend, minDivisor, logFactor int) Option[T] {
	return func(r *Ring[T]) {
		r.henselMinDividend = minDividend
		r.henselMinDivisor = minDivisor
		r.henselLogFactor = logFactor
	}
}

// NewRing builds an operations context over the given coefficient ring.
func NewRing[T any](coeff ring.Ring[T], opts ...Option[T]) *Ring[T] {
	r := &Ring[T]{
		coeff:             coeff,
		henselMinDividend: 100,
		henselMinDivisor:  50,
		henselLogFactor:   25,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.mul == nil {
		r.mul = NewStandardMultiplier(coeff)
	}
	return r
}

// Coeff returns the underlying coefficient ring.
func (r *Ring[T]) Coeff() ring.Ring[T] { return r.coeff }

// Multiplier returns the installed multiplication strategy.
func (r *Ring[T]) Multiplier() Multiplier[T] { return r.mul }

// New builds a polynomial over r's coefficient ring, lowest degree first.
func (r *Ring[T]) New(coeffs ...T) *Poly[T] { return New(r.coeff, coeffs...) }

// FromInt64s builds a polynomial by casting plain integers into r's
// coefficient ring.
func (r *Ring[T]) FromInt64s(vs ...int64) *Poly[T] { return FromInt64s(r.coeff, vs...) }

// Add returns a + b. Either operand may alias the result.
func (r *Ring[T]) Add(a, b *Poly[T]) *Poly[T] {
	out := New(r.coeff)
	r.AddTo(out, a, b)
	return out
}

// AddTo stores a + b into dst. dst may alias a or b.
func (r *Ring[T]) AddTo(dst, a, b *Poly[T]) {
	lr := max(a.Deg(), b.Deg())
	dst.Resize(lr + 1)
	for i := lr; i >= 0; i-- {
		dst.c[i] = r.coeff.Add(a.At(i), b.At(i))
	}
}

// Sub returns a - b. Either operand may alias the result.
func (r *Ring[T]) Sub(a, b *Poly[T]) *Poly[T] {
	out := New(r.coeff)
	r.SubTo(out, a, b)
	return out
}

// SubTo stores a - b into dst. dst may alias a or b.
func (r *Ring[T]) SubTo(dst, a, b *Poly[T]) {
	lr := max(a.Deg(), b.Deg())
	dst.Resize(lr + 1)
	for i := lr; i >= 0; i-- {
		dst.c[i] = r.coeff.Sub(a.At(i), b.At(i))
	}
}

// Neg returns -a.
func (r *Ring[T]) Neg(a *Poly[T]) *Poly[T] {
	out := New(r.coeff)
	r.NegTo(out, a)
	return out
}

// NegTo stores -a into dst. dst may alias a.
func (r *Ring[T]) NegTo(dst, a *Poly[T]) {
	lr := a.Deg()
	dst.Resize(lr + 1)
	for i := lr; i >= 0; i-- {
		dst.c[i] = r.coeff.Neg(a.At(i))
	}
}

// MulScalar returns a * s coefficient-wise.
func (r *Ring[T]) MulScalar(a *Poly[T], s T) *Poly[T] {
	out := New(r.coeff)
	lr := a.Deg()
	out.Resize(lr + 1)
	for i := lr; i >= 0; i-- {
		out.c[i] = r.coeff.Mul(a.At(i), s)
	}
	return out
}

// DivScalar returns a / s coefficient-wise; s must be invertible.
func (r *Ring[T]) DivScalar(a *Poly[T], s T) *Poly[T] {
	out := New(r.coeff)
	lr := a.Deg()
	out.Resize(lr + 1)
	for i := lr; i >= 0; i-- {
		out.c[i] = r.coeff.Div(a.At(i), s)
	}
	return out
}

// ShiftLeft returns a * x^n for n >= 0.
func (r *Ring[T]) ShiftLeft(a *Poly[T], n int) *Poly[T] {
	la := a.Deg() + 1
	out := New(r.coeff)
	out.Resize(la + n)
	for i := la - 1; i >= 0; i-- {
		out.c[i+n] = a.At(i)
	}
	for i := n - 1; i >= 0; i-- {
		out.c[i] = r.coeff.Zero()
	}
	return out
}

// ShiftRight returns a / x^n for n >= 0, discarding the low coefficients.
func (r *Ring[T]) ShiftRight(a *Poly[T], n int) *Poly[T] {
	la := a.Deg() + 1
	out := New(r.coeff)
	if la <= n {
		return out
	}
	out.Resize(la - n)
	for i := n; i < la; i++ {
		out.c[i-n] = a.At(i)
	}
	return out
}

// Trunc returns a mod x^n: the low n coefficients of a.
func (r *Ring[T]) Trunc(a *Poly[T], n int) *Poly[T] {
	out := New(r.coeff)
	if n <= 0 {
		return out
	}
	out.Resize(n)
	for i := min(n, a.Len()) - 1; i >= 0; i-- {
		out.c[i] = a.c[i]
	}
	return out
}

// polyRing adapts a *Ring[T] into a coefficient ring of polynomials so that
// polynomials over polynomials (and so on) compose through the same
// interface.
type polyRing[T any] struct {
	r *Ring[T]
}

// CoefficientRing exposes r as a ring.Ring over *Poly[T], enabling nested
// polynomial coefficients. Division is exact scalar division by a constant
// polynomial's leading coefficient only when the divisor is degree zero;
// otherwise it is polynomial quotient.
func (r *Ring[T]) CoefficientRing() ring.Ring[*Poly[T]] {
	return polyRing[T]{r: r}
}

func (pr polyRing[T]) Zero() *Poly[T]           { return New(pr.r.coeff) }
func (pr polyRing[T]) One() *Poly[T]            { return New(pr.r.coeff, pr.r.coeff.One()) }
func (pr polyRing[T]) FromInt(v int64) *Poly[T] { return New(pr.r.coeff, pr.r.coeff.FromInt(v)) }
func (pr polyRing[T]) Add(a, b *Poly[T]) *Poly[T] { return pr.r.Add(a, b) }
func (pr polyRing[T]) Sub(a, b *Poly[T]) *Poly[T] { return pr.r.Sub(a, b) }
func (pr polyRing[T]) Neg(a *Poly[T]) *Poly[T] { return pr.r.Neg(a) }
func (pr polyRing[T]) Mul(a, b *Poly[T]) *Poly[T] { return pr.r.Mul(a, b) }
func (pr polyRing[T]) Div(a, b *Poly[T]) *Poly[T] { return pr.r.Div(a, b) }
func (pr polyRing[T]) Equal(a, b *Poly[T]) bool { return a.Equal(b) }
func (pr polyRing[T]) Less(a, b *Poly[T]) bool { return a.Less(b) }
