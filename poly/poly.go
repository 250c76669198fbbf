// Package poly implements dense univariate polynomials over an abstract
// coefficient ring, with sub-quadratic multiplication, Newton-iterated
// power-series inversion and quasi-linear division.
//
// A polynomial stores the ring its coefficients live in; reading a
// coefficient beyond the stored length yields that ring's zero, and writing
// beyond the stored length grows the storage, zero-filling the gap. By
// convention the zero polynomial has degree 0, not a negative sentinel; all
// length arithmetic in this package relies on that convention.
package poly

import (
	"fmt"
	"strings"

	"github.com/ishandutta2007/altruct/ring"
)

// Poly is a dense polynomial sum c[i] * x^i over the ring its coefficients
// belong to. The zero value is not usable; construct with New, FromSlice or
// FromInt64s.
type Poly[T any] struct {
	coeff ring.Ring[T]
	c     []T
}

// New builds a polynomial from the given coefficients, lowest degree first.
// With no coefficients it returns the zero polynomial (a single zero
// coefficient, matching the scalar constructor of the engine).
func New[T any](r ring.Ring[T], coeffs ...T) *Poly[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	if len(c) == 0 {
		c = append(c, r.Zero())
	}
	return &Poly[T]{coeff: r, c: c}
}

// FromSlice builds a polynomial from a coefficient range, lowest degree
// first. The slice is copied.
func FromSlice[T any](r ring.Ring[T], coeffs []T) *Poly[T] {
	return New(r, coeffs...)
}

// FromInt64s builds a polynomial by casting plain integers into the ring.
func FromInt64s[T any](r ring.Ring[T], vs ...int64) *Poly[T] {
	c := make([]T, len(vs))
	for i, v := range vs {
		c[i] = r.FromInt(v)
	}
	return FromSlice(r, c)
}

// Ring returns the coefficient ring of p.
func (p *Poly[T]) Ring() ring.Ring[T] { return p.coeff }

// Len returns the number of stored coefficients, including trailing zeros.
func (p *Poly[T]) Len() int { return len(p.c) }

// At returns the coefficient of x^i, or the ring's zero when i is out of
// the stored range.
func (p *Poly[T]) At(i int) T {
	if 0 <= i && i < len(p.c) {
		return p.c[i]
	}
	return p.coeff.Zero()
}

// Set assigns the coefficient of x^i, growing the storage (zero-filled) if
// needed.
func (p *Poly[T]) Set(i int, v T) {
	p.Reserve(i + 1)
	p.c[i] = v
}

// Deg returns the highest index holding a non-zero coefficient. The zero
// polynomial has degree 0.
func (p *Poly[T]) Deg() int {
	for i := len(p.c) - 1; i > 0; i-- {
		if !p.coeff.Equal(p.c[i], p.coeff.Zero()) {
			return i
		}
	}
	return 0
}

// Lowest returns the lowest index holding a non-zero coefficient, or 0 for
// the zero polynomial.
func (p *Poly[T]) Lowest() int {
	for i := 0; i < len(p.c); i++ {
		if !p.coeff.Equal(p.c[i], p.coeff.Zero()) {
			return i
		}
	}
	return 0
}

// LeadingCoeff returns the coefficient at Deg().
func (p *Poly[T]) LeadingCoeff() T { return p.At(p.Deg()) }

// IsMonicMonomial reports whether p is exactly x^k for some k >= 0.
func (p *Poly[T]) IsMonicMonomial() bool {
	return p.Lowest() == p.Deg() && p.coeff.Equal(p.LeadingCoeff(), p.coeff.One())
}

// IsZero reports whether all stored coefficients are zero.
func (p *Poly[T]) IsZero() bool {
	for i := range p.c {
		if !p.coeff.Equal(p.c[i], p.coeff.Zero()) {
			return false
		}
	}
	return true
}

// Reserve grows the storage to at least n coefficients, zero-filling.
// It never shrinks.
func (p *Poly[T]) Reserve(n int) {
	for len(p.c) < n {
		p.c = append(p.c, p.coeff.Zero())
	}
}

// Resize sets the stored length to exactly n, zero-filling on growth and
// truncating on shrink.
func (p *Poly[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(p.c) {
		p.c = p.c[:n]
		return
	}
	p.Reserve(n)
}

// ShrinkToFit trims trailing zero coefficients, keeping Deg()+1 entries.
func (p *Poly[T]) ShrinkToFit() {
	p.Resize(p.Deg() + 1)
}

// Clone returns a deep copy of p.
func (p *Poly[T]) Clone() *Poly[T] {
	return FromSlice(p.coeff, p.c)
}

// copyFrom overwrites p with the contents of q.
func (p *Poly[T]) copyFrom(q *Poly[T]) {
	if p == q {
		return
	}
	p.coeff = q.coeff
	p.c = append(p.c[:0], q.c...)
}

// Reverse returns x^deg * p(1/x): the coefficients up to Deg() in reverse
// order. Stored trailing zeros beyond the degree stay in place.
func (p *Poly[T]) Reverse() *Poly[T] {
	r := p.Clone()
	if len(r.c) > 0 {
		for i, j := 0, r.Deg(); i < j; i, j = i+1, j-1 {
			r.c[i], r.c[j] = r.c[j], r.c[i]
		}
	}
	return r
}

// Coeffs returns a copy of the stored coefficients.
func (p *Poly[T]) Coeffs() []T {
	out := make([]T, len(p.c))
	copy(out, p.c)
	return out
}

// Cmp compares a and b coefficient-wise from the highest degree down,
// treating missing coefficients as zero. It returns the sign of the first
// differing position, so polynomials are ordered lexicographically by
// descending degree.
func Cmp[T any](a, b *Poly[T]) int {
	r := a.coeff
	l := max(a.Deg(), b.Deg())
	for i := l; i >= 0; i-- {
		if r.Less(a.At(i), b.At(i)) {
			return -1
		}
		if r.Less(b.At(i), a.At(i)) {
			return +1
		}
	}
	return 0
}

// Equal reports whether p and q have the same coefficients, ignoring
// trailing zeros.
func (p *Poly[T]) Equal(q *Poly[T]) bool { return Cmp(p, q) == 0 }

// Less reports whether p sorts before q under Cmp ordering.
func (p *Poly[T]) Less(q *Poly[T]) bool { return Cmp(p, q) < 0 }

// Eval evaluates p at x by Horner's rule.
func (p *Poly[T]) Eval(x T) T {
	r := p.coeff
	res := r.Zero()
	if len(p.c) == 0 {
		return res
	}
	for i := p.Deg(); i >= 0; i-- {
		res = r.Add(r.Mul(res, x), p.c[i])
	}
	return res
}

// EvalIn evaluates p at a point of a different ring; cast maps coefficients
// of p into that ring.
func EvalIn[T, A any](p *Poly[T], r ring.Ring[A], x A, cast func(T) A) A {
	res := r.Zero()
	if p.Len() == 0 {
		return res
	}
	for i := p.Deg(); i >= 0; i-- {
		res = r.Add(r.Mul(res, x), cast(p.At(i)))
	}
	return res
}

// Derivative returns d/dx p.
func (p *Poly[T]) Derivative() *Poly[T] {
	r := New(p.coeff)
	if len(p.c) == 0 {
		return r
	}
	for i := p.Deg(); i > 0; i-- {
		r.Set(i-1, p.coeff.Mul(p.c[i], p.coeff.FromInt(int64(i))))
	}
	return r
}

// Integral returns the antiderivative of p with zero constant term.
func (p *Poly[T]) Integral() *Poly[T] {
	return p.IntegralWithConst(p.coeff.Zero())
}

// IntegralWithConst returns the antiderivative of p with the given constant
// term. Coefficient i of p is divided by i+1, which must be invertible in
// the ring.
func (p *Poly[T]) IntegralWithConst(c0 T) *Poly[T] {
	r := New(p.coeff, c0)
	if len(p.c) == 0 {
		return r
	}
	for i := p.Deg(); i >= 0; i-- {
		r.Set(i+1, p.coeff.Div(p.c[i], p.coeff.FromInt(int64(i+1))))
	}
	return r
}

// String renders p highest degree first, e.g. "3*x^2 + 1".
func (p *Poly[T]) String() string {
	d := p.Deg()
	if p.IsZero() {
		return fmt.Sprintf("%v", p.coeff.Zero())
	}

	var b strings.Builder
	first := true
	for i := d; i >= 0; i-- {
		ci := p.At(i)
		if p.coeff.Equal(ci, p.coeff.Zero()) {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		if i == 0 {
			fmt.Fprintf(&b, "%v", ci)
		} else if i == 1 {
			fmt.Fprintf(&b, "%v*x", ci)
		} else {
			fmt.Fprintf(&b, "%v*x^%d", ci, i)
		}
	}
	return b.String()
}
