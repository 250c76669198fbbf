package poly

import (
	"math"

	"github.com/ishandutta2007/altruct/ring"
)

// quotRem family. The internal routines share a combined layout borrowed
// from in-place long division: on return pr holds the remainder in its low
// deg(p2) coefficients and the quotient in the coefficients from deg(p2)
// upward. When deg(p1) < deg(p2), or p2 is a monic monomial x^k, pr is
// simply a copy of p1, which already has that layout.

// quotRemLong runs schoolbook long division, O((l1-l2) * l2).
func (r *Ring[T]) quotRemLong(pr, p1, p2 *Poly[T]) {
	l1, l2 := p1.Deg(), p2.Deg()
	pr.copyFrom(p1)
	if l1-l2 < 0 || p2.IsMonicMonomial() {
		return
	}
	rg := r.coeff
	lead := p2.At(l2)
	for i := l1; i >= l2; i-- {
		s := rg.Div(pr.At(i), lead)
		pr.Set(i, s)
		if rg.Equal(s, rg.Zero()) {
			continue
		}
		for j := 1; j <= l2; j++ {
			pr.Set(i-j, rg.Sub(pr.At(i-j), rg.Mul(s, p2.At(l2-j))))
		}
	}
}

// quotRemHensel divides through the reversed-operand trick: the quotient of
// the reversals is the reversal of the quotient, and the reversed divisor
// has a unit constant term, so one power-series inversion plus two
// multiplications produce the quotient. Cost is O(M(l1)) for multiplication
// cost M.
func (r *Ring[T]) quotRemHensel(pr, p1, p2 *Poly[T]) {
	l1, l2 := p1.Deg(), p2.Deg()
	lq := l1 - l2
	pr.copyFrom(p1)
	if lq < 0 || p2.IsMonicMonomial() {
		return
	}
	q := New(r.coeff)
	r.MulTo(q, r.Inverse(p2.Reverse(), lq+1), p1.Reverse(), lq)
	for i, j := 0, lq; i < j; i, j = i+1, j-1 {
		q.c[i], q.c[j] = q.c[j], q.c[i]
	}
	r.SubTo(pr, pr, r.Mul(q, p2))
	r.AddTo(pr, pr, r.ShiftLeft(q, l2))
}

// quotRem picks the division algorithm. The Hensel path only pays off when
// both operands are large and the divisor is not much shorter than
// log-scaled dividend length; it also requires the divisor's leading
// coefficient to be invertible, which is probed by a round-trip through the
// ring division when the ring is not a field.
func (r *Ring[T]) quotRem(pr, p1, p2 *Poly[T]) {
	l1, l2 := p1.Deg(), p2.Deg()
	rg := r.coeff
	invertible := ring.IsField(rg)
	if !invertible {
		lead := p2.At(l2)
		invertible = rg.Equal(rg.Mul(rg.Div(rg.One(), lead), lead), rg.One())
	}
	if l1 < r.henselMinDividend || l2 < r.henselMinDivisor ||
		float64(l2) < float64(r.henselLogFactor)*math.Log2(float64(l1)) || !invertible {
		r.quotRemLong(pr, p1, p2)
	} else {
		r.quotRemHensel(pr, p1, p2)
	}
}

// QuotRem returns the quotient and remainder of a divided by b, so that
// a == q*b + rem with deg(rem) < deg(b). The divisor's leading coefficient
// must be invertible unless it divides every intermediate coefficient
// exactly.
func (r *Ring[T]) QuotRem(a, b *Poly[T]) (q, rem *Poly[T]) {
	l1, l2 := a.Deg(), b.Deg()
	lq := l1 - l2
	pr := New(r.coeff)
	r.quotRem(pr, a, b)
	q = New(r.coeff)
	if lq >= 0 {
		q.Resize(lq + 1)
		for i := 0; i <= lq; i++ {
			q.c[i] = pr.At(i + l2)
		}
	}
	rem = pr
	if l2-1 < l1 {
		rem.Resize(l2)
	}
	return q, rem
}

// Div returns the quotient of a divided by b, discarding the remainder.
func (r *Ring[T]) Div(a, b *Poly[T]) *Poly[T] {
	l1, l2 := a.Deg(), b.Deg()
	lr := l1 - l2
	pr := New(r.coeff)
	if lr < 0 {
		pr.Resize(0)
		return pr
	}
	r.quotRem(pr, a, b)
	for i := 0; i <= lr; i++ {
		pr.Set(i, pr.At(i+l2))
	}
	pr.Resize(lr + 1)
	return pr
}

// Mod returns the remainder of a divided by b.
func (r *Ring[T]) Mod(a, b *Poly[T]) *Poly[T] {
	l1, l2 := a.Deg(), b.Deg()
	pr := New(r.coeff)
	r.quotRem(pr, a, b)
	if l2-1 < l1 {
		pr.Resize(l2)
	}
	return pr
}
