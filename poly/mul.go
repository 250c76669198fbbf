package poly

import (
	"github.com/ishandutta2007/altruct/ring"
)

// Multiplier is a pluggable coefficient-level multiplication strategy.
//
// MulCoeffs computes pr = p1 * p2 on raw coefficient ranges; the l values
// are degrees, so a range holds l+1 coefficients. On entry the invariant
// 0 <= l2 <= l1 <= lr <= l1 + l2 holds and every coefficient of pr in
// [0, lr] must be written. pr may alias p1 or p2.
//
// Implementations that need to multiply recursively must go through
// Dispatch rather than calling their own MulCoeffs, since Dispatch
// re-establishes the invariant.
type Multiplier[T any] interface {
	MulCoeffs(pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int)
}

// Dispatch normalizes the operand order and lengths, zero-fills the part of
// pr no product term reaches, and delegates to m. It is the only correct
// entry point for recursive multiplication.
func Dispatch[T any](rg ring.Ring[T], m Multiplier[T], pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int) {
	if l2 > l1 {
		Dispatch(rg, m, pr, lr, p2, l2, p1, l1)
		return
	}
	l1 = min(l1, lr)
	l2 = min(l2, lr)
	zeroRange(rg, pr, l1+l2, lr)
	lr = min(lr, l1+l2)
	m.MulCoeffs(pr, lr, p1, l1, p2, l2)
}

// zeroRange sets pr[lm+1 : lr] inclusive to the ring's zero.
func zeroRange[T any](rg ring.Ring[T], pr []T, lm, lr int) {
	for i := lm + 1; i <= lr; i++ {
		pr[i] = rg.Zero()
	}
}

// addTo accumulates pr[i] += p2[i] for i in [0, l2].
func addTo[T any](rg ring.Ring[T], pr, p2 []T, l2 int) {
	for i := 0; i <= l2; i++ {
		pr[i] = rg.Add(pr[i], p2[i])
	}
}

// subFrom accumulates pr[i] -= p2[i] for i in [0, l2].
func subFrom[T any](rg ring.Ring[T], pr, p2 []T, l2 int) {
	for i := 0; i <= l2; i++ {
		pr[i] = rg.Sub(pr[i], p2[i])
	}
}

// Schoolbook computes pr = p1 * p2 by the quadratic algorithm. It walks the
// result from the highest coefficient down so that pr may alias p1 or p2.
func Schoolbook[T any](rg ring.Ring[T], pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int) {
	for i := lr; i >= 0; i-- {
		r := rg.Zero()
		jmax := min(i, l1)
		jmin := max(0, i-l2)
		for j := jmax; j >= jmin; j-- {
			r = rg.Add(r, rg.Mul(p1[j], p2[i-j]))
		}
		pr[i] = r
	}
}

// Karatsuba computes pr = p1 * p2 by splitting p1 at k = l1/2 + 1. When p2
// is shorter than k the two halves of p1 are multiplied by p2 separately;
// otherwise the classic three-product scheme runs on the half-sized
// operands. Recursive products go through Dispatch with m, so the active
// strategy keeps control of the smaller sizes, and every recursion is
// truncated to the coefficients the caller actually needs. The Dispatch
// invariant 0 <= l2 <= l1 <= lr <= l1 + l2 must hold on entry; pr may alias
// p1 or p2.
func Karatsuba[T any](rg ring.Ring[T], m Multiplier[T], pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int) {
	k := l1/2 + 1 // k > l1 - k >= 0
	switch {
	case l2 == 0:
		for i := lr; i >= 0; i-- {
			pr[i] = rg.Mul(p1[i], p2[0])
		}
	case l2 < k:
		mm := make([]T, lr-k+1)
		Dispatch(rg, m, mm, lr-k, p1[k:], l1-k, p2, l2)
		Dispatch(rg, m, pr, min(lr, l2+k-1), p1, k-1, p2, l2)
		zeroRange(rg, pr, l2+k-1, lr)
		addTo(rg, pr[k:], mm, lr-k)
	default:
		s1 := make([]T, k)
		copy(s1, p1[:k])
		addTo(rg, s1, p1[k:], l1-k)
		s2 := make([]T, k)
		copy(s2, p2[:k])
		addTo(rg, s2, p2[k:], l2-k)
		mmL := min(lr-k, (k-1)+(k-1))
		mm := make([]T, mmL+1)
		Dispatch(rg, m, mm, mmL, s1, k-1, s2, k-1)
		hhL := min(mmL, (l1-k)+(l2-k))
		hh := make([]T, hhL+1)
		Dispatch(rg, m, hh, hhL, p1[k:], l1-k, p2[k:], l2-k)
		Dispatch(rg, m, pr, (k-1)+(k-1), p1, k-1, p2, k-1)
		zeroRange(rg, pr, (k-1)+(k-1), lr)
		subFrom(rg, mm, pr, min(mmL, (k-1)+(k-1)))
		subFrom(rg, mm, hh, hhL)
		addTo(rg, pr[k:], mm, mmL)
		if lr-k-k >= 0 {
			addTo(rg, pr[k+k:], hh, lr-k-k)
		}
	}
}

// DefaultKaratsubaThreshold is the degree of the shorter operand below
// which StandardMultiplier stays with the schoolbook algorithm.
const DefaultKaratsubaThreshold = 48

// StandardMultiplier multiplies with schoolbook below Threshold and
// Karatsuba above it.
type StandardMultiplier[T any] struct {
	rg        ring.Ring[T]
	Threshold int
}

// NewStandardMultiplier builds the default multiplication strategy over rg.
func NewStandardMultiplier[T any](rg ring.Ring[T]) *StandardMultiplier[T] {
	return &StandardMultiplier[T]{rg: rg, Threshold: DefaultKaratsubaThreshold}
}

func (m *StandardMultiplier[T]) MulCoeffs(pr []T, lr int, p1 []T, l1 int, p2 []T, l2 int) {
	if l2 < m.Threshold {
		Schoolbook(m.rg, pr, lr, p1, l1, p2, l2)
	} else {
		Karatsuba(m.rg, m, pr, lr, p1, l1, p2, l2)
	}
}

// Mul returns a * b.
func (r *Ring[T]) Mul(a, b *Poly[T]) *Poly[T] {
	out := New(r.coeff)
	r.MulTo(out, a, b, -1)
	return out
}

// MulTrunc returns a * b mod x^n: the low n coefficients of the product.
func (r *Ring[T]) MulTrunc(a, b *Poly[T], n int) *Poly[T] {
	out := New(r.coeff)
	if n <= 0 {
		out.Resize(0)
		return out
	}
	r.MulTo(out, a, b, n-1)
	return out
}

// MulTo stores a * b into dst, truncated to degree lr; lr < 0 means the
// full product of degree deg(a) + deg(b). dst may alias a or b.
func (r *Ring[T]) MulTo(dst, a, b *Poly[T], lr int) {
	l1, l2 := a.Deg(), b.Deg()
	if lr < 0 {
		lr = l1 + l2
	}
	// Operand views are taken before the resize; a reallocation leaves
	// them pointing at the old backing array, which still holds the
	// operand coefficients.
	p1, p2 := a.c, b.c
	dst.Resize(lr + 1)
	if len(p1) == 0 || len(p2) == 0 {
		zeroRange(r.coeff, dst.c, -1, lr)
		return
	}
	Dispatch(r.coeff, r.mul, dst.c, lr, p1, l1, p2, l2)
}
