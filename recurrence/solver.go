// Package recurrence evaluates linear recurrences with constant
// coefficients at arbitrary indices by exponentiating x modulo the
// characteristic polynomial, so the cost grows with log(n) rather than n.
package recurrence

import (
	"errors"

	"github.com/ishandutta2007/altruct/poly"
)

var errOrderMismatch = errors.New("coefficient and initial term counts must match and be positive")

// Solver evaluates a(n) = c[0]*a(n-1) + c[1]*a(n-2) + ... + c[k-1]*a(n-k)
// given the k coefficients and the initial terms a(0) .. a(k-1).
type Solver[T any] struct {
	pr      *poly.Ring[T]
	initial []T
	charPol *poly.Poly[T]
}

// NewSolver builds a solver over pr for the given recurrence. Division
// never occurs, so any coefficient ring works; speed follows the ring's
// installed multiplier.
func NewSolver[T any](pr *poly.Ring[T], coeffs, initial []T) (*Solver[T], error) {
	if len(coeffs) == 0 || len(coeffs) != len(initial) {
		return nil, errOrderMismatch
	}
	k := len(coeffs)
	rg := pr.Coeff()

	// Characteristic polynomial x^k - c[0]*x^(k-1) - ... - c[k-1].
	ch := poly.New(rg)
	ch.Set(k, rg.One())
	for i := 0; i < k; i++ {
		ch.Set(k-1-i, rg.Neg(coeffs[i]))
	}

	return &Solver[T]{
		pr:      pr,
		initial: append([]T(nil), initial...),
		charPol: ch,
	}, nil
}

// Term returns a(n).
func (s *Solver[T]) Term(n uint64) T {
	k := len(s.initial)
	if n < uint64(k) {
		return s.initial[n]
	}
	rg := s.pr.Coeff()

	// x^n mod charPol by binary exponentiation.
	res := poly.New(rg, rg.One())
	base := poly.New(rg)
	base.Set(1, rg.One())
	for e := n; e > 0; e >>= 1 {
		if e&1 == 1 {
			res = s.pr.Mod(s.pr.Mul(res, base), s.charPol)
		}
		base = s.pr.Mod(s.pr.Mul(base, base), s.charPol)
	}

	// a(n) = sum of res[i] * a(i) over the first k coefficients.
	out := rg.Zero()
	for i := 0; i < k; i++ {
		out = rg.Add(out, rg.Mul(res.At(i), s.initial[i]))
	}
	return out
}

// Terms returns a(0) .. a(count-1) by running the recurrence directly,
// which beats repeated Term calls when consecutive values are wanted.
func (s *Solver[T]) Terms(count int) []T {
	rg := s.pr.Coeff()
	k := len(s.initial)
	out := make([]T, 0, count)
	out = append(out, s.initial...)
	if len(out) > count {
		out = out[:count]
	}
	cs := s.charPol
	for n := len(out); n < count; n++ {
		v := rg.Zero()
		for i := 0; i < k; i++ {
			v = rg.Add(v, rg.Mul(rg.Neg(cs.At(k-1-i)), out[n-1-i]))
		}
		out = append(out, v)
	}
	return out
}
