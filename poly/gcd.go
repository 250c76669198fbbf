package poly

// PartialExtendedGCD runs the extended Euclidean algorithm on a and b,
// stopping as soon as the running remainder drops below stopDegree. It
// returns g, x, y with g == x*a + y*b, where g is the first remainder of
// degree below stopDegree. With stopDegree 0 this is the full extended GCD
// (up to a unit factor over a field). Inputs are not mutated.
func (r *Ring[T]) PartialExtendedGCD(a, b *Poly[T], stopDegree int) (g, x, y *Poly[T]) {
	rg := r.coeff
	ra := a.Clone()
	rb := b.Clone()

	// Invariants:
	//   ra = x0*a + y0*b
	//   rb = x1*a + y1*b
	x0 := New(rg, rg.One())
	x1 := New(rg)
	y0 := New(rg)
	y1 := New(rg, rg.One())

	for ra.Deg() >= stopDegree && !ra.IsZero() {
		if rb.IsZero() {
			break
		}

		q, rem := r.QuotRem(ra, rb)
		ra, rb = rb, rem

		// Bezout updates: (x0, x1) = (x1, x0 - q*x1), same for y.
		x0, x1 = x1, r.Sub(x0, r.Mul(q, x1))
		y0, y1 = y1, r.Sub(y0, r.Mul(q, y1))
	}

	return ra, x0, y0
}

// GCD returns a greatest common divisor of a and b, normalized to be monic
// when the leading coefficient is invertible.
func (r *Ring[T]) GCD(a, b *Poly[T]) *Poly[T] {
	g, _, _ := r.PartialExtendedGCD(a, b, 0)
	rg := r.coeff
	lead := g.LeadingCoeff()
	if g.IsZero() || rg.Equal(lead, rg.One()) {
		return g
	}
	inv := rg.Div(rg.One(), lead)
	if rg.Equal(rg.Mul(inv, lead), rg.One()) {
		return r.MulScalar(g, inv)
	}
	return g
}
