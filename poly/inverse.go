package poly

// Inverse returns the power-series inverse of p truncated to order n: a
// polynomial q with p * q == 1 + O(x^n). The precision doubles each Newton
// step, and each step multiplies only at the precision it is about to gain,
// so the total cost is a constant number of full-size multiplications.
//
// A zero constant term has no series inverse; the zero polynomial is
// returned in that case. A constant term other than one is factored out,
// inverted in the coefficient ring, and folded back in, so over a field any
// unit constant term works.
func (r *Ring[T]) Inverse(p *Poly[T], n int) *Poly[T] {
	rg := r.coeff
	c0 := p.At(0)
	if rg.Equal(c0, rg.Zero()) {
		return New(rg)
	}
	if !rg.Equal(c0, rg.One()) {
		return r.DivScalar(r.Inverse(r.DivScalar(p, c0), n), c0)
	}
	res := New(rg, rg.One())
	t := New(rg)
	for l := 1; l < n*2; l *= 2 {
		m := min(n-1, l)
		k := l/2 + 1
		t.c = append(t.c[:0], p.c[:min(m+1, p.Len())]...)
		r.MulTo(t, t, res, l+1)
		t.c = t.c[k:]
		r.MulTo(t, t, res, l-k)
		for i := m; i >= k; i-- {
			res.Set(i, rg.Neg(t.At(i-k)))
		}
	}
	return res
}
