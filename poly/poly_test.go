package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishandutta2007/altruct/ring"
)

func TestDegreeAndAccess(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	p := FromInt64s[int64](z, 1, 0, 3)
	a.Equal(2, p.Deg())
	a.Equal(0, p.Lowest())
	a.Equal(int64(3), p.LeadingCoeff())
	a.Equal(int64(0), p.At(1))
	a.Equal(int64(0), p.At(-1))
	a.Equal(int64(0), p.At(100))

	p.Set(5, 7)
	a.Equal(5, p.Deg())
	a.Equal(6, p.Len())

	p.Set(5, 0)
	a.Equal(2, p.Deg())
	p.ShrinkToFit()
	a.Equal(3, p.Len())
}

func TestZeroPolynomialDegreeIsZero(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	p := New[int64](z)
	a.Equal(0, p.Deg())
	a.Equal(0, p.Lowest())
	a.True(p.IsZero())

	trimmed := FromInt64s[int64](z, 0, 0, 0)
	a.Equal(0, trimmed.Deg())
	a.True(trimmed.IsZero())
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	p := FromInt64s[int64](z, 1, 2)
	q := FromInt64s[int64](z, 1, 2, 0, 0)
	a.Equal(0, Cmp(p, q)) // trailing zeros do not matter
	a.True(p.Equal(q))

	r := FromInt64s[int64](z, 2, 2)
	a.Equal(-1, Cmp(p, r))
	a.True(p.Less(r))

	s := FromInt64s[int64](z, 0, 0, 1)
	a.Equal(1, Cmp(s, p)) // higher degree wins
}

func TestIsMonicMonomial(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	a.True(FromInt64s[int64](z, 0, 0, 1).IsMonicMonomial())
	a.True(FromInt64s[int64](z, 1).IsMonicMonomial())
	a.False(FromInt64s[int64](z, 0, 0, 2).IsMonicMonomial())
	a.False(FromInt64s[int64](z, 1, 0, 1).IsMonicMonomial())
}

func TestReverse(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	p := FromInt64s[int64](z, 1, 2, 3)
	a.True(p.Reverse().Equal(FromInt64s[int64](z, 3, 2, 1)))

	// Only the coefficients up to the degree take part.
	q := FromInt64s[int64](z, 1, 2, 0, 0)
	a.True(q.Reverse().Equal(FromInt64s[int64](z, 2, 1)))
}

func TestEval(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	p := FromInt64s[int64](z, 1, -2, 3) // 3x^2 - 2x + 1
	a.Equal(int64(1), p.Eval(0))
	a.Equal(int64(2), p.Eval(1))
	a.Equal(int64(17), p.Eval(-2))

	// Evaluation is a ring homomorphism: (p*q)(x) == p(x)*q(x).
	r := NewRing[int64](z)
	q := FromInt64s[int64](z, 4, 5)
	pq := r.Mul(p, q)
	for x := int64(-3); x <= 3; x++ {
		a.Equal(p.Eval(x)*q.Eval(x), pq.Eval(x))
	}
}

func TestEvalInOtherRing(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()
	f, err := ring.NewPrimeField(157)
	a.NoError(err)

	p := FromInt64s[int64](z, -1, 0, 1) // x^2 - 1
	got := EvalIn[int64, uint64](p, f, 13, func(v int64) uint64 { return f.FromInt(v) })
	a.Equal(uint64((13*13-1)%157), got)
}

func TestDerivativeIntegral(t *testing.T) {
	a := assert.New(t)
	f := ring.NewNumeric[float64]()

	p := New[float64](f, 5, 3, 2) // 2x^2 + 3x + 5
	d := p.Derivative()
	a.True(d.Equal(New[float64](f, 3, 4)))

	back := d.IntegralWithConst(5)
	a.True(back.Equal(p))

	a.True(New[float64](f).Derivative().IsZero())
}

func TestRingAddSubNegScalar(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()
	r := NewRing[int64](z)

	p := r.FromInt64s(1, 2, 3)
	q := r.FromInt64s(4, 5)

	a.True(r.Add(p, q).Equal(r.FromInt64s(5, 7, 3)))
	a.True(r.Sub(p, q).Equal(r.FromInt64s(-3, -3, 3)))
	a.True(r.Neg(p).Equal(r.FromInt64s(-1, -2, -3)))
	a.True(r.MulScalar(p, 2).Equal(r.FromInt64s(2, 4, 6)))
	a.True(r.DivScalar(r.FromInt64s(2, 4, 6), 2).Equal(p))

	// In-place accumulation through the output argument.
	acc := p.Clone()
	r.AddTo(acc, acc, q)
	a.True(acc.Equal(r.FromInt64s(5, 7, 3)))
}

func TestShiftAndTrunc(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()
	r := NewRing[int64](z)

	p := r.FromInt64s(1, 2, 3)
	a.True(r.ShiftLeft(p, 2).Equal(r.FromInt64s(0, 0, 1, 2, 3)))
	a.True(r.ShiftRight(p, 1).Equal(r.FromInt64s(2, 3)))
	a.True(r.ShiftRight(p, 5).IsZero())
	a.True(r.Trunc(p, 2).Equal(r.FromInt64s(1, 2)))
	a.True(r.Trunc(p, 0).IsZero())
}

func TestNestedPolynomialCoefficients(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()
	inner := NewRing[int64](z)
	outer := NewRing[*Poly[int64]](inner.CoefficientRing())

	// (x + y) * (x - y) == x^2 - y^2 with y the outer variable.
	x := inner.FromInt64s(0, 1)
	one := inner.FromInt64s(1)
	sum := outer.New(x, one)            // x + y
	diff := outer.New(x, inner.Neg(one)) // x - y

	got := outer.Mul(sum, diff)
	a.Equal(2, got.Deg())
	a.True(got.At(0).Equal(inner.FromInt64s(0, 0, 1))) // x^2
	a.True(got.At(1).IsZero())
	a.True(got.At(2).Equal(inner.FromInt64s(-1)))
}

func TestString(t *testing.T) {
	a := assert.New(t)
	z := ring.NewNumeric[int64]()

	a.Equal("3*x^2 + -2*x + 1", FromInt64s[int64](z, 1, -2, 3).String())
	a.Equal("0", New[int64](z).String())
	a.Equal("5", FromInt64s[int64](z, 5).String())
}
