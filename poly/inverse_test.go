package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishandutta2007/altruct/poly"
	"github.com/ishandutta2007/altruct/ring"
)

func TestInverseSmall(t *testing.T) {
	a := assert.New(t)
	fl := ring.NewNumeric[float64]()
	r := poly.NewRing[float64](fl)

	// 1/(1-x) == 1 + x + x^2 + ... as a power series.
	geom := r.Inverse(r.New(1, -1), 6)
	a.True(geom.Equal(r.New(1, 1, 1, 1, 1, 1)))
}

func TestInverseTruncatedProductIsOne(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)
	one := r.FromInt64s(1)

	for _, n := range []int{1, 2, 3, 17, 64, 100, 257} {
		p := randFieldPoly(t, f, "inverse-input", 120)
		p.Set(0, 1)

		inv := r.Inverse(p, n)
		a.True(r.MulTrunc(p, inv, n).Equal(one), "n=%d", n)
		a.LessOrEqual(inv.Deg(), n-1)
	}
}

func TestInverseNonUnitConstantTerm(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)

	p := randFieldPoly(t, f, "inverse-nonunit", 80)
	p.Set(0, 5)

	inv := r.Inverse(p, 90)
	a.True(r.MulTrunc(p, inv, 90).Equal(r.FromInt64s(1)))
}

func TestInverseZeroConstantTerm(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)

	p := randFieldPoly(t, f, "inverse-zero-c0", 40)
	p.Set(0, 0)

	a.True(r.Inverse(p, 16).IsZero())
	a.True(r.Inverse(r.New(), 16).IsZero())
}
