package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishandutta2007/altruct/poly"
)

func TestGCD(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)

	g := r.Mul(r.FromInt64s(1, 1), r.FromInt64s(2, 1)) // (x+1)(x+2)
	pa := r.Mul(g, r.FromInt64s(3, 1))
	pb := r.Mul(g, r.FromInt64s(4, 1))

	got := r.GCD(pa, pb)
	a.True(got.Equal(g))

	// Coprime inputs reduce to a unit.
	unit := r.GCD(r.FromInt64s(1, 1), r.FromInt64s(2, 1))
	a.Equal(0, unit.Deg())
	a.False(unit.IsZero())
}

func TestPartialExtendedGCDBezout(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)

	pa := randFieldPoly(t, f, "bezout-1", 40)
	pb := randFieldPoly(t, f, "bezout-2", 25)

	g, x, y := r.PartialExtendedGCD(pa, pb, 0)
	lhs := r.Add(r.Mul(x, pa), r.Mul(y, pb))
	a.True(lhs.Equal(g))

	// Stopping early still satisfies the identity, with the remainder
	// degree below the stop degree.
	g, x, y = r.PartialExtendedGCD(pa, pb, 12)
	a.True(g.Deg() < 12)
	lhs = r.Add(r.Mul(x, pa), r.Mul(y, pb))
	a.True(lhs.Equal(g))
}

func TestGCDWithZero(t *testing.T) {
	a := assert.New(t)
	f := testField(t)
	r := poly.NewRing[uint64](f)

	p := r.FromInt64s(3, 1)
	g := r.GCD(p, r.New())
	a.True(g.Equal(p))

	a.True(r.GCD(r.New(), r.New()).IsZero())
}