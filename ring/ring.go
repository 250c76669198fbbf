// Package ring provides the coefficient rings the polynomial engine is
// generic over: machine integers and floats, prime fields with a runtime
// modulus, and complex numbers. A ring instance carries the context that
// element values alone cannot (e.g. the modulus), so constructing an
// element "in the same context" as another is done through the ring.
package ring

// Ring is the contract a coefficient type must satisfy to be usable as a
// polynomial coefficient. All methods are pure: they return new values and
// never mutate their arguments.
//
// Div is required by the inversion and division engines; rings in which
// division is partial (e.g. machine integers) implement the native
// operation and leave it to callers to ensure the divisor is invertible.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt builds an element of this ring from a plain integer.
	FromInt(v int64) T

	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Div(a, b T) T

	Equal(a, b T) bool
	Less(a, b T) bool
}

// RootOfUnityRing is implemented by rings admitting principal roots of
// unity, as required by the Fourier transforms.
type RootOfUnityRing[T any] interface {
	Ring[T]

	// RootOfUnity returns a principal n-th root of unity, i.e. an element
	// w with w^n = 1 and w^k != 1 for 0 < k < n. n must be a power of two.
	RootOfUnity(n int) (T, error)
}

// IsField reports whether every non-zero element of r is known to be
// invertible. Rings advertise this through an optional
// `IsField() bool` method; rings without the method are assumed not to
// be fields.
func IsField[T any](r Ring[T]) bool {
	f, ok := r.(interface{ IsField() bool })
	return ok && f.IsField()
}

// Pow returns base^e by square-and-multiply. e must be non-negative.
func Pow[T any](r Ring[T], base T, e int) T {
	x := r.One()
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			x = r.Mul(x, base)
		}
		base = r.Mul(base, base)
	}
	return x
}
