package ring

import (
	"errors"
	"math/big"

	latring "github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is the ring of integers modulo a prime below 2^63. The modulus
// is a runtime value, so elements only make sense relative to their field
// instance; the field itself is the context.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("modulus must be prime")
)

const maxBitUsage = 63

// NewPrimeField builds the prime field of the given order. The order is
// checked for primality (exact for 64-bit inputs) and a generator of the
// multiplicative group is precomputed.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	// ProbablyPrime is 100% accurate for 64-bit numbers.
	if !new(big.Int).SetUint64(prime).ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := latring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

// Modulus returns the field order.
func (f *PrimeField) Modulus() uint64 { return f.prime }

// Generator returns a generator of the multiplicative group.
func (f *PrimeField) Generator() uint64 { return f.generator }

// Factors returns the prime factors of Modulus()-1.
func (f *PrimeField) Factors() []uint64 { return f.factors }

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

func (f *PrimeField) IsField() bool { return true }

// FromInt maps a signed integer to its canonical representative in [0, p).
func (f *PrimeField) FromInt(v int64) uint64 {
	m := v % int64(f.prime)
	if m < 0 {
		m += int64(f.prime)
	}
	return uint64(m)
}

// Reduce maps val to its canonical representative in [0, p).
func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	// can't overflow since both are smaller than 2^63
	tmp := a + b
	if tmp >= f.prime {
		tmp -= f.prime
	}
	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}
	return a - b
}

func (f *PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.prime - a
}

// Mul returns a * b (mod p). The full 128-bit product is taken before
// reduction.
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return uint128.From64(a).Mul64(b).Mod64(f.prime)
}

// Div returns a * b^-1 (mod p). b must be non-zero.
func (f *PrimeField) Div(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

// Pow returns base^exp (mod p) by square-and-multiply.
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	x := uint64(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			x = f.Mul(x, base)
		}
		base = f.Mul(base, base)
	}
	return x
}

// Inverse returns e^-1 (mod p) via Fermat's little theorem: e^(p-2).
func (f *PrimeField) Inverse(e uint64) uint64 {
	if e == 0 {
		panic("zero has no inverse")
	}
	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Equal(a, b uint64) bool {
	return a%f.prime == b%f.prime
}

func (f *PrimeField) Less(a, b uint64) bool {
	return a%f.prime < b%f.prime
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNTooSmall     = errors.New("n must be >= 2")
)

// RootOfUnity returns a principal n-th root of unity, g^((p-1)/n).
// It exists exactly when n divides p-1.
func (f *PrimeField) RootOfUnity(n int) (uint64, error) {
	if n < 2 {
		return 0, errNTooSmall
	}
	if !IsPowerOfTwo(uint64(n)) {
		return 0, errNotPowerOfTwo
	}
	if (f.prime-1)%uint64(n) != 0 {
		return 0, errNotDivisible
	}

	// g^x = 1 (mod p) iff (p-1) | x, so w = g^((p-1)/n) has exact order n.
	return f.Pow(f.generator, (f.prime-1)/uint64(n)), nil
}

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && (n&(n-1)) == 0
}
