package ring

import "golang.org/x/exp/constraints"

// Numeric is the ring of a built-in numeric type: machine integers with
// wrap-around semantics, or floating point. The zero value is ready to use.
type Numeric[T constraints.Integer | constraints.Float] struct{}

// NewNumeric returns the ring of the numeric type T.
func NewNumeric[T constraints.Integer | constraints.Float]() Numeric[T] {
	return Numeric[T]{}
}

func (Numeric[T]) Zero() T            { return 0 }
func (Numeric[T]) One() T             { return 1 }
func (Numeric[T]) FromInt(v int64) T  { return T(v) }
func (Numeric[T]) Add(a, b T) T       { return a + b }
func (Numeric[T]) Sub(a, b T) T       { return a - b }
func (Numeric[T]) Neg(a T) T          { return -a }
func (Numeric[T]) Mul(a, b T) T       { return a * b }
func (Numeric[T]) Div(a, b T) T       { return a / b }
func (Numeric[T]) Equal(a, b T) bool  { return a == b }
func (Numeric[T]) Less(a, b T) bool   { return a < b }

// IsField reports true for floating-point instantiations, where every
// non-zero element is invertible up to rounding.
func (Numeric[T]) IsField() bool {
	var t T
	switch any(t).(type) {
	case float32, float64:
		return true
	}
	return false
}
