package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Kind distinguishes the two numeric representations a Value can hold.
type Kind int

const (
	// KindInt is an exact 64-bit integer.
	KindInt Kind = iota
	// KindFloat is a 64-bit floating-point number, including NaN.
	KindFloat
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is a number produced by evaluating an expression. It is either an
// integer or a float; operations on two integers stay integers, except
// division, which always produces a float. The zero Value is the integer 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// NewInt creates an integer value.
func NewInt(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// NewFloat creates a float value.
func NewFloat(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer value. Panics if the value is not an integer.
func (v Value) AsInt() int64 {
	if v.kind != KindInt {
		panic("calculator: AsInt called on " + v.kind.String() + " value")
	}
	return v.i
}

// Float64 returns the value as a float64, converting integers.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// IsNaN reports whether the value is the not-a-number sentinel produced by
// dividing by zero.
func (v Value) IsNaN() bool {
	return v.kind == KindFloat && math.IsNaN(v.f)
}

// isZero reports whether the value is exactly zero in either representation.
func (v Value) isZero() bool {
	if v.kind == KindInt {
		return v.i == 0
	}
	return v.f == 0
}

// Add returns v + w. An integer result that does not fit in 64 bits
// promotes to the float representation.
func (v Value) Add(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		if s, ok := addInt(v.i, w.i); ok {
			return NewInt(s)
		}
		return NewFloat(float64(v.i) + float64(w.i))
	}
	return NewFloat(v.Float64() + w.Float64())
}

// Sub returns v - w, promoting to float on integer overflow.
func (v Value) Sub(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		if s, ok := subInt(v.i, w.i); ok {
			return NewInt(s)
		}
		return NewFloat(float64(v.i) - float64(w.i))
	}
	return NewFloat(v.Float64() - w.Float64())
}

// Mul returns v * w, promoting to float on integer overflow.
func (v Value) Mul(w Value) Value {
	if v.kind == KindInt && w.kind == KindInt {
		if p, ok := mulInt(v.i, w.i); ok {
			return NewInt(p)
		}
		return NewFloat(float64(v.i) * float64(w.i))
	}
	return NewFloat(v.Float64() * w.Float64())
}

// addInt returns a + b and whether the sum fits in 64 bits.
func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// subInt returns a - b and whether the difference fits in 64 bits.
func subInt(a, b int64) (int64, bool) {
	s := a - b
	if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// mulInt returns a * b and whether the product fits in 64 bits.
func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// The quotient check below would itself overflow on MinInt64, so
		// only multiplication by 1 survives here.
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// Div returns v / w. The result is always a float. If w is zero, the result
// is NaN regardless of the sign or kind of v.
func (v Value) Div(w Value) Value {
	if w.isZero() {
		return NewFloat(math.NaN())
	}
	return NewFloat(v.Float64() / w.Float64())
}

// Neg returns -v, keeping the kind. Negating the one integer with no
// 64-bit negation promotes to float.
func (v Value) Neg() Value {
	if v.kind == KindInt {
		if v.i == math.MinInt64 {
			return NewFloat(-float64(v.i))
		}
		return NewInt(-v.i)
	}
	return NewFloat(-v.f)
}

// Equal reports whether v and w have the same kind and the same numeric
// value. NaN is unequal to everything, including itself.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	if v.kind == KindInt {
		return v.i == w.i
	}
	return v.f == w.f
}

// String formats the value so that the int/float distinction survives:
// integers have no decimal point, finite floats always carry one or an
// exponent, and the division-by-zero sentinel renders as "NaN".
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	if math.IsNaN(v.f) {
		return "NaN"
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	if !math.IsInf(v.f, 0) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
