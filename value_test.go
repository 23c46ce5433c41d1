package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/60-lines-of-python/calculator"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		name string
		v    calculator.Value
		want string
	}{
		{"int", calculator.NewInt(4), "4"},
		{"negint", calculator.NewInt(-4), "-4"},
		{"zero", calculator.NewInt(0), "0"},
		{"wholefloat", calculator.NewFloat(4), "4.0"},
		{"fraction", calculator.NewFloat(0.1), "0.1"},
		{"negfloat", calculator.NewFloat(-2.5), "-2.5"},
		{"exponent", calculator.NewFloat(1e21), "1e+21"},
		{"nan", calculator.NewFloat(math.NaN()), "NaN"},
		{"posinf", calculator.NewFloat(math.Inf(1)), "+Inf"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.String())
		})
	}
}

func TestValuePromotion(t *testing.T) {
	two := calculator.NewInt(2)
	twoF := calculator.NewFloat(2)

	assert.Equal(t, calculator.KindInt, two.Add(two).Kind())
	assert.Equal(t, calculator.KindInt, two.Sub(two).Kind())
	assert.Equal(t, calculator.KindInt, two.Mul(two).Kind())
	assert.Equal(t, calculator.KindInt, two.Neg().Kind())

	assert.Equal(t, calculator.KindFloat, two.Add(twoF).Kind())
	assert.Equal(t, calculator.KindFloat, twoF.Add(two).Kind())
	assert.Equal(t, calculator.KindFloat, twoF.Neg().Kind())

	// Division is float regardless of operand kinds, even when exact.
	q := two.Div(two)
	assert.Equal(t, calculator.KindFloat, q.Kind())
	assert.Equal(t, 1.0, q.Float64())
}

func TestValueIntOverflow(t *testing.T) {
	max := calculator.NewInt(math.MaxInt64)
	min := calculator.NewInt(math.MinInt64)
	one := calculator.NewInt(1)

	cases := []struct {
		name string
		v    calculator.Value
		want float64
	}{
		{"add", max.Add(one), 9.223372036854776e18},
		{"sub", min.Sub(one), -9.223372036854776e18},
		{"mul", max.Mul(calculator.NewInt(2)), 1.8446744073709552e19},
		{"neg", min.Neg(), 9.223372036854776e18},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, calculator.KindFloat, c.v.Kind(), "got %v", c.v)
			assert.InEpsilon(t, c.want, c.v.Float64(), 1e-12)
		})
	}

	// Results that fit stay exact integers, including at the boundaries.
	for _, v := range []calculator.Value{
		max.Sub(one),
		min.Add(one),
		max.Mul(one),
		min.Mul(one),
		max.Neg(),
		max.Add(calculator.NewInt(0)),
	} {
		assert.Equal(t, calculator.KindInt, v.Kind(), "got %v", v)
	}
}

func TestValueDivByZero(t *testing.T) {
	one := calculator.NewInt(1)
	for _, zero := range []calculator.Value{calculator.NewInt(0), calculator.NewFloat(0)} {
		assert.True(t, one.Div(zero).IsNaN())
		assert.True(t, one.Neg().Div(zero).IsNaN())
		assert.True(t, zero.Div(zero).IsNaN())
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, calculator.NewInt(4).Equal(calculator.NewInt(4)))
	assert.False(t, calculator.NewInt(4).Equal(calculator.NewInt(5)))
	// Same number, different kind.
	assert.False(t, calculator.NewInt(4).Equal(calculator.NewFloat(4)))
	nan := calculator.NewFloat(math.NaN())
	assert.False(t, nan.Equal(nan))
}

func TestAsIntPanics(t *testing.T) {
	assert.Panics(t, func() { calculator.NewFloat(1).AsInt() })
	assert.NotPanics(t, func() { calculator.NewInt(1).AsInt() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", calculator.KindInt.String())
	assert.Equal(t, "float", calculator.KindFloat.String())
}
