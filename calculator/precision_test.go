package calculator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathcalc/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrecision_FloatAddition checks that float sums equal their expected
// values approximately (0.1 + 0.2 is not bitwise 0.3).
func TestPrecision_FloatAddition(t *testing.T) {
	calc := calculator.New()

	cases := []struct {
		a, b, expected float64
	}{
		{0.1, 0.2, 0.3},
		{0.2, 0.3, 0.5},
		{1.5, 2.5, 4.0},
	}
	for _, tc := range cases {
		got := calc.Add(calculator.Float(tc.a), calculator.Float(tc.b))
		assert.True(t, calc.Equal(got, calculator.Float(tc.expected)), "%v + %v = %v", tc.a, tc.b, got)
		assert.InDelta(t, tc.expected, got.Float64(), 1e-12)
	}

	// 0.1 + 0.2 really is inexact.
	sum := calc.Add(calculator.Float(0.1), calculator.Float(0.2))
	assert.NotEqual(t, 0.3, sum.Float64())
}

// TestPrecision_FloatMultiplication checks approximate float products.
func TestPrecision_FloatMultiplication(t *testing.T) {
	calc := calculator.New()

	cases := []struct {
		a, b, expected float64
	}{
		{0.1, 0.1, 0.01},
		{0.2, 0.3, 0.06},
		{1.5, 2.5, 3.75},
	}
	for _, tc := range cases {
		got := calc.Multiply(calculator.Float(tc.a), calculator.Float(tc.b))
		assert.True(t, calc.Equal(got, calculator.Float(tc.expected)), "%v * %v = %v", tc.a, tc.b, got)
	}
}

// TestPrecision_FloatDivision checks 1.0/3.0 against the native quotient.
func TestPrecision_FloatDivision(t *testing.T) {
	calc := calculator.New()

	one, three := 1.0, 3.0
	got, err := calc.Divide(calculator.Float(one), calculator.Float(three))
	require.NoError(t, err)
	assert.InDelta(t, one/three, got.Float64(), 1e-15)
}

// TestBoundary_LargeNumbers checks 1e15 magnitudes stay exact.
func TestBoundary_LargeNumbers(t *testing.T) {
	calc := calculator.New()
	large := calculator.Float(1e15)

	assert.Equal(t, 2e15, calc.Add(large, large).Float64())
	assert.Equal(t, 2e15, calc.Multiply(large, calculator.Int(2)).Float64())
}

// TestBoundary_SmallNumbers checks 1e-15 * 1e-15 with a relative tolerance,
// since any absolute tolerance would swallow a value that small.
func TestBoundary_SmallNumbers(t *testing.T) {
	calc := calculator.New()
	small := calculator.Float(1e-15)

	got := calc.Multiply(small, small)
	assert.InEpsilon(t, 1e-30, got.Float64(), 1e-9)
	assert.True(t, calculator.ApproxEqual(got.Float64(), 1e-30, 1e-9, 0))
}

// TestBoundary_ZeroOperations checks identities with zero.
func TestBoundary_ZeroOperations(t *testing.T) {
	calc := calculator.New()

	assert.Equal(t, calculator.Int(5), calc.Add(calculator.Int(0), calculator.Int(5)))
	assert.Equal(t, calculator.Int(0), calc.Multiply(calculator.Int(0), calculator.Int(5)))

	got, err := calc.Power(calculator.Int(5), calculator.Int(0))
	require.NoError(t, err)
	assert.Equal(t, calculator.Int(1), got)
}

// TestApproxEqual covers the tolerance rule and special values.
func TestApproxEqual(t *testing.T) {
	assert.True(t, calculator.ApproxEqual(1.0, 1.0, 0, 0))
	assert.True(t, calculator.ApproxEqual(1.0+1e-9, 1.0, 1e-6, 0))
	assert.False(t, calculator.ApproxEqual(1.1, 1.0, 1e-6, 1e-12))
	assert.True(t, calculator.ApproxEqual(1e-13, 0, 0, 1e-12))
	assert.True(t, calculator.ApproxEqual(1.05, 1.0, -0.1, 0), "negative tolerance is taken by magnitude")

	nan, inf := math.NaN(), math.Inf(1)
	assert.False(t, calculator.ApproxEqual(nan, nan, 1, 1))
	assert.True(t, calculator.ApproxEqual(inf, inf, 0, 0))
	assert.False(t, calculator.ApproxEqual(inf, -inf, 1, 1))
	assert.False(t, calculator.ApproxEqual(inf, math.MaxFloat64, 1, 1))
}
