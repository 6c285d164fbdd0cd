package calculator_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mathcalc/calculator"
	"github.com/stretchr/testify/assert"
)

// TestErrors_Messages pins the message of each invalid-argument condition
// together with the operation tag added at the call site.
func TestErrors_Messages(t *testing.T) {
	calc := calculator.New()

	_, err := calc.Divide(calculator.Int(5), calculator.Int(0))
	assert.EqualError(t, err, "Divide: calculator: division by zero is not possible")

	_, err = calc.Factorial(-5)
	assert.EqualError(t, err, "Factorial: calculator: factorial of a negative number is not defined")

	_, err = calc.Power(calculator.Int(0), calculator.Int(-2))
	assert.EqualError(t, err, "Power: calculator: zero to a negative power is not defined")

	_, err = calc.Fibonacci(-1)
	assert.EqualError(t, err, "Fibonacci: calculator: Fibonacci number for a negative index is not defined")
}

// TestErrors_SingleKind verifies the four sentinels share one kind but stay
// distinguishable from each other.
func TestErrors_SingleKind(t *testing.T) {
	sentinels := []error{
		calculator.ErrDivisionByZero,
		calculator.ErrNegativeFactorial,
		calculator.ErrZeroNegativePower,
		calculator.ErrNegativeFibonacci,
	}
	for i, a := range sentinels {
		assert.ErrorIs(t, a, calculator.ErrInvalidArgument, "%v", a)
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}

	assert.False(t, errors.Is(calculator.ErrBadInput, calculator.ErrInvalidArgument))
	assert.False(t, errors.Is(calculator.ErrInvalidArgument, calculator.ErrDivisionByZero))
}

// TestErrors_NoSideEffects verifies a failed call leaves later calls intact.
func TestErrors_NoSideEffects(t *testing.T) {
	calc := calculator.New()

	_, err := calc.Divide(calculator.Int(1), calculator.Int(0))
	assert.Error(t, err)

	got, err := calc.Divide(calculator.Int(10), calculator.Int(2))
	assert.NoError(t, err)
	assert.Equal(t, calculator.Int(5), got)
}
