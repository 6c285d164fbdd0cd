// SPDX-License-Identifier: MIT
// Package calculator: sentinel error set.
// Every domain failure is an invalid-argument error. The four specific
// sentinels below match both themselves and ErrInvalidArgument under
// errors.Is, so callers may test for the kind or for the exact condition.

package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the single error kind for argument values outside
	// an operation's domain.
	ErrInvalidArgument = errors.New("calculator: invalid argument")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero error = &argumentError{msg: "calculator: division by zero is not possible"}

	// ErrNegativeFactorial is returned by Factorial for n < 0.
	ErrNegativeFactorial error = &argumentError{msg: "calculator: factorial of a negative number is not defined"}

	// ErrZeroNegativePower is returned by Power when base == 0 and exponent < 0.
	ErrZeroNegativePower error = &argumentError{msg: "calculator: zero to a negative power is not defined"}

	// ErrNegativeFibonacci is returned by Fibonacci for n < 0.
	ErrNegativeFibonacci error = &argumentError{msg: "calculator: Fibonacci number for a negative index is not defined"}

	// ErrBadInput reports malformed textual input or an unusable call shape
	// (unknown operation, wrong arity, non-integral index).
	ErrBadInput = errors.New("calculator: bad input")
)

// argumentError is an invalid-argument condition with its own message.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

// Is reports ErrInvalidArgument as the kind of every argumentError.
func (e *argumentError) Is(target error) bool { return target == ErrInvalidArgument }

// calculatorErrorf tags err with the failing operation, keeping it matchable
// through errors.Is.
func calculatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
