// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strings"
)

// Operations returns every supported operation in a stable order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	for i, e := range operations {
		out[i] = e.op
	}

	return out
}

// ParseOperation resolves a case-insensitive operation name.
// Hyphens are accepted in place of underscores ("is-prime").
func ParseOperation(name string) (Operation, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, e := range operations {
		if string(e.op) == norm {
			return e.op, nil
		}
	}

	return "", fmt.Errorf("%w: unknown operation %q", ErrBadInput, name)
}

// Arity returns the number of arguments op takes, or 0 for an unknown op.
func (op Operation) Arity() int {
	for _, e := range operations {
		if e.op == op {
			return e.arity
		}
	}

	return 0
}

// Apply evaluates op on args.
//
// Integer-only operations (Factorial, IsPrime, Fibonacci) accept a float
// argument only when it holds an integral value.
//
// Errors:
//   - ErrBadInput for an unknown op, a wrong argument count or a
//     non-integral index.
//   - Any invalid-argument error of the underlying operation.
func (c *Calculator) Apply(op Operation, args ...Number) (Result, error) {
	arity := op.Arity()
	if arity == 0 {
		return Result{}, fmt.Errorf("%w: unknown operation %q", ErrBadInput, op)
	}
	if len(args) != arity {
		return Result{}, calculatorErrorf(string(op),
			fmt.Errorf("%w: want %d argument(s), got %d", ErrBadInput, arity, len(args)))
	}

	switch op {
	case OpAdd:
		return numberResult(c.Add(args[0], args[1]), nil)
	case OpSubtract:
		return numberResult(c.Subtract(args[0], args[1]), nil)
	case OpMultiply:
		return numberResult(c.Multiply(args[0], args[1]), nil)
	case OpDivide:
		return numberResult(c.Divide(args[0], args[1]))
	case OpPower:
		return numberResult(c.Power(args[0], args[1]))
	}

	n, ok := args[0].integral()
	if !ok {
		return Result{}, calculatorErrorf(string(op),
			fmt.Errorf("%w: %s is not an integer", ErrBadInput, args[0]))
	}
	switch op {
	case OpFactorial:
		v, err := c.Factorial(n)
		if err != nil {
			return Result{}, err
		}
		return Result{kind: KindBigInt, big: v}, nil
	case OpFibonacci:
		v, err := c.Fibonacci(n)
		if err != nil {
			return Result{}, err
		}
		return Result{kind: KindBigInt, big: v}, nil
	default: // OpIsPrime
		return Result{kind: KindBool, ok: c.IsPrime(n)}, nil
	}
}

func numberResult(n Number, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return Result{kind: KindNumber, num: n}, nil
}
