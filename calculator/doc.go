// SPDX-License-Identifier: MIT

// Package calculator implements a small, stateless arithmetic toolkit:
// the four basic operations, exponentiation, factorial, a primality test
// and the Fibonacci sequence.
//
// 🚀 What's inside?
//
//   - Add, Subtract, Multiply: never fail; integer overflow promotes to float.
//   - Divide: exact integer quotients stay integers (10/2 = 5).
//   - Power: integer or fractional exponents (4^0.5 = 2).
//   - Factorial, Fibonacci: arbitrary precision via math/big.
//   - IsPrime: deterministic 6k±1 trial division.
//   - Apply: dispatch by operation name ("add", "is_prime", …).
//
// ✨ Numbers:
//
//	Operands are Number values holding either an int64 or a float64, built
//	with Int, Float or ParseNumber. Integer inputs stay integral while the
//	exact result is an integer; anything else becomes a float.
//
// ⚠️ Errors:
//
// Out-of-domain arguments return an invalid-argument error. Four sentinels
// exist, and each one matches ErrInvalidArgument under errors.Is:
//   - ErrDivisionByZero
//   - ErrNegativeFactorial
//   - ErrZeroNegativePower
//   - ErrNegativeFibonacci
//
// ⚙️ Usage:
//
//	calc := calculator.New()
//	q, err := calc.Divide(calculator.Int(1), calculator.Int(4))
//	if errors.Is(err, calculator.ErrInvalidArgument) {
//	  // handle
//	}
//	fmt.Println(q) // 0.25
//
// Floating-point results should be compared with ApproxEqual or
// Calculator.Equal (tolerances set via WithRelTolerance / WithAbsTolerance),
// never with ==.
package calculator
