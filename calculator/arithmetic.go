// SPDX-License-Identifier: MIT

package calculator

import "math"

// Add returns a + b. Integer overflow promotes the result to float.
func (c *Calculator) Add(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		if s, ok := addInt64(a.i, b.i); ok {
			return Int(s)
		}
	}

	return Float(a.Float64() + b.Float64())
}

// Subtract returns a - b. Integer overflow promotes the result to float.
func (c *Calculator) Subtract(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		if d, ok := subInt64(a.i, b.i); ok {
			return Int(d)
		}
	}

	return Float(a.Float64() - b.Float64())
}

// Multiply returns a * b. Integer overflow promotes the result to float.
func (c *Calculator) Multiply(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		if p, ok := mulInt64(a.i, b.i); ok {
			return Int(p)
		}
	}

	return Float(a.Float64() * b.Float64())
}

// Divide returns a / b.
//
// The quotient of two integers is an integer when the division is exact
// (10/2 = 5) and a float otherwise (1/4 = 0.25).
//
// Errors:
//   - ErrDivisionByZero if b is zero (integer 0, +0.0 or -0.0).
func (c *Calculator) Divide(a, b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, calculatorErrorf("Divide", ErrDivisionByZero)
	}
	if a.IsInt() && b.IsInt() {
		// MinInt64 / -1 does not fit; fall through to float.
		if !(a.i == math.MinInt64 && b.i == -1) && a.i%b.i == 0 {
			return Int(a.i / b.i), nil
		}
	}

	return Float(a.Float64() / b.Float64()), nil
}

// addInt64 returns a+b and false if the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	// Overflow iff both operands share a sign the sum does not.
	if (a^s)&(b^s) < 0 {
		return 0, false
	}

	return s, true
}

// subInt64 returns a-b and false if the difference overflows.
func subInt64(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) < 0 {
		return 0, false
	}

	return d, true
}

// mulInt64 returns a*b and false if the product overflows.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
