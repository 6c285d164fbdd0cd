// SPDX-License-Identifier: MIT

package calculator

import "math"

// Power returns base raised to exponent.
//
// Integer base and non-negative integer exponent produce an integer
// (exponentiation by squaring, promoted to float on overflow). Every other
// combination is computed with math.Pow and returns a float, so fractional
// exponents work: Power(4, 0.5) = 2. Power(x, 0) = 1 for every x.
//
// A negative base with a non-integral exponent has no real result and
// yields NaN.
//
// Errors:
//   - ErrZeroNegativePower if base is zero and exponent is negative.
func (c *Calculator) Power(base, exponent Number) (Number, error) {
	if base.IsZero() && exponent.Sign() < 0 {
		return Number{}, calculatorErrorf("Power", ErrZeroNegativePower)
	}
	if base.IsInt() && exponent.IsInt() && exponent.i >= 0 {
		if p, ok := powInt64(base.i, exponent.i); ok {
			return Int(p), nil
		}
	}

	return Float(math.Pow(base.Float64(), exponent.Float64())), nil
}

// powInt64 computes base^exp for exp >= 0 by repeated squaring and returns
// false on overflow.
func powInt64(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, ok := mulInt64(result, base)
			if !ok {
				return 0, false
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		sq, ok := mulInt64(base, base)
		if !ok {
			return 0, false
		}
		base = sq
	}

	return result, true
}
