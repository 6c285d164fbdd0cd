// SPDX-License-Identifier: MIT

package calculator

import "math/big"

// Factorial returns n! as an arbitrary-precision integer. 0! = 1.
//
// Errors:
//   - ErrNegativeFactorial if n < 0.
//
// Complexity: O(n) big-integer multiplications.
func (c *Calculator) Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, calculatorErrorf("Factorial", ErrNegativeFactorial)
	}

	// MulRange over an empty range (n < 1) yields 1.
	return new(big.Int).MulRange(1, n), nil
}
