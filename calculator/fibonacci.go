// SPDX-License-Identifier: MIT

package calculator

import (
	"math/big"
	"math/bits"
)

// Fibonacci returns the n-th Fibonacci number, zero-indexed:
// F(0) = 0, F(1) = 1, F(n) = F(n-1) + F(n-2).
//
// Indices up to the configured threshold are computed by iteration; larger
// indices use fast doubling:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// Errors:
//   - ErrNegativeFibonacci if n < 0.
func (c *Calculator) Fibonacci(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, calculatorErrorf("Fibonacci", ErrNegativeFibonacci)
	}
	if n <= c.Options().fastDoublingN {
		return fibIterative(n), nil
	}

	return fibFastDoubling(uint64(n)), nil
}

// fibIterative walks the sequence n times. O(n) additions.
func fibIterative(n int64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return a
}

// fibFastDoubling scans the bits of n from the most significant one,
// keeping the pair (F(k), F(k+1)). O(log n) big-integer multiplications.
func fibFastDoubling(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1) // F(k), F(k+1) with k = 0
	even, odd, sq := new(big.Int), new(big.Int), new(big.Int)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		even.Lsh(b, 1)
		even.Sub(even, a)
		even.Mul(even, a) // F(2k)

		odd.Mul(a, a)
		sq.Mul(b, b)
		odd.Add(odd, sq) // F(2k+1)

		if (n>>uint(i))&1 == 0 {
			a.Set(even)
			b.Set(odd)
		} else {
			a.Set(odd)
			b.Add(even, odd)
		}
	}

	return a
}
