// SPDX-License-Identifier: MIT

package calculator

// IsPrime reports whether n is prime. Every n < 2 is not prime.
//
// Deterministic trial division by 2, 3 and then 6k±1 up to √n.
// Complexity: O(√n).
func (c *Calculator) IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2, 3
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without overflow.
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
