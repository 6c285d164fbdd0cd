// SPDX-License-Identifier: MIT

package calculator

import "math"

// ApproxEqual reports whether |a-b| <= atol + rtol*|b|.
// NaN never compares equal; infinities compare equal only to themselves.
// Negative tolerances are treated by absolute value.
func ApproxEqual(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= math.Abs(atol)+math.Abs(rtol)*math.Abs(b)
}
