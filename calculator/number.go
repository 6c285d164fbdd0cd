// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an integer or floating-point operand.
//
// The zero value is the integer 0. Operations on integer operands stay
// integral while the exact result is an integer that fits int64; anything
// else is promoted to float64.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

// Int returns an integer Number.
func Int(v int64) Number { return Number{i: v} }

// Float returns a floating-point Number.
func Float(v float64) Number { return Number{f: v, isFloat: true} }

// IsInt reports whether n holds an integer.
func (n Number) IsInt() bool { return !n.isFloat }

// Int64 returns n as int64, truncating a float toward zero.
func (n Number) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}

	return n.i
}

// Float64 returns n as float64.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}

	return float64(n.i)
}

// IsZero reports whether n equals zero (either signed float zero included).
func (n Number) IsZero() bool {
	if n.isFloat {
		return n.f == 0
	}

	return n.i == 0
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (n Number) Sign() int {
	v := n.Float64()
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}

	return 0
}

// integral returns n as int64 when it holds an integer value that fits.
func (n Number) integral() (int64, bool) {
	if !n.isFloat {
		return n.i, true
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) || n.f != math.Trunc(n.f) {
		return 0, false
	}
	// 2^63 is exactly representable; anything >= it does not fit.
	if n.f >= math.MaxInt64 || n.f < math.MinInt64 {
		return 0, false
	}

	return int64(n.f), true
}

// String renders integers without a fraction and floats in the shortest
// form that round-trips.
func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}

	return strconv.FormatInt(n.i, 10)
}

// ParseNumber parses an integer literal into an Int and any other numeric
// literal into a Float.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %q is not a number", ErrBadInput, s)
	}

	return Float(f), nil
}
