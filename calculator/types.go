// SPDX-License-Identifier: MIT

package calculator

import (
	"math/big"
	"strconv"
)

// Operation names a calculator operation.
type Operation string

// Supported operations, named as in the original calculator API.
const (
	OpAdd       Operation = "add"
	OpSubtract  Operation = "subtract"
	OpMultiply  Operation = "multiply"
	OpDivide    Operation = "divide"
	OpPower     Operation = "power"
	OpFactorial Operation = "factorial"
	OpIsPrime   Operation = "is_prime"
	OpFibonacci Operation = "fibonacci"
)

// operations lists every Operation in a stable order with its arity.
var operations = []struct {
	op    Operation
	arity int
}{
	{OpAdd, 2},
	{OpSubtract, 2},
	{OpMultiply, 2},
	{OpDivide, 2},
	{OpPower, 2},
	{OpFactorial, 1},
	{OpIsPrime, 1},
	{OpFibonacci, 1},
}

// ResultKind identifies which field of a Result is populated.
type ResultKind int

const (
	// KindNumber marks a Number result (Add, Subtract, Multiply, Divide, Power).
	KindNumber ResultKind = iota
	// KindBigInt marks an arbitrary-precision result (Factorial, Fibonacci).
	KindBigInt
	// KindBool marks a predicate result (IsPrime).
	KindBool
)

// Result is the outcome of Apply.
type Result struct {
	kind ResultKind
	num  Number
	big  *big.Int
	ok   bool
}

// Kind reports which accessor holds the value.
func (r Result) Kind() ResultKind { return r.kind }

// Number returns the value of a KindNumber result.
func (r Result) Number() Number { return r.num }

// BigInt returns the value of a KindBigInt result.
func (r Result) BigInt() *big.Int { return r.big }

// Bool returns the value of a KindBool result.
func (r Result) Bool() bool { return r.ok }

// String renders the value.
func (r Result) String() string {
	switch r.kind {
	case KindBigInt:
		return r.big.String()
	case KindBool:
		return strconv.FormatBool(r.ok)
	default:
		return r.num.String()
	}
}
