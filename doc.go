// SPDX-License-Identifier: MIT

// Package mathcalc is a pure-Go arithmetic toolkit: basic operations,
// exponentiation and a handful of textbook number-theory functions with
// well-defined error conditions.
//
// 🚀 What is mathcalc?
//
//	A stateless, dependency-light library that brings together:
//		• Arithmetic: add, subtract, multiply, divide with int/float promotion
//		• Powers: integer exponentiation by squaring, fractional exponents
//		• Number theory: factorial, primality, Fibonacci (arbitrary precision)
//		• Approximate equality for floating-point results
//
// Everything is organized under:
//
//	calculator/     — Number type, operations, options, sentinel errors
//	cmd/mathcalc/   — command-line front end (text, json and yaml output)
//	examples/       — runnable walkthrough programs
//
//	go get github.com/katalvlaran/mathcalc/calculator
package mathcalc
