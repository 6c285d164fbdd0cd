// SPDX-License-Identifier: MIT

// Package calculator: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies setters in order (last writer wins).

package calculator

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTolerance is the relative tolerance used by Equal.
	DefaultRelTolerance = 1e-6

	// DefaultAbsTolerance is the absolute tolerance used by Equal.
	DefaultAbsTolerance = 1e-12

	// DefaultFastDoublingThreshold is the Fibonacci index above which the
	// fast-doubling method replaces plain iteration.
	DefaultFastDoublingThreshold = 90
)

const (
	panicRelToleranceInvalid = "calculator: WithRelTolerance: rtol must be finite, non-negative"
	panicAbsToleranceInvalid = "calculator: WithAbsTolerance: atol must be finite, non-negative"
	panicThresholdInvalid    = "calculator: WithFastDoublingThreshold: threshold must be non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration of a Calculator.
type Options struct {
	rtol          float64
	atol          float64
	fastDoublingN int64

	resolved bool // set by gatherOptions; false only in a zero Options
}

// RelTolerance returns the configured relative tolerance.
func (o Options) RelTolerance() float64 { return o.rtol }

// AbsTolerance returns the configured absolute tolerance.
func (o Options) AbsTolerance() float64 { return o.atol }

// FastDoublingThreshold returns the configured Fibonacci threshold.
func (o Options) FastDoublingThreshold() int64 { return o.fastDoublingN }

// WithRelTolerance sets the relative tolerance for approximate equality.
// Panics if rtol is NaN, ±Inf or negative.
func WithRelTolerance(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelToleranceInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAbsTolerance sets the absolute tolerance for approximate equality.
// Panics if atol is NaN, ±Inf or negative.
func WithAbsTolerance(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAbsToleranceInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithFastDoublingThreshold sets the index above which Fibonacci switches to
// fast doubling. Zero means fast doubling for every index.
func WithFastDoublingThreshold(n int64) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.fastDoublingN = n }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options { return gatherOptions() }

func gatherOptions(user ...Option) Options {
	o := Options{
		rtol:          DefaultRelTolerance,
		atol:          DefaultAbsTolerance,
		fastDoublingN: DefaultFastDoublingThreshold,
		resolved:      true,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins
		}
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
