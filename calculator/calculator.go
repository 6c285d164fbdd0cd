// SPDX-License-Identifier: MIT

package calculator

// Calculator is a stateless collection of numeric operations.
// It is immutable after New and safe for concurrent use. The zero value
// behaves like New() with no options.
type Calculator struct {
	opts Options
}

// New returns a Calculator configured by opts.
func New(opts ...Option) *Calculator {
	return &Calculator{opts: gatherOptions(opts...)}
}

// Options returns the effective configuration.
func (c *Calculator) Options() Options {
	if !c.opts.resolved {
		return DefaultOptions()
	}

	return c.opts
}

// Equal compares two numbers. Integer pairs compare exactly; any pair with a
// float operand uses the configured tolerances.
func (c *Calculator) Equal(a, b Number) bool {
	if a.IsInt() && b.IsInt() {
		return a.i == b.i
	}

	o := c.Options()

	return ApproxEqual(a.Float64(), b.Float64(), o.rtol, o.atol)
}
