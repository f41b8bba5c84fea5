// SPDX-License-Identifier: MIT

package check

// DefaultStrict selects strict dominance (|a_ii| > sum_{j≠i} |a_ij|).
const DefaultStrict = true

// Option configures Dominance and IsDiagonallyDominant.
type Option func(*options)

type options struct {
	strict bool
}

func gatherOptions(opts ...Option) options {
	o := options{strict: DefaultStrict}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithNonStrict accepts rows whose diagonal magnitude equals the off-diagonal
// sum (weak dominance, |a_ii| >= sum_{j≠i} |a_ij|).
func WithNonStrict() Option {
	return func(o *options) { o.strict = false }
}
