// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf controls whether constructors reject NaN/±Inf.
//   - dropTol controls which entries CSCFromDense treats as structural zeros.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultDropTolerance is the magnitude at or below which CSCFromDense
	// drops an entry. Zero keeps every non-zero value.
	DefaultDropTolerance = 0.0
)

const panicDropTolInvalid = "matrix: WithDropTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	dropTol        float64 // >= 0; DefaultDropTolerance
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		dropTol:        DefaultDropTolerance,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithValidateNaNInf enables or disables rejection of NaN/±Inf on ingestion.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithNoNaNInfCheck is shorthand for WithValidateNaNInf(false).
func WithNoNaNInfCheck() Option { return WithValidateNaNInf(false) }

// WithDropTolerance sets the magnitude at or below which CSCFromDense drops entries.
// Panics if tol is negative, NaN or ±Inf.
func WithDropTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicDropTolInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}
