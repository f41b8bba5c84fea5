// SPDX-License-Identifier: MIT
// Package check: sentinel error set.
// Every input rejected by IsDiagonallyDominant, Dominance, ResidualNorm or
// Residual is an *InputError matching ErrInvalidInput AND exactly one of the
// cause sentinels below. Callers that only care about "could not evaluate"
// test errors.Is(err, ErrInvalidInput); callers that report reasons test the
// cause or use errors.As to reach the offending argument.

package check

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error taxonomy of this package:
// the operation could not be evaluated for the given arguments.
var ErrInvalidInput = errors.New("check: invalid input")

var (
	// ErrUnsupportedType signals an argument that is not one of the accepted container kinds.
	ErrUnsupportedType = errors.New("check: unsupported container type")

	// ErrNdim signals an argument with the wrong number of dimensions.
	ErrNdim = errors.New("check: wrong number of dimensions")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("check: matrix is not square")

	// ErrShapeMismatch signals operands whose extents are not conformable.
	ErrShapeMismatch = errors.New("check: incompatible shapes")
)

// InputError describes one rejected argument.
type InputError struct {
	Op     string // "Dominance" or "Residual"
	Arg    string // "A", "x" or "b"
	Detail string // offending type, ndim or shape
	Cause  error  // one of the cause sentinels
}

// Error formats as "<op>: <arg>: <detail>: <cause>".
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Arg, e.Detail, e.Cause)
}

// Is reports true for ErrInvalidInput; the cause is reached through Unwrap.
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// Unwrap returns the cause sentinel.
func (e *InputError) Unwrap() error { return e.Cause }

// inputErrorf builds an *InputError with a formatted detail.
func inputErrorf(op, arg string, cause error, format string, args ...any) error {
	return &InputError{Op: op, Arg: arg, Detail: fmt.Sprintf(format, args...), Cause: cause}
}
