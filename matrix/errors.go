// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for nonsensical Option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> structure (ragged rows, column pointers, row indices) -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when a shape has negative extents or does not
	// agree with the length of the backing data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != Cols(), or a 1-D view requested on a 2-D array.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Reader (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy at ingestion.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRaggedRows signals that nested rows passed to a 2-D constructor differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrBadColPtr signals a malformed CSC column pointer array
	// (wrong length, colPtr[0] != 0, decreasing, or colPtr[cols] != nnz).
	ErrBadColPtr = errors.New("matrix: invalid CSC column pointers")

	// ErrBadRowIndex signals a CSC row index outside [0, rows) or not strictly
	// increasing inside its column.
	ErrBadRowIndex = errors.New("matrix: invalid CSC row index")
)
