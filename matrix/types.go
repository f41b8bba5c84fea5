// SPDX-License-Identifier: MIT

// Package matrix: container interface shared by dense and sparse storage.
// This file intentionally contains ONLY the public interface; errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Reader is a read-only two-dimensional view of float64 values.
// Dense and CSC implement it; kernels accept any Reader.
//
// Complexity notes: Rows and Cols are O(1); At is O(1) for Dense and
// O(log nnz(col)) for CSC.
type Reader interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
