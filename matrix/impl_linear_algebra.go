// SPDX-License-Identifier: MIT
// Package matrix provides read-only kernels over any Reader implementation:
// matrix-vector product, residual, Euclidean norm, main diagonal and absolute
// row sums. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches. Operands are never mutated.
//
// Notes:
//   - *Dense and *CSC take fast paths on their storage; other Readers fall
//     back to At with fixed i→j loop order.

package matrix

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opResidual   = "Residual"
	opDiagonal   = "Diagonal"
	opAbsRowSums = "AbsRowSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense reduces each row with the vectorised DotProduct kernel;
// *CSC scatters each stored entry once. Every product is taken, so Inf*0
// propagates as NaN.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c) dense, O(nnz) sparse; Space O(r) for y.
func MatVec(m Reader, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	switch d := m.(type) {
	case *Dense:
		var i, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			y[i] = vecmath.DotProduct(d.data[base:base+d.c], x)
		}

		return y, nil
	case *CSC:
		var j, k int
		for j = 0; j < d.c; j++ {
			for k = d.colPtr[j]; k < d.colPtr[j+1]; k++ {
				y[d.rowIdx[k]] += d.values[k] * x[j]
			}
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns r = m*x - b.
//
// Contract: len(x) == m.Cols(), len(b) == m.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Residual").
// The subtraction is r + (-1)*b via ScaleBlock and AddBlockInPlace; negation is exact.
// Complexity: as MatVec plus O(r).
func Residual(m Reader, x, b []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	r, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	neg := make([]float64, len(b))
	vecmath.ScaleBlock(neg, b, -1)
	vecmath.AddBlockInPlace(r, neg)

	return r, nil
}

// Norm2 returns the Euclidean norm sqrt(v·v). An empty vector has norm 0.
// Complexity: Time O(n), Space O(1).
func Norm2(v []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(v, v))
}

// Diagonal returns the main diagonal of m, length min(rows, cols).
// Complexity: O(min(r,c)) dense; see CSC.Diagonal for sparse.
func Diagonal(m Reader) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	switch d := m.(type) {
	case *Dense:
		n := min(d.r, d.c)
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = d.data[i*d.c+i]
		}

		return out, nil
	case *CSC:
		return d.Diagonal(), nil
	}

	n := min(m.Rows(), m.Cols())
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return out, nil
}

// AbsRowSums returns s where s[i] = sum_j |m[i,j]|.
// Complexity: O(r*c) dense; O(r + nnz) sparse.
func AbsRowSums(m Reader) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbsRowSums, err)
	}
	switch d := m.(type) {
	case *Dense:
		out := make([]float64, d.r)
		var i, j, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			for j = 0; j < d.c; j++ {
				out[i] += math.Abs(d.data[base+j])
			}
		}

		return out, nil
	case *CSC:
		return d.AbsRowSums(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAbsRowSums, err)
			}
			out[i] += math.Abs(v)
		}
	}

	return out, nil
}
