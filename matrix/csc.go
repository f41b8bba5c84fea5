// SPDX-License-Identifier: MIT

// Package matrix - CSC: compressed sparse column storage.
//
// Layout:
//   - colPtr has cols+1 entries; column j owns values[colPtr[j]:colPtr[j+1]].
//   - rowIdx[k] is the row of values[k]; strictly increasing inside a column.
//   - Only stored entries are kept; every other cell reads as 0.
//
// CSC is read-only once constructed. Constructors copy their inputs.
//
// Complexity quicksheet:
//   - NewCSC: O(cols + nnz) validation; CSCFromDense: O(r*c); At: O(log nnz_col);
//     Diagonal: O(cols * log nnz_col); AbsRowSums: O(rows + nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	ctxNewCSC    = "NewCSC"
	ctxFromDense = "CSCFromDense"
	ctxCSCAt     = "CSC.At"
)

// CSC is a compressed sparse column matrix of float64 values.
type CSC struct {
	r, c   int
	colPtr []int
	rowIdx []int
	values []float64
}

var (
	_ Reader       = (*CSC)(nil)
	_ fmt.Stringer = (*CSC)(nil)
)

// NewCSC validates and copies raw CSC arrays.
//
// Implementation:
//   - Stage 1: rows, cols >= 0 (ErrInvalidDimensions).
//   - Stage 2: len(colPtr) == cols+1, colPtr[0] == 0, colPtr[cols] == len(rowIdx)
//     == len(values), non-decreasing (ErrBadColPtr).
//   - Stage 3: every rowIdx in [0, rows) and strictly increasing per column (ErrBadRowIndex).
//   - Stage 4: numeric policy on values (ErrNaNInf).
//
// Complexity:
//   - Time O(cols + nnz), Space O(cols + nnz).
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []float64, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxNewCSC, rows, cols, ErrInvalidDimensions)
	}
	if len(colPtr) != cols+1 || colPtr[0] != 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewCSC, ErrBadColPtr)
	}
	nnz := colPtr[cols]
	if len(rowIdx) != nnz || len(values) != nnz {
		return nil, fmt.Errorf("%s: colPtr[%d]=%d, rowIdx=%d, values=%d: %w",
			ctxNewCSC, cols, nnz, len(rowIdx), len(values), ErrBadColPtr)
	}

	var j, k int
	for j = 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, fmt.Errorf("%s: column %d: %w", ctxNewCSC, j, ErrBadColPtr)
		}
	}
	for j = 0; j < cols; j++ {
		for k = colPtr[j]; k < colPtr[j+1]; k++ {
			if rowIdx[k] < 0 || rowIdx[k] >= rows {
				return nil, fmt.Errorf("%s: column %d entry %d row %d: %w",
					ctxNewCSC, j, k, rowIdx[k], ErrBadRowIndex)
			}
			if k > colPtr[j] && rowIdx[k] <= rowIdx[k-1] {
				return nil, fmt.Errorf("%s: column %d entry %d not increasing: %w",
					ctxNewCSC, j, k, ErrBadRowIndex)
			}
			if o.validateNaNInf && (math.IsNaN(values[k]) || math.IsInf(values[k], 0)) {
				return nil, fmt.Errorf("%s: column %d entry %d: %w", ctxNewCSC, j, k, ErrNaNInf)
			}
		}
	}

	return &CSC{
		r:      rows,
		c:      cols,
		colPtr: append([]int(nil), colPtr...),
		rowIdx: append([]int(nil), rowIdx...),
		values: append([]float64(nil), values...),
	}, nil
}

// CSCFromDense compresses any Reader column by column, dropping entries with
// |v| <= drop tolerance (see WithDropTolerance; default keeps every non-zero).
//
// Errors:
//   - ErrNilMatrix for nil m; errors from m.At; ErrNaNInf (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(cols + nnz).
func CSCFromDense(m Reader, opts ...Option) (*CSC, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromDense, err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Rows(), m.Cols()
	s := &CSC{r: rows, c: cols, colPtr: make([]int, cols+1)}

	var i, j int
	var v float64
	var err error
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromDense, err)
			}
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%s: (%d,%d): %w", ctxFromDense, i, j, ErrNaNInf)
			}
			if v == 0 || math.Abs(v) <= o.dropTol {
				continue
			}
			s.rowIdx = append(s.rowIdx, i)
			s.values = append(s.values, v)
		}
		s.colPtr[j+1] = len(s.values)
	}

	return s, nil
}

// Rows returns the row count. Complexity: O(1).
func (s *CSC) Rows() int { return s.r }

// Cols returns the column count. Complexity: O(1).
func (s *CSC) Cols() int { return s.c }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (s *CSC) Shape() (rows, cols int) { return s.r, s.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (s *CSC) NNZ() int { return len(s.values) }

// find returns the storage offset of (i, j) or -1 when the cell is not stored.
// Assumes j is in range.
func (s *CSC) find(i, j int) int {
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	k := lo + sort.SearchInts(s.rowIdx[lo:hi], i)
	if k < hi && s.rowIdx[k] == i {
		return k
	}

	return -1
}

// At returns the value at (i, j); unstored cells read as 0.
// Complexity: O(log nnz in column j).
func (s *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxCSCAt, i, j, ErrOutOfRange)
	}
	if k := s.find(i, j); k >= 0 {
		return s.values[k], nil
	}

	return 0, nil
}

// Diagonal returns the main diagonal, length min(rows, cols).
// Complexity: O(min(r,c) * log nnz_col).
func (s *CSC) Diagonal() []float64 {
	n := min(s.r, s.c)
	d := make([]float64, n)
	for j := 0; j < n; j++ {
		if k := s.find(j, j); k >= 0 {
			d[j] = s.values[k]
		}
	}

	return d
}

// AbsRowSums returns sum_j |A[i,j]| for every row i, touching stored entries only.
// Complexity: O(rows + nnz).
func (s *CSC) AbsRowSums() []float64 {
	sums := make([]float64, s.r)
	for k, v := range s.values {
		sums[s.rowIdx[k]] += math.Abs(v)
	}

	return sums
}

// ToDense expands the matrix into a Dense with NaN/Inf validation disabled,
// so every stored value round-trips.
// Complexity: O(r*c + nnz).
func (s *CSC) ToDense() *Dense {
	d, _ := newDenseZeroOK(s.r, s.c) // never fails: r,c >= 0 by construction
	var j, k int
	for j = 0; j < s.c; j++ {
		for k = s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			d.data[s.rowIdx[k]*s.c+j] = s.values[k]
		}
	}

	return d
}

// String lists stored entries as "(i,j)=v", one per line, in column order.
func (s *CSC) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSC %dx%d nnz=%d\n", s.r, s.c, len(s.values))
	var j, k int
	for j = 0; j < s.c; j++ {
		for k = s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			fmt.Fprintf(&sb, "(%d,%d)=%g\n", s.rowIdx[k], j, s.values[k])
		}
	}

	return sb.String()
}
