// SPDX-License-Identifier: MIT

// Package matrix - Array: dense N-dimensional storage.
//
// Purpose:
//   - Represent dense numeric containers of any dimensionality (scalar, vector,
//     matrix, higher-order) behind a single type, so callers can ask for the
//     dimension count before interpreting the data.
//   - Keep the same row-major layout and numeric policy as Dense.
//
// Complexity quicksheet:
//   - NewArray/NewVector: O(size) copy; Ndim/Len: O(1); Shape: O(ndim); At: O(ndim).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxNewArray = "NewArray"
	ctxArrayAt  = "Array.At"
	ctxAsDense  = "Array.AsDense"
)

// Array is a dense, row-major, N-dimensional float64 container.
// A zero-length shape denotes a scalar holding exactly one value.
type Array struct {
	shape   []int     // extents per axis, each >= 0
	strides []int     // row-major strides, len == len(shape)
	data    []float64 // len == product(shape)
}

// NewArray copies data into an Array of the given shape.
//
// Implementation:
//   - Stage 1: every extent must be >= 0 and product(shape) must equal len(data).
//   - Stage 2: enforce the numeric policy on data.
//   - Stage 3: copy shape and data; compute strides.
//
// Errors:
//   - ErrBadShape (negative extent or size mismatch), ErrNaNInf (default policy).
//
// Complexity:
//   - Time O(size + ndim), Space O(size + ndim).
func NewArray(shape []int, data []float64, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)
	size := 1
	for axis, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("%s: axis %d extent %d: %w", ctxNewArray, axis, n, ErrBadShape)
		}
		size *= n
	}
	if size != len(data) {
		return nil, fmt.Errorf("%s: shape %v holds %d values, got %d: %w",
			ctxNewArray, shape, size, len(data), ErrBadShape)
	}
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: flat index %d: %w", ctxNewArray, k, ErrNaNInf)
			}
		}
	}

	a := &Array{
		shape: append([]int(nil), shape...),
		data:  make([]float64, size),
	}
	copy(a.data, data)
	a.strides = rowMajorStrides(a.shape)

	return a, nil
}

// NewVector builds a 1-D Array from values. Values are copied and not validated,
// so NaN/Inf survive; use NewArray when the finite-only policy matters.
// Complexity: O(n).
func NewVector(values ...float64) *Array {
	data := make([]float64, len(values))
	copy(data, values)

	return &Array{
		shape:   []int{len(values)},
		strides: []int{1},
		data:    data,
	}
}

// NewArrayFromRows builds a 2-D Array from nested rows.
// nil/empty input yields shape (0, 0).
//
// Errors:
//   - ErrRaggedRows, ErrNaNInf (default policy).
func NewArrayFromRows(rows [][]float64, opts ...Option) (*Array, error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxNewArray, i, len(row), c, ErrRaggedRows)
		}
		flat = append(flat, row...)
	}

	return NewArray([]int{r, c}, flat, opts...)
}

// rowMajorStrides returns strides for a row-major layout of shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= shape[axis]
	}

	return strides
}

// Ndim returns the number of axes. Complexity: O(1).
func (a *Array) Ndim() int { return len(a.shape) }

// Shape returns a copy of the extents. Complexity: O(ndim).
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Size returns the total number of stored values. Complexity: O(1).
func (a *Array) Size() int { return len(a.data) }

// Len returns the extent of the first axis (0 for a scalar). Complexity: O(1).
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}

	return a.shape[0]
}

// At returns the value at the given multi-index.
//
// Errors:
//   - ErrDimensionMismatch when len(idx) != Ndim().
//   - ErrOutOfRange when any index is outside its axis.
//
// Complexity: O(ndim).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%s%v: %w", ctxArrayAt, idx, ErrDimensionMismatch)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			return 0, fmt.Errorf("%s%v: %w", ctxArrayAt, idx, ErrOutOfRange)
		}
		off += i * a.strides[axis]
	}

	return a.data[off], nil
}

// Values returns a copy of the flat row-major data. Complexity: O(size).
func (a *Array) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// AsDense copies a 2-D Array into a Dense.
//
// Errors:
//   - ErrDimensionMismatch when Ndim() != 2.
//
// Complexity: O(r*c).
func (a *Array) AsDense() (*Dense, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("%s: ndim %d: %w", ctxAsDense, len(a.shape), ErrDimensionMismatch)
	}
	d, err := newDenseZeroOK(a.shape[0], a.shape[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAsDense, err)
	}
	copy(d.data, a.data)

	return d, nil
}
