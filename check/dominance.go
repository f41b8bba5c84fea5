// SPDX-License-Identifier: MIT

package check

import (
	"math"

	"github.com/katalvlaran/numcheck/matrix"
)

const opDominance = "Dominance"

// Report is the per-row outcome of a diagonal dominance check on an n×n matrix.
type Report struct {
	// Diag[i] is |A[i,i]|.
	Diag []float64
	// OffDiag[i] is sum_j |A[i,j]| - |A[i,i]|.
	OffDiag []float64
	// Margin[i] is Diag[i] - OffDiag[i]; positive for strictly dominant rows.
	Margin []float64
	// FirstViolation is the first row failing the comparison, or -1.
	FirstViolation int
	// Dominant is true when every row passes. Always true for n == 0.
	Dominant bool
	// Strict records which comparison was applied (> when true, >= otherwise).
	Strict bool
}

// Size returns n, the order of the checked matrix.
func (r Report) Size() int { return len(r.Diag) }

// IsDiagonallyDominant reports whether a is strictly diagonally dominant by rows:
// |A[i,i]| > sum_{j≠i} |A[i,j]| for every row i.
//
// a must be a *matrix.Array, *matrix.Dense or *matrix.CSC. Validation runs in
// order (container kind, two dimensions, square) and any failure returns an
// error matching ErrInvalidInput. A 0×0 matrix is dominant.
func IsDiagonallyDominant(a any, opts ...Option) (bool, error) {
	rep, err := Dominance(a, opts...)
	if err != nil {
		return false, err
	}

	return rep.Dominant, nil
}

// Dominance runs the same validation as IsDiagonallyDominant and returns the
// per-row detail. WithNonStrict switches the comparison to >=.
//
// Rows containing NaN never pass.
//
// Complexity: O(n^2) dense; O(n + nnz) plus the diagonal lookups for CSC.
func Dominance(a any, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	ndim, ok := anyNdim(a)
	if !ok {
		return Report{}, inputErrorf(opDominance, "A", ErrUnsupportedType, "%T", a)
	}
	if ndim != 2 {
		return Report{}, inputErrorf(opDominance, "A", ErrNdim, "ndim %d, want 2", ndim)
	}
	m := asRowOperand(a)
	rows, cols := m.Shape()
	if err := matrix.ValidateSquare(m); err != nil {
		return Report{}, inputErrorf(opDominance, "A", ErrNonSquare, "shape (%d, %d)", rows, cols)
	}

	diag := m.Diagonal()
	sums := m.AbsRowSums()
	rep := Report{
		Diag:           diag,
		OffDiag:        sums,
		Margin:         make([]float64, rows),
		FirstViolation: -1,
		Dominant:       true,
		Strict:         o.strict,
	}

	var pass bool
	for i := 0; i < rows; i++ {
		diag[i] = math.Abs(diag[i])
		sums[i] -= diag[i]
		rep.Margin[i] = diag[i] - sums[i]
		if o.strict {
			pass = diag[i] > sums[i]
		} else {
			pass = diag[i] >= sums[i]
		}
		if !pass && rep.Dominant {
			rep.Dominant = false
			rep.FirstViolation = i
		}
	}

	return rep, nil
}
