// SPDX-License-Identifier: MIT

package check

import (
	"github.com/katalvlaran/numcheck/matrix"
)

const opResidual = "Residual"

// ResidualNorm returns ||A·x - b||_2.
//
// A must be a 2-D dense container (*matrix.Dense or a 2-D *matrix.Array);
// x and b must be 1-D *matrix.Array values with len(x) == cols(A) and
// len(b) == rows(A). Sparse matrices are rejected. Validation runs in order
// (container kinds, dimensions, shapes) and any failure returns an error
// matching ErrInvalidInput.
func ResidualNorm(a, x, b any) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}

	return matrix.Norm2(r), nil
}

// Residual returns the residual vector A·x - b under the same validation as ResidualNorm.
func Residual(a, x, b any) ([]float64, error) {
	args := [...]struct {
		name string
		v    any
		ndim int
	}{
		{"A", a, 2},
		{"x", x, 1},
		{"b", b, 1},
	}

	for _, arg := range args {
		if _, ok := denseNdim(arg.v); !ok {
			return nil, inputErrorf(opResidual, arg.name, ErrUnsupportedType, "%T", arg.v)
		}
	}
	for _, arg := range args {
		if nd, _ := denseNdim(arg.v); nd != arg.ndim {
			return nil, inputErrorf(opResidual, arg.name, ErrNdim, "ndim %d, want %d", nd, arg.ndim)
		}
	}

	m := asDense(a)
	xv, bv := asVector(x), asVector(b)
	if m.Rows() != len(bv) {
		return nil, inputErrorf(opResidual, "b", ErrShapeMismatch,
			"len %d, A has %d rows", len(bv), m.Rows())
	}
	if m.Cols() != len(xv) {
		return nil, inputErrorf(opResidual, "x", ErrShapeMismatch,
			"len %d, A has %d columns", len(xv), m.Cols())
	}

	// Shapes are conformable, so the kernel cannot fail.
	r, err := matrix.Residual(m, xv, bv)
	if err != nil {
		return nil, err
	}

	return r, nil
}
