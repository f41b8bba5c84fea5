// SPDX-License-Identifier: MIT

// Package check - argument classification.
//
// Accepted container kinds:
//   - dense:  *matrix.Array (any ndim) and *matrix.Dense (always 2-D);
//   - sparse: *matrix.CSC (always 2-D).
//
// Everything else, including plain Go slices and typed nil pointers, is an
// unsupported type.

package check

import (
	"github.com/katalvlaran/numcheck/matrix"
)

// rowOperand is the capability set the dominance check needs. Exactly two
// variants exist: denseOperand and *matrix.CSC.
type rowOperand interface {
	matrix.Reader
	Shape() (rows, cols int)
	Diagonal() []float64
	AbsRowSums() []float64
}

var (
	_ rowOperand = denseOperand{}
	_ rowOperand = (*matrix.CSC)(nil)
)

// denseOperand adapts *matrix.Dense to rowOperand.
type denseOperand struct{ *matrix.Dense }

// Diagonal never fails for a non-nil Dense.
func (d denseOperand) Diagonal() []float64 {
	out, _ := matrix.Diagonal(d.Dense)

	return out
}

// AbsRowSums never fails for a non-nil Dense.
func (d denseOperand) AbsRowSums() []float64 {
	out, _ := matrix.AbsRowSums(d.Dense)

	return out
}

// denseNdim reports the dimension count of a dense-kind argument.
// ok is false for any other kind.
func denseNdim(v any) (ndim int, ok bool) {
	switch t := v.(type) {
	case *matrix.Array:
		if t == nil {
			return 0, false
		}

		return t.Ndim(), true
	case *matrix.Dense:
		if t == nil {
			return 0, false
		}

		return 2, true
	}

	return 0, false
}

// anyNdim extends denseNdim with the sparse kind.
func anyNdim(v any) (ndim int, ok bool) {
	if s, isCSC := v.(*matrix.CSC); isCSC {
		return 2, s != nil
	}

	return denseNdim(v)
}

// asDense returns a 2-D dense-kind argument as *matrix.Dense.
// Callers must have checked denseNdim(v) == 2.
func asDense(v any) *matrix.Dense {
	switch t := v.(type) {
	case *matrix.Dense:
		return t
	case *matrix.Array:
		d, _ := t.AsDense() // Ndim()==2 is guaranteed by the caller

		return d
	}

	return nil
}

// asRowOperand returns a 2-D argument of either kind as a rowOperand.
// Callers must have checked anyNdim(v) == 2.
func asRowOperand(v any) rowOperand {
	if s, ok := v.(*matrix.CSC); ok {
		return s
	}

	return denseOperand{asDense(v)}
}

// asVector returns the values of a 1-D Array.
// Callers must have checked denseNdim(v) == 1, which only *matrix.Array satisfies.
func asVector(v any) []float64 {
	return v.(*matrix.Array).Values()
}
