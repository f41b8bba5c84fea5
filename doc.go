// Package numcheck validates matrices and linear systems.
//
// What's inside:
//
//	check/          : IsDiagonallyDominant, Dominance, ResidualNorm, Residual
//	matrix/         : Array (N-D dense), Dense (2-D row-major), CSC (sparse) + kernels
//	cmd/numcheck/   : CLI reading a JSON problem file
//
// Quick example:
//
//	A, _ := matrix.NewArrayFromRows([][]float64{{3, -1}, {-1, 3}})
//	ok, err := check.IsDiagonallyDominant(A) // true, nil
//
//	x, b := matrix.NewVector(1, 1), matrix.NewVector(2, 2)
//	r, err := check.ResidualNorm(A, x, b)    // 0, nil
//
// Invalid arguments (wrong container kind, dimension count or shape) are
// reported as errors matching check.ErrInvalidInput, never as panics.
//
//	go get github.com/katalvlaran/numcheck
package numcheck
