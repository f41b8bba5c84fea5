// Package check validates matrices and linear systems.
//
// What & Why:
//
//	Two independent, pure functions:
//
//	  IsDiagonallyDominant(A)   strict row diagonal dominance of a square matrix
//	  ResidualNorm(A, x, b)     Euclidean norm of A·x - b
//
//	Arguments use the containers of package matrix. The dominance check accepts
//	dense (*matrix.Array, *matrix.Dense) and sparse (*matrix.CSC) matrices; the
//	residual accepts dense containers only.
//
// Invalid input:
//
//	When an argument has the wrong container kind, the wrong number of
//	dimensions or an incompatible shape, the functions return a zero value and
//	an error matching ErrInvalidInput. A false verdict and a residual of 0 are
//	therefore never confused with "could not evaluate":
//
//	  ok, err := check.IsDiagonallyDominant(A)
//	  if errors.Is(err, check.ErrInvalidInput) { ... }
//
// Concurrency:
//
//	No state is shared between calls; inputs are read, never mutated or retained.
//	All functions are safe for concurrent use.
package check
