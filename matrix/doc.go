// Package matrix offers numeric containers and read-only kernels.
//
// The matrix package provides:
//
//   - Array, a dense N-dimensional container that reports its dimension count.
//   - Dense, a read-only row-major 2-D matrix with O(1) At.
//   - CSC, compressed sparse column storage for large sparse matrices.
//   - Kernels over any Reader: MatVec, Residual, Diagonal, AbsRowSums, plus Norm2
//     on plain vectors.
//
// Constructors copy their inputs and reject NaN/±Inf unless WithNoNaNInfCheck
// is passed. Errors are package sentinels matched with errors.Is.
//
// See package check for the validation operations built on these containers.
package matrix
