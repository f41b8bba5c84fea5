// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numcheck/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Reader to hide its concrete type from type assertions,
// forcing kernels onto their At-based fallback path.
type hide struct{ matrix.Reader }

// MustDense builds a *Dense from nested rows or fails the test.
func MustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustCSC compresses rows into a *CSC or fails the test.
func MustCSC(tb testing.TB, rows [][]float64) *matrix.CSC {
	tb.Helper()
	s, err := matrix.CSCFromDense(MustDense(tb, rows))
	require.NoError(tb, err)

	return s
}

// randSparseRows returns an r×c matrix where roughly density of the cells
// are non-zero values in [-1, 1). Deterministic for a given seed.
func randSparseRows(r, c int, density float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = rng.Float64()*2 - 1
			}
		}
	}

	return rows
}
