// Package matrix_test contains unit tests for the read-only Dense storage
// in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numcheck/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowsCols verifies that Rows(), Cols() and Shape() report the input extents.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtOutOfBounds ensures At() returns ErrOutOfRange on invalid access.
func TestAtOutOfBounds(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestNewDenseFromRows covers copying, the empty matrix and ragged input.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][0] = 99 // input must not be retained
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestNewDenseFromRowsNaNInf checks the default numeric policy and its opt-out.
func TestNewDenseFromRowsNaNInf(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoNaNInfCheck())
	require.NoError(t, err)
	v, err := loose.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
