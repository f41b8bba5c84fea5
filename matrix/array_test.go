// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the N-dimensional Array.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numcheck/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewArrayShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		shape   []int
		data    []float64
		ndim    int
		wantErr error
	}{
		{"scalar", nil, []float64{7}, 0, nil},
		{"vector", []int{3}, []float64{1, 2, 3}, 1, nil},
		{"matrix", []int{2, 2}, []float64{1, 2, 3, 4}, 2, nil},
		{"cube", []int{2, 1, 2}, []float64{1, 2, 3, 4}, 3, nil},
		{"empty 0x0", []int{0, 0}, nil, 2, nil},
		{"empty 3x0", []int{3, 0}, []float64{}, 2, nil},
		{"negative extent", []int{-1, 2}, nil, 0, matrix.ErrBadShape},
		{"size mismatch", []int{2, 2}, []float64{1, 2, 3}, 0, matrix.ErrBadShape},
		{"scalar without value", []int{}, nil, 0, matrix.ErrBadShape},
		{"NaN", []int{1}, []float64{math.NaN()}, 0, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := matrix.NewArray(tc.shape, tc.data)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.ndim, a.Ndim())
			require.Equal(t, len(tc.data), a.Size())
		})
	}
}

func TestNewArrayPolicyOptOut(t *testing.T) {
	a, err := matrix.NewArray([]int{2}, []float64{math.Inf(1), 1}, matrix.WithNoNaNInfCheck())
	require.NoError(t, err)
	v, err := a.At(0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestArrayAtRowMajor(t *testing.T) {
	a, err := matrix.NewArray([]int{2, 3}, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)

	_, err = a.At(1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestArrayCopies(t *testing.T) {
	data := []float64{1, 2}
	shape := []int{2}
	a, err := matrix.NewArray(shape, data)
	require.NoError(t, err)

	data[0], shape[0] = 100, 9
	require.Equal(t, []int{2}, a.Shape())
	require.Equal(t, []float64{1, 2}, a.Values())

	got := a.Shape()
	got[0] = 5
	require.Equal(t, 2, a.Len())

	vals := a.Values()
	vals[1] = -1
	v, _ := a.At(1)
	require.Equal(t, 2.0, v)
}

func TestNewVector(t *testing.T) {
	v := matrix.NewVector(1, 2, 3)
	require.Equal(t, 1, v.Ndim())
	require.Equal(t, 3, v.Len())
	require.Equal(t, []float64{1, 2, 3}, v.Values())

	empty := matrix.NewVector()
	require.Equal(t, 1, empty.Ndim())
	require.Equal(t, 0, empty.Len())
}

func TestNewArrayFromRows(t *testing.T) {
	a, err := matrix.NewArrayFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, a.Shape())

	empty, err := matrix.NewArrayFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, empty.Shape())

	_, err = matrix.NewArrayFromRows([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestArrayAsDense(t *testing.T) {
	a, err := matrix.NewArrayFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	d, err := a.AsDense()
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", d.String())

	empty, err := matrix.NewArray([]int{0, 0}, nil)
	require.NoError(t, err)
	ed, err := empty.AsDense()
	require.NoError(t, err)
	require.Equal(t, 0, ed.Rows())

	_, err = matrix.NewVector(1, 2).AsDense()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
