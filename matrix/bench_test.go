// Package matrix_test provides benchmarks for the read-only kernels,
// using deterministic random fill for dense and sparse storage.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numcheck/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
)

func BenchmarkAbsRowSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		rows := randSparseRows(n, n, 0.05, int64(n))
		d := MustDense(b, rows)
		s := MustCSC(b, rows)
		for name, m := range map[string]matrix.Reader{"dense": d, "csc": s} {
			m := m
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					v, err := matrix.AbsRowSums(m)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = v
				}
			})
		}
	}
}

func BenchmarkResidualNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		d := MustDense(b, randSparseRows(n, n, 1, 1337))
		x := make([]float64, n)
		rhs := make([]float64, n)
		for i := range x {
			x[i] = float64(i%7) - 3
			rhs[i] = float64(i % 5)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, err := matrix.Residual(d, x, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = matrix.Norm2(r)
			}
		})
	}
}
