// Package matrix_test provides benchmarks for the linear-algebra kernels on
// the small sizes the multigrid generator uses, with deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/multigrid/matrix"
)

// benchSizes are R values seen in practice: planar, spatial and a 4D/5D/8D stress.
var benchSizes = []int{2, 3, 5, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

// benchDense returns an n×n matrix with entries in [-1, 1) plus n on the
// diagonal, which keeps it comfortably non-singular.
func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
		rows[i][i] += float64(n)
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkInverseTol(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.InverseTol(A, 1e-9)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}

func BenchmarkLUPSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 4242)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i) + 0.5
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.LUP(A, 0)
				if err != nil {
					b.Fatal(err)
				}
				x, err := f.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 7)
			x := make([]float64, n)
			for i := range x {
				x[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}
