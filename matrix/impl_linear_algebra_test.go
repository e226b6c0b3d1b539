package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/multigrid/matrix"
	"github.com/stretchr/testify/require"
)

const laTol = 1e-12

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireIdentity asserts that a·b is the identity within laTol.
func requireIdentity(t *testing.T, a, b *matrix.Dense) {
	t.Helper()
	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				x, _ := a.At(i, k)
				y, _ := b.At(k, j)
				sum += x * y
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, sum, laTol, "(%d,%d)", i, j)
		}
	}
}

func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{3, 6}, tr.Row(2))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSelectRows(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}})
	sub, err := matrix.SelectRows(m, []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, sub.Row(0))
	require.Equal(t, []float64{0.5, 0.5}, sub.Row(1))

	_, err = matrix.SelectRows(m, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.SelectRows(m, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestInverse(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}},
		{"zero leading pivot", [][]float64{{0, 1}, {1, 0}}},
		{"rotated", [][]float64{{math.Cos(0.3), math.Sin(0.3)}, {-math.Sin(0.3), math.Cos(0.3)}}},
		{"3x3", [][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}}},
		{"pentagrid pair", [][]float64{{1, 0}, {math.Cos(2 * math.Pi / 5), math.Sin(2 * math.Pi / 5)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustDense(t, tc.rows)
			inv, err := matrix.InverseTol(m, 0)
			require.NoError(t, err)
			requireIdentity(t, m, inv)
		})
	}
}

func TestInverseSingular(t *testing.T) {
	// Duplicate rows: exact zero pivot after elimination.
	_, err := matrix.InverseTol(mustDense(t, [][]float64{{1, 0}, {1, 0}}), 0)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// Antiparallel rows are singular too.
	_, err = matrix.InverseTol(mustDense(t, [][]float64{{1, 2}, {-1, -2}}), 0)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.InverseTol(mustDense(t, [][]float64{{1, 2, 3}}), 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverseTolCatchesNearSingular(t *testing.T) {
	// cos(π) rounding leaves a ~1e-16 residue: exact inverse "succeeds",
	// the tolerance-based one reports singular.
	m := mustDense(t, [][]float64{{1, 0}, {math.Cos(math.Pi), math.Sin(math.Pi)}})

	_, err := matrix.InverseTol(m, 1e-9)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLUPSolve(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	f, err := matrix.LUP(m, 0)
	require.NoError(t, err)

	want := []float64{1, -2, 0.5}
	b, err := matrix.MatVec(m, want)
	require.NoError(t, err)

	x, err := f.Solve(b)
	require.NoError(t, err)
	for i := range want {
		require.InDelta(t, want[i], x[i], laTol)
	}

	_, err = f.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
