package multigrid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/multigrid/multigrid"
	"github.com/stretchr/testify/require"
)

func TestCombinationsLexicographic(t *testing.T) {
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, multigrid.Combinations(4, 2))
	require.Equal(t, [][]int{{0, 1, 2}}, multigrid.Combinations(3, 3))
	require.Equal(t, [][]int{{}}, multigrid.Combinations(3, 0))
	require.Nil(t, multigrid.Combinations(2, 3))
	require.Len(t, multigrid.Combinations(5, 2), 10)
	require.Len(t, multigrid.Combinations(7, 3), 35)
}

func TestWindowsCartesianOrder(t *testing.T) {
	require.Equal(t, [][]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}, multigrid.Windows(2, 1))
	require.Equal(t, [][]int{{0, 0, 0}}, multigrid.Windows(3, 0))
	require.Len(t, multigrid.Windows(3, 2), 125)
	require.Nil(t, multigrid.Windows(2, -1))
}

func TestBinomialAndExpectedCells(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{5, 2, 10}, {5, 0, 1}, {5, 5, 1}, {10, 3, 120}, {3, 4, 0}, {4, -1, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, multigrid.Binomial(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
	require.Equal(t, 9, multigrid.ExpectedCells(2, 2, 1))
	require.Equal(t, 90, multigrid.ExpectedCells(5, 2, 1))
	require.Equal(t, 0, multigrid.ExpectedCells(5, 2, -1))
}

func TestCountsSaturate(t *testing.T) {
	n, ok := multigrid.WindowCount(2, 3)
	require.True(t, ok)
	require.Equal(t, 49, n)

	n, ok = multigrid.WindowCount(0, math.MaxInt)
	require.True(t, ok)
	require.Equal(t, 1, n)

	n, ok = multigrid.WindowCount(2, 1518500250)
	require.False(t, ok)
	require.Equal(t, math.MaxInt, n)

	_, ok = multigrid.WindowCount(1, math.MaxInt)
	require.False(t, ok)

	require.Equal(t, math.MaxInt, multigrid.ExpectedCells(2, 2, 1518500250))
	require.Equal(t, math.MaxInt, multigrid.ExpectedCells(200, 100, 0))
	require.Equal(t, math.MaxInt, multigrid.Binomial(200, 100))
	require.Nil(t, multigrid.Windows(2, 1518500250))
}
