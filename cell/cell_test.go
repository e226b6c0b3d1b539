package cell_test

import (
	"testing"

	"github.com/katalvlaran/multigrid/basis"
	"github.com/katalvlaran/multigrid/cell"
	"github.com/katalvlaran/multigrid/space"
	"github.com/stretchr/testify/require"
)

const vertTol = 1e-12

func linear(t *testing.T, dirs []space.RealSpace, offsets []float64) *basis.Linear {
	t.Helper()
	b, err := basis.NewLinear(dirs, offsets)
	require.NoError(t, err)

	return b
}

func requireVertices(t *testing.T, want []space.RealSpace, got []space.RealSpace) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, space.Equal(want[i], got[i], vertTol), "vertex %d: want %v got %v", i, want[i], got[i])
	}
}

func TestNumVerticesAndCorners(t *testing.T) {
	for r := 0; r <= 5; r++ {
		require.Equal(t, 1<<r, cell.NumVertices(r))
		require.Len(t, cell.Corners(r), 1<<r)
	}
	require.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, cell.Corners(2))
	require.Equal(t, []int{1, 0, 1}, cell.Corners(3)[5])
	require.Nil(t, cell.Corners(-1))
}

func TestFromIntersectionCubic(t *testing.T) {
	b := linear(t, []space.RealSpace{{1, 0}, {0, 1}}, []float64{0.1, 0.1})

	c, err := cell.FromIntersection(b, space.RealSpace{0.1, 0.1}, []int{0, 1}, []int{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, space.GridSpace{0, 0}, c.Index)
	requireVertices(t, []space.RealSpace{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, c.Vertices)
	require.Equal(t, []int{0, 1}, c.Families)
	require.Equal(t, []int{0, 0}, c.Window)
	require.True(t, space.Equal(space.RealSpace{0.5, 0.5}, c.Center(), vertTol))
}

func TestFromIntersectionWindowOverridesRounding(t *testing.T) {
	b := linear(t, []space.RealSpace{{1, 0}, {0, 1}}, []float64{0, 0})

	// Slightly off the hyperplanes x=1, y=2: plain rounding would give (1, 3).
	c, err := cell.FromIntersection(b, space.RealSpace{0.9999999, 2.0000001}, []int{0, 1}, []int{1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, space.GridSpace{1, 2}, c.Index)
	requireVertices(t, []space.RealSpace{{1, 2}, {2, 2}, {1, 3}, {2, 3}}, c.Vertices)
}

func TestFromIntersectionOverdetermined(t *testing.T) {
	b := linear(t, []space.RealSpace{{1, 0}, {0, 1}, {0.6, 0.8}}, []float64{0.1, 0.1, 0.1})

	c, err := cell.FromIntersection(b, space.RealSpace{0.1, 0.1}, []int{0, 1}, []int{0, 0}, cell.Corners(2))
	require.NoError(t, err)
	// ⌈0.06 + 0.08 − 0.1⌉ = 1 for the unselected third family.
	require.Equal(t, space.GridSpace{0, 0, 1}, c.Index)
	requireVertices(t, []space.RealSpace{{0.6, 0.8}, {1.6, 0.8}, {0.6, 1.8}, {1.6, 1.8}}, c.Vertices)

	// Selecting families 0 and 2: the deltas land in positions 0 and 2 only.
	c, err = cell.FromIntersection(b, space.RealSpace{0.1, 0.1}, []int{0, 2}, []int{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, c.Index[0])
	require.Equal(t, 0, c.Index[2])
	d0, err := space.Add(c.Vertices[0], space.RealSpace{1, 0})
	require.NoError(t, err)
	require.True(t, space.Equal(d0, c.Vertices[1], vertTol))
	d2, err := space.Add(c.Vertices[0], space.RealSpace{0.6, 0.8})
	require.NoError(t, err)
	require.True(t, space.Equal(d2, c.Vertices[2], vertTol))
}

func TestFromIntersectionMismatch(t *testing.T) {
	b := linear(t, []space.RealSpace{{1, 0}, {0, 1}}, []float64{0, 0})

	_, err := cell.FromIntersection(b, space.RealSpace{0}, []int{0, 1}, []int{0, 0}, nil)
	require.ErrorIs(t, err, cell.ErrDimensionMismatch)

	_, err = cell.FromIntersection(b, space.RealSpace{0, 0}, []int{0}, []int{0, 0}, nil)
	require.ErrorIs(t, err, cell.ErrDimensionMismatch)

	_, err = cell.FromIntersection(b, space.RealSpace{0, 0}, []int{0, 5}, []int{0, 0}, nil)
	require.ErrorIs(t, err, cell.ErrDimensionMismatch)

	_, err = cell.FromIntersection(b, space.RealSpace{0, 0}, []int{0, 1}, []int{0, 0}, cell.Corners(3))
	require.ErrorIs(t, err, cell.ErrDimensionMismatch)
}
