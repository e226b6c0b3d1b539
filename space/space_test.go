package space_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/multigrid/space"
	"github.com/stretchr/testify/require"
)

func TestVectorHelpers(t *testing.T) {
	a := space.RealSpace{1, 2}
	b := space.RealSpace{3, -1}

	d, err := space.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	s, err := space.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, space.RealSpace{4, 1}, s)
	require.Equal(t, space.RealSpace{1, 2}, a, "Add must not mutate its input")

	require.Equal(t, space.RealSpace{2, 4}, space.Scale(a, 2))
	require.InDelta(t, math.Sqrt(5), a.Norm(), 1e-15)

	_, err = space.Dot(a, space.RealSpace{1})
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
	_, err = space.Add(a, space.RealSpace{1, 2, 3})
	require.ErrorIs(t, err, space.ErrDimensionMismatch)
}

func TestEqual(t *testing.T) {
	require.True(t, space.Equal(space.RealSpace{1, 2}, space.RealSpace{1 + 1e-9, 2}, 1e-6))
	require.False(t, space.Equal(space.RealSpace{1, 2}, space.RealSpace{1.1, 2}, 1e-6))
	require.False(t, space.Equal(space.RealSpace{1}, space.RealSpace{1, 2}, 1))
}

func TestGridSpace(t *testing.T) {
	g := space.GridSpace{3, -4}
	require.Equal(t, []float64{3, -4}, g.Float())
	require.Equal(t, 5.0, g.Norm())

	c := g.Clone()
	c[0] = 0
	require.Equal(t, 3, g[0])
	require.False(t, g.Equal(c))
	require.True(t, g.Equal(space.GridSpace{3, -4}))
	require.Len(t, space.NewGridSpace(5), 5)
	require.Len(t, space.NewRealSpace(2), 2)
}
