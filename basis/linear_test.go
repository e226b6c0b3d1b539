package basis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/multigrid/basis"
	"github.com/katalvlaran/multigrid/space"
	"github.com/stretchr/testify/require"
)

func cubic2D(t *testing.T, offset float64) *basis.Linear {
	t.Helper()
	b, err := basis.NewLinear([]space.RealSpace{{1, 0}, {0, 1}}, []float64{offset, offset})
	require.NoError(t, err)

	return b
}

func rotated2D(t *testing.T, angle float64) *basis.Linear {
	t.Helper()
	c, s := math.Cos(angle), math.Sin(angle)
	b, err := basis.NewLinear([]space.RealSpace{{c, s}, {-s, c}}, []float64{0.1, 0.1})
	require.NoError(t, err)

	return b
}

func TestNewLinearValidation(t *testing.T) {
	cases := []struct {
		name    string
		dirs    []space.RealSpace
		offsets []float64
		want    error
	}{
		{"no directions", nil, nil, basis.ErrBadDimensions},
		{"zero real dims", []space.RealSpace{{}}, []float64{0}, basis.ErrBadDimensions},
		{"I < R", []space.RealSpace{{1, 0, 0}}, []float64{0}, basis.ErrBadDimensions},
		{"offset count", []space.RealSpace{{1, 0}, {0, 1}}, []float64{0}, basis.ErrDimensionMismatch},
		{"ragged", []space.RealSpace{{1, 0}, {0}}, []float64{0, 0}, basis.ErrDimensionMismatch},
		{"nan offset", []space.RealSpace{{1, 0}, {0, 1}}, []float64{0, math.NaN()}, basis.ErrNaNInf},
		{"inf direction", []space.RealSpace{{1, 0}, {math.Inf(1), 1}}, []float64{0, 0}, basis.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := basis.NewLinear(tc.dirs, tc.offsets)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLinearAccessorsAreCopies(t *testing.T) {
	dirs := []space.RealSpace{{1, 0}, {0, 1}, {0.6, 0.8}}
	offs := []float64{0.1, 0.2, 0.3}
	b, err := basis.NewLinear(dirs, offs)
	require.NoError(t, err)

	dirs[0][0] = 9
	offs[0] = 9
	require.Equal(t, space.RealSpace{1, 0}, b.Direction(0))
	require.Equal(t, 0.1, b.Offset(0))

	got := b.Offsets()
	got[1] = 9
	require.Equal(t, 0.2, b.Offset(1))

	d := b.Directions()
	d[2][0] = 9
	require.Equal(t, space.RealSpace{0.6, 0.8}, b.Direction(2))

	c := b.Coefficients()
	require.Equal(t, 3, c.Rows())
	require.Equal(t, []float64{0, 1}, c.Row(1))
	c.Row(1)[1] = 9
	require.Equal(t, space.RealSpace{0, 1}, b.Direction(1))

	require.Equal(t, 2, b.RealDims())
	require.Equal(t, 3, b.IndexDims())
}

func TestToGridCeil(t *testing.T) {
	b := cubic2D(t, 0)
	p := space.RealSpace{1.2, 2.3}
	g, err := b.ToGrid(p)
	require.NoError(t, err)
	require.Equal(t, space.GridSpace{2, 3}, g)

	// A point exactly on a hyperplane keeps that hyperplane's index.
	g, err = b.ToGrid(space.RealSpace{1, -2})
	require.NoError(t, err)
	require.Equal(t, space.GridSpace{1, -2}, g)

	_, err = b.ToGrid(space.RealSpace{1})
	require.ErrorIs(t, err, basis.ErrDimensionMismatch)
}

func TestToRealCubicExact(t *testing.T) {
	b := cubic2D(t, 0)
	for _, g := range []space.GridSpace{{1, 2}, {-3, 0}, {0, 0}, {7, -11}} {
		r, err := b.ToReal(g)
		require.NoError(t, err)
		for n := range g {
			require.Equal(t, float64(g[n]), r[n])
		}
	}

	_, err := b.ToReal(space.GridSpace{1, 2, 3})
	require.ErrorIs(t, err, basis.ErrDimensionMismatch)
}

func TestSpaceAdjoint(t *testing.T) {
	bases := map[string]*basis.Linear{
		"cubic 0.1": cubic2D(t, 0.1),
		"cubic 0":   cubic2D(t, 0),
		"rotated":   rotated2D(t, 0.7),
	}
	points := []space.RealSpace{
		{8.37218362178321, 3.232177412894713289},
		{-4.5, 0.25},
		{0, 0},
		{123.456, -78.9},
	}
	for name, b := range bases {
		for _, p := range points {
			g, err := b.ToGrid(p)
			require.NoError(t, err)
			r, err := b.ToReal(g)
			require.NoError(t, err)
			again, err := b.ToGrid(r)
			require.NoError(t, err)
			require.Equal(t, g, again, "%s: %v", name, p)
		}
	}
}

func TestToGridOfToRealOffsetShift(t *testing.T) {
	// ⌈g − o⌉ = g + ⌈−o⌉: only offsets in [0, 1) give the identity.
	cases := []struct {
		name    string
		offsets []float64
		shift   space.GridSpace
	}{
		{"in range", []float64{0, 0.999}, space.GridSpace{0, 0}},
		{"negative", []float64{-0.8, -0.8}, space.GridSpace{1, 1}},
		{"mixed", []float64{-0.8, 1.3}, space.GridSpace{1, -1}},
		{"one", []float64{1, 0.5}, space.GridSpace{-1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := basis.NewLinear([]space.RealSpace{{1, 0}, {0, 1}}, tc.offsets)
			require.NoError(t, err)
			for _, g := range []space.GridSpace{{0, 0}, {3, -2}, {-7, 11}} {
				r, err := b.ToReal(g)
				require.NoError(t, err)
				again, err := b.ToGrid(r)
				require.NoError(t, err)
				require.Equal(t, space.GridSpace{g[0] + tc.shift[0], g[1] + tc.shift[1]}, again, "g=%v", g)
			}
		})
	}
}

func TestSubsystem(t *testing.T) {
	b, err := basis.NewLinear([]space.RealSpace{{1, 0}, {0, 1}, {0.6, 0.8}}, []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)

	m, off, err := b.Subsystem([]int{0, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.3}, off)
	require.Equal(t, []float64{0.6, 0.8}, m.Row(1))

	_, _, err = b.Subsystem([]int{0})
	require.ErrorIs(t, err, basis.ErrDimensionMismatch)
	_, _, err = b.Subsystem([]int{0, 3})
	require.ErrorIs(t, err, basis.ErrFamilyOutOfRange)
}
