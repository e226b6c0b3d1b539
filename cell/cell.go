// SPDX-License-Identifier: MIT

// Package cell builds the tiles of a dual multigrid tiling.
//
// A Cell is the dual of one intersection of R hyperplane families: a
// parallelotope with 2^R vertices spanned by the R selected directions,
// anchored at the lattice point of the intersection.
//
// Vertex order is the hypercube corner bit-enumeration: vertex i is reached
// from the anchor by adding direction families[k] for every bit k set in i.
// For R = 2 this is (0,0), (1,0), (0,1), (1,1) in the local frame; writers
// rely on this order being stable.
package cell

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/multigrid/space"
)

// ErrDimensionMismatch indicates the intersection, families, window or
// corner table do not agree with each other or with the basis dimensions.
var ErrDimensionMismatch = errors.New("cell: dimension mismatch")

// maxRealDims bounds R so that 2^R fits comfortably in an int.
const maxRealDims = 30

// Cell is one tile: 2^R vertices in real space plus its lattice index.
type Cell struct {
	// Vertices in hypercube corner bit order; len == NumVertices(R).
	Vertices []space.RealSpace
	// Index is the lattice point of the anchor vertex; len == I.
	Index space.GridSpace
	// Families are the R families whose intersection produced the cell, ascending.
	Families []int
	// Window holds the hyperplane index within each selected family; Index[Families[k]] == Window[k].
	Window []int
}

// NumVertices returns 2^r, the vertex count of an r-dimensional cell.
func NumVertices(r int) int { return 1 << uint(r) }

// Corners returns the 2^r corner offsets of the unit r-cube: corner i has a 1
// in position k iff bit k of i is set. Build once per generation and share.
func Corners(r int) [][]int {
	if r < 0 || r > maxRealDims {
		return nil
	}
	n := NumVertices(r)
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		c := make([]int, r)
		for k := 0; k < r; k++ {
			c[k] = (i >> uint(k)) & 1
		}
		out[i] = c
	}

	return out
}

// FromIntersection builds the cell dual to the intersection of the given
// families at the given window indices.
//
// Implementation:
//   - Stage 1: project the intersection to the lattice, then overwrite the
//     components of the selected families with the exact window indices. A
//     point lying exactly on those hyperplanes may evaluate to either side in
//     floating point; the window is the ground truth.
//   - Stage 2: for every corner, scatter its R deltas into the selected
//     families, add to the anchor index and map back to real space.
//
// corners may be nil, in which case Corners(R) is built on the fly.
//
// Errors: ErrDimensionMismatch; errors from the basis conversions.
// Complexity: O(2^R · I · R).
func FromIntersection(b space.Basis, intersection space.RealSpace, families, window []int, corners [][]int) (Cell, error) {
	r, n := b.RealDims(), b.IndexDims()
	if len(intersection) != r || len(families) != r || len(window) != r {
		return Cell{}, fmt.Errorf("FromIntersection: R=%d, intersection=%d families=%d window=%d: %w",
			r, len(intersection), len(families), len(window), ErrDimensionMismatch)
	}
	if corners == nil {
		corners = Corners(r)
	}
	if len(corners) != NumVertices(r) {
		return Cell{}, fmt.Errorf("FromIntersection: %d corners for R=%d: %w", len(corners), r, ErrDimensionMismatch)
	}

	anchor, err := b.ToGrid(intersection)
	if err != nil {
		return Cell{}, fmt.Errorf("FromIntersection: %w", err)
	}
	for k, j := range families {
		if j < 0 || j >= n {
			return Cell{}, fmt.Errorf("FromIntersection: family %d outside [0,%d): %w", j, n, ErrDimensionMismatch)
		}
		anchor[j] = window[k]
	}

	verts := make([]space.RealSpace, len(corners))
	idx := make(space.GridSpace, n)
	for i, c := range corners {
		copy(idx, anchor)
		for k, j := range families {
			idx[j] += c[k]
		}
		if verts[i], err = b.ToReal(idx); err != nil {
			return Cell{}, fmt.Errorf("FromIntersection: corner %d: %w", i, err)
		}
	}

	fam := make([]int, r)
	copy(fam, families)
	win := make([]int, r)
	copy(win, window)

	return Cell{Vertices: verts, Index: anchor, Families: fam, Window: win}, nil
}

// Center returns the centroid of the cell's vertices.
func (c Cell) Center() space.RealSpace {
	if len(c.Vertices) == 0 {
		return nil
	}
	out := make(space.RealSpace, len(c.Vertices[0]))
	for _, v := range c.Vertices {
		for k := range out {
			out[k] += v[k]
		}
	}
	inv := 1 / float64(len(c.Vertices))
	for k := range out {
		out[k] *= inv
	}

	return out
}
