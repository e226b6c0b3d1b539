// SPDX-License-Identifier: MIT

// Package space defines the two coordinate domains of a multigrid and the
// contract for converting between them.
//
//   - RealSpace: a point of the R-dimensional real space the tiling lives in.
//   - GridSpace: a point of the I-dimensional integer lattice, one component
//     per hyperplane family. Component j is the index, within family j, of the
//     hyperplane the represented point lies on or nearest to.
//
// Both are plain slices with value semantics by convention: every helper in
// this package returns a fresh slice and never mutates its arguments.
package space

import (
	"errors"
	"math"
)

// ErrDimensionMismatch indicates vectors of different lengths were combined,
// or a vector does not match the dimension a Basis expects.
var ErrDimensionMismatch = errors.New("space: dimension mismatch")

// RealSpace is a point in R-dimensional real space.
type RealSpace []float64

// GridSpace is a point of the I-dimensional integer lattice.
type GridSpace []int

// Basis converts between real space and lattice space.
//
// ToGrid is a rounding projection: component j is ⌈⟨p, d_j⟩ − o_j⌉, so a
// point exactly on a hyperplane of family j is attributed to that hyperplane's
// index. ToReal maps a lattice point to Σ_j d_j·g_j. For an orthonormal
// square basis whose offsets all lie in [0, 1), ToGrid(ToReal(g)) == g, so
// ToReal undoes ToGrid up to that rounding. Outside that range component j
// comes back shifted by ⌈−o_j⌉.
type Basis interface {
	// RealDims returns R, the dimension of the real space.
	RealDims() int
	// IndexDims returns I, the number of hyperplane families.
	IndexDims() int
	// ToGrid projects a real point onto the lattice.
	ToGrid(p RealSpace) (GridSpace, error)
	// ToReal maps a lattice point back to real space.
	ToReal(g GridSpace) (RealSpace, error)
}

// NewRealSpace returns the zero vector of dimension n.
func NewRealSpace(n int) RealSpace { return make(RealSpace, n) }

// NewGridSpace returns the lattice origin of dimension n.
func NewGridSpace(n int) GridSpace { return make(GridSpace, n) }

// Clone returns an independent copy of p.
func (p RealSpace) Clone() RealSpace {
	out := make(RealSpace, len(p))
	copy(out, p)

	return out
}

// Dot returns ⟨a, b⟩.
func Dot(a, b RealSpace) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Add returns a + b.
func Add(a, b RealSpace) (RealSpace, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(RealSpace, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Scale returns s·p.
func Scale(p RealSpace, s float64) RealSpace {
	out := make(RealSpace, len(p))
	for i := range p {
		out[i] = p[i] * s
	}

	return out
}

// Norm returns the Euclidean norm of p.
func (p RealSpace) Norm() float64 {
	var sum float64
	for _, v := range p {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Equal reports whether a and b have the same length and all components
// differ by at most tol.
func Equal(a, b RealSpace, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of g.
func (g GridSpace) Clone() GridSpace {
	out := make(GridSpace, len(g))
	copy(out, g)

	return out
}

// Float reinterprets the integer components as float64.
func (g GridSpace) Float() []float64 {
	out := make([]float64, len(g))
	for i, v := range g {
		out[i] = float64(v)
	}

	return out
}

// Norm returns the Euclidean norm of g with components taken as floats.
func (g GridSpace) Norm() float64 {
	var sum float64
	for _, v := range g {
		f := float64(v)
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Equal reports whether g and h are the same lattice point.
func (g GridSpace) Equal(h GridSpace) bool {
	if len(g) != len(h) {
		return false
	}
	for i := range g {
		if g[i] != h[i] {
			return false
		}
	}

	return true
}
