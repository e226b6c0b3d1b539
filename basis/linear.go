// SPDX-License-Identifier: MIT

// Package basis implements the linear (affine family) Basis: I direction
// vectors in R-dimensional space, each with an offset, define I families of
// parallel hyperplanes
//
//	family j = { x ∈ ℝ^R : ⟨x, d_j⟩ − o_j = k },  k ∈ ℤ.
//
// The directions are packed row-wise into an I×R coefficient matrix. A Linear
// basis is immutable once built and safe for concurrent readers.
package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multigrid/matrix"
	"github.com/katalvlaran/multigrid/space"
)

// Method tags for error context.
const (
	methodNewLinear = "NewLinear"
	methodToGrid    = "ToGrid"
	methodToReal    = "ToReal"
	methodSubsystem = "Subsystem"
)

// Linear is an affine multigrid basis.
type Linear struct {
	r, i    int           // real dimension R and family count I
	coef    *matrix.Dense // I×R, row j = direction j
	coefT   *matrix.Dense // R×I, Dᵀ for ToReal
	offsets []float64     // len I
}

var _ space.Basis = (*Linear)(nil)

// NewLinear builds a basis from I directions of length R and I offsets.
//
// Implementation:
//   - Stage 1: validate I ≥ 1, R ≥ 1, I ≥ R, rectangular directions, len(offsets) == I.
//   - Stage 2: reject non-finite values.
//   - Stage 3: copy into the coefficient matrix, its transpose and the offset slice.
//
// Errors:
//   - ErrBadDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(I·R).
func NewLinear(directions []space.RealSpace, offsets []float64) (*Linear, error) {
	if len(directions) == 0 || len(directions[0]) == 0 {
		return nil, fmt.Errorf("%s: no directions or zero real dimension: %w", methodNewLinear, ErrBadDimensions)
	}
	n, r := len(directions), len(directions[0])
	if n < r {
		return nil, fmt.Errorf("%s: %d families < %d real dimensions: %w", methodNewLinear, n, r, ErrBadDimensions)
	}
	if len(offsets) != n {
		return nil, fmt.Errorf("%s: %d offsets for %d directions: %w", methodNewLinear, len(offsets), n, ErrDimensionMismatch)
	}

	rows := make([][]float64, n)
	for j, d := range directions {
		if len(d) != r {
			return nil, fmt.Errorf("%s: direction %d has length %d, want %d: %w", methodNewLinear, j, len(d), r, ErrDimensionMismatch)
		}
		rows[j] = d
	}
	for j, o := range offsets {
		if math.IsNaN(o) || math.IsInf(o, 0) {
			return nil, fmt.Errorf("%s: offset %d: %w", methodNewLinear, j, ErrNaNInf)
		}
	}
	coef, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		// Shape was validated above; the only remaining failure is a non-finite entry.
		return nil, fmt.Errorf("%s: %v: %w", methodNewLinear, err, ErrNaNInf)
	}

	coefT, err := matrix.Transpose(coef)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewLinear, err)
	}

	off := make([]float64, n)
	copy(off, offsets)

	return &Linear{r: r, i: n, coef: coef, coefT: coefT, offsets: off}, nil
}

// RealDims returns R.
func (b *Linear) RealDims() int { return b.r }

// IndexDims returns I.
func (b *Linear) IndexDims() int { return b.i }

// Direction returns a copy of direction j, or nil when j is out of range.
func (b *Linear) Direction(j int) space.RealSpace {
	return space.RealSpace(b.coef.Row(j))
}

// Directions returns copies of all I directions in family order.
func (b *Linear) Directions() []space.RealSpace {
	out := make([]space.RealSpace, b.i)
	for j := range out {
		out[j] = b.Direction(j)
	}

	return out
}

// Offset returns o_j. j must be in [0, I).
func (b *Linear) Offset(j int) float64 { return b.offsets[j] }

// Offsets returns a copy of the offset vector.
func (b *Linear) Offsets() []float64 {
	out := make([]float64, b.i)
	copy(out, b.offsets)

	return out
}

// Coefficients returns a copy of the I×R coefficient matrix.
func (b *Linear) Coefficients() *matrix.Dense {
	return b.coef.Clone().(*matrix.Dense)
}

// ToGrid computes g_j = ⌈⟨p, d_j⟩ − o_j⌉ for every family.
//
// Errors: ErrDimensionMismatch when len(p) != R.
// Complexity: O(I·R).
func (b *Linear) ToGrid(p space.RealSpace) (space.GridSpace, error) {
	if len(p) != b.r {
		return nil, fmt.Errorf("%s: point has %d components, want %d: %w", methodToGrid, len(p), b.r, ErrDimensionMismatch)
	}
	proj, err := matrix.MatVec(b.coef, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToGrid, err)
	}
	g := make(space.GridSpace, b.i)
	for j, v := range proj {
		g[j] = int(math.Ceil(v - b.offsets[j]))
	}

	return g, nil
}

// ToReal maps a lattice point to Σ_j d_j·g_j (= Dᵀ·g).
// Offsets do not enter: lattice points map onto the integer combinations of
// the directions, which is what places tile vertices. Hence for a square
// orthonormal basis ToGrid(ToReal(g))_j = g_j + ⌈−o_j⌉, which is g_j only when
// o_j ∈ [0, 1).
//
// Errors: ErrDimensionMismatch when len(g) != I.
// Complexity: O(I·R).
func (b *Linear) ToReal(g space.GridSpace) (space.RealSpace, error) {
	if len(g) != b.i {
		return nil, fmt.Errorf("%s: index has %d components, want %d: %w", methodToReal, len(g), b.i, ErrDimensionMismatch)
	}
	out, err := matrix.MatVec(b.coefT, g.Float())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodToReal, err)
	}

	return space.RealSpace(out), nil
}

// Subsystem returns the R×R matrix whose rows are the directions of the given
// families, and the matching offsets. len(families) must equal R.
//
// Errors: ErrDimensionMismatch, ErrFamilyOutOfRange.
func (b *Linear) Subsystem(families []int) (*matrix.Dense, []float64, error) {
	if len(families) != b.r {
		return nil, nil, fmt.Errorf("%s: %d families, want %d: %w", methodSubsystem, len(families), b.r, ErrDimensionMismatch)
	}
	off := make([]float64, len(families))
	for i, j := range families {
		if j < 0 || j >= b.i {
			return nil, nil, fmt.Errorf("%s: family %d: %w", methodSubsystem, j, ErrFamilyOutOfRange)
		}
		off[i] = b.offsets[j]
	}
	m, err := matrix.SelectRows(b.coef, families)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSubsystem, err)
	}

	return m, off, nil
}
