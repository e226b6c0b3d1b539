// SPDX-License-Identifier: MIT
// Package: multigrid/builder
//
// api.go: public basis presets.
//
// Every preset follows the same flow:
//   Stage 1 (Validate): check the numeric parameter against its minimum.
//   Stage 2 (Directions): build the I direction vectors deterministically.
//   Stage 3 (Offsets): resolve offsets from options (see config.go).
//   Stage 4 (Construct): hand both to basis.NewLinear, which re-validates.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multigrid/basis"
	"github.com/katalvlaran/multigrid/space"
)

// Cubic returns the d-dimensional cubic basis: I = R = d, the standard
// orthonormal directions, and offsets DefaultCubicOffset unless overridden.
//
// Errors: ErrTooFewFamilies if d < 1; ErrBadSize for mismatched WithOffsets.
// Complexity: O(d²).
func Cubic(d int, opts ...BuilderOption) (*basis.Linear, error) {
	if d < MinCubicDims {
		return nil, builderErrorf(MethodCubic, fmt.Sprintf("d=%d", d), ErrTooFewFamilies)
	}
	dirs := make([]space.RealSpace, d)
	for j := range dirs {
		dirs[j] = space.NewRealSpace(d)
		dirs[j][j] = 1
	}
	cfg := newBuilderConfig(opts...)
	offsets, err := cfg.resolveOffsets(MethodCubic, d, func(n int) []float64 {
		return uniformOffsets(n, DefaultCubicOffset)
	})
	if err != nil {
		return nil, err
	}

	return construct(MethodCubic, dirs, offsets)
}

// Cubic2D is Cubic(2).
func Cubic2D(opts ...BuilderOption) (*basis.Linear, error) {
	return Cubic(2, opts...)
}

// RotSymFamilies reports how many families RotSym(s) produces:
// s for odd s, s/2 for even s (antipodal directions describe the same family).
func RotSymFamilies(s int) int {
	if s%2 == 0 {
		return s / 2
	}

	return s
}

// RotSym returns the planar basis with s-fold rotational symmetry.
// Direction j is (cos(2πj/s), sin(2πj/s)) for j in [0, RotSymFamilies(s)).
// Default offsets are uniform 1/s.
//
// Errors: ErrTooFewFamilies if s < 3; ErrBadSize for mismatched WithOffsets;
// ErrNeedRandSource for WithRandomOffsets without an rng.
// Complexity: O(s).
func RotSym(s int, opts ...BuilderOption) (*basis.Linear, error) {
	if s < MinRotSymOrder {
		return nil, builderErrorf(MethodRotSym, fmt.Sprintf("s=%d", s), ErrTooFewFamilies)
	}
	dirs := rotSymDirections(s)
	cfg := newBuilderConfig(opts...)
	offsets, err := cfg.resolveOffsets(MethodRotSym, len(dirs), func(n int) []float64 {
		return uniformOffsets(n, 1/float64(s))
	})
	if err != nil {
		return nil, err
	}

	return construct(MethodRotSym, dirs, offsets)
}

// Penrose returns the classic pentagrid: RotSym(5) directions with offsets
// passed through PenroseConstraint. Without offset options the offsets are
// [0.2, 0.2, 0.2, 0.2, -0.8]. Random and uniform offsets are drawn first and
// constrained afterwards, so the result always sums to zero.
func Penrose(opts ...BuilderOption) (*basis.Linear, error) {
	dirs := rotSymDirections(PenroseSymmetry)
	cfg := newBuilderConfig(opts...)
	offsets, err := cfg.resolveOffsets(MethodPenrose, len(dirs), func(n int) []float64 {
		out := make([]float64, n)
		copy(out, defaultPenroseOffsets)
		return out
	})
	if err != nil {
		return nil, err
	}
	if offsets, err = PenroseConstraint(offsets); err != nil {
		return nil, builderErrorf(MethodPenrose, "", err)
	}

	return construct(MethodPenrose, dirs, offsets)
}

// Custom builds a basis from caller-provided directions, resolving offsets
// through the same options as the presets. Default offsets are all zero.
func Custom(dirs []space.RealSpace, opts ...BuilderOption) (*basis.Linear, error) {
	cfg := newBuilderConfig(opts...)
	offsets, err := cfg.resolveOffsets(MethodCustom, len(dirs), func(n int) []float64 {
		return make([]float64, n)
	})
	if err != nil {
		return nil, err
	}

	return construct(MethodCustom, dirs, offsets)
}

// PenroseConstraint returns a copy of offsets whose last entry is replaced by
// the negative sum of all the others, so the result sums to zero.
//
// Errors: ErrTooFewOffsets if len(offsets) < 2.
func PenroseConstraint(offsets []float64) ([]float64, error) {
	if len(offsets) < MinPenroseOffsets {
		return nil, builderErrorf(MethodPenroseConstraint, fmt.Sprintf("len=%d", len(offsets)), ErrTooFewOffsets)
	}
	out := make([]float64, len(offsets))
	copy(out, offsets)
	last := len(out) - 1
	var sum float64
	for _, v := range out[:last] {
		sum += v
	}
	out[last] = -sum

	return out, nil
}

func rotSymDirections(s int) []space.RealSpace {
	step := 2 * math.Pi / float64(s)
	dirs := make([]space.RealSpace, RotSymFamilies(s))
	for j := range dirs {
		sin, cos := math.Sincos(float64(j) * step)
		dirs[j] = space.RealSpace{cos, sin}
	}

	return dirs
}

func construct(method string, dirs []space.RealSpace, offsets []float64) (*basis.Linear, error) {
	b, err := basis.NewLinear(dirs, offsets)
	if err != nil {
		return nil, builderErrorf(method, "", err)
	}

	return b, nil
}
