// SPDX-License-Identifier: MIT
// Package: multigrid/basis
//
// errors.go: sentinel errors for basis construction.
//
// Error policy:
//   • All construction failures are fatal: no Basis is returned.
//   • Callers branch with errors.Is(err, ErrX); messages are not part of the contract.
//   • Linear dependence of directions is NOT an error here; the generator
//     discovers it per combination and skips.

package basis

import "errors"

var (
	// ErrBadDimensions indicates R = 0 (no real dimensions), no directions at
	// all, or fewer families than real dimensions (I < R).
	ErrBadDimensions = errors.New("basis: invalid dimensions")

	// ErrDimensionMismatch indicates ragged direction vectors, an offset count
	// different from the direction count, or a point/index of the wrong length.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")

	// ErrNaNInf indicates a non-finite direction component or offset.
	ErrNaNInf = errors.New("basis: NaN or Inf in directions or offsets")

	// ErrFamilyOutOfRange indicates a family index outside [0, I).
	ErrFamilyOutOfRange = errors.New("basis: family index out of range")
)
