// SPDX-License-Identifier: MIT
// Package: multigrid/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Presets MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewFamilies indicates a dimension or symmetry parameter below the
// preset's minimum (Cubic d < 1, RotSym s < 3).
var ErrTooFewFamilies = errors.New("builder: parameter too small")

// ErrTooFewOffsets indicates the Penrose constraint was asked for fewer than
// two offsets, where "the last equals minus the sum of the others" is undefined.
var ErrTooFewOffsets = errors.New("builder: penrose constraint needs at least 2 offsets")

// ErrBadSize indicates explicit offsets whose count differs from the number
// of families of the preset, or a negative count for RandomOffsets.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates random offsets were requested without an rng
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps err with the preset name: "<Method>: <detail>: <err>".
func builderErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
