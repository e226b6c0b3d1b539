// Package builder defines shared constants used by the basis presets, ensuring
// consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Preset Method Name Constants
//   used to prefix errors with the preset name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCubic is the canonical name for the Cubic preset.
	MethodCubic = "Cubic"
	// MethodRotSym is the canonical name for the RotSym preset.
	MethodRotSym = "RotSym"
	// MethodPenrose is the canonical name for the Penrose preset.
	MethodPenrose = "Penrose"
	// MethodCustom is the canonical name for the Custom preset.
	MethodCustom = "Custom"
	// MethodPenroseConstraint is the canonical name for PenroseConstraint.
	MethodPenroseConstraint = "PenroseConstraint"
	// MethodRandomOffsets is the canonical name for RandomOffsets.
	MethodRandomOffsets = "RandomOffsets"
)

//-----------------------------------------------------------------------------
// Defaults & Minima
//-----------------------------------------------------------------------------

// DefaultCubicOffset keeps cubic vertices off the integer lattice points
// where every family would pass through the same point.
const DefaultCubicOffset = 0.1

// PenroseSymmetry is the rotational order of the Penrose pentagrid.
const PenroseSymmetry = 5

// MinRotSymOrder is the smallest symmetry order RotSym accepts; below it the
// directions do not span the plane.
const MinRotSymOrder = 3

// MinCubicDims is the smallest dimension for Cubic.
const MinCubicDims = 1

// MinPenroseOffsets is the smallest offset count the Penrose constraint is defined for.
const MinPenroseOffsets = 2

// defaultPenroseOffsets sum to zero exactly.
var defaultPenroseOffsets = []float64{0.2, 0.2, 0.2, 0.2, -0.8}
