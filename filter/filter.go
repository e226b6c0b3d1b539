// SPDX-License-Identifier: MIT
// Package: multigrid/filter
//
// filter.go: post-generation cell selection.
//
// Contract:
//   • Every function is pure: the input slice is never modified and the
//     result is a new slice (possibly empty, never aliasing the input).
//   • Relative order of kept cells is preserved.
//   • Filtering is idempotent for a fixed predicate.

package filter

import (
	"github.com/katalvlaran/multigrid/cell"
)

// Predicate reports whether a cell should be kept.
type Predicate func(c cell.Cell) bool

// ByRadius keeps exactly the cells whose index vector has Euclidean norm
// strictly below maxRadius. maxRadius <= 0 therefore keeps nothing.
// Complexity: O(N·I).
func ByRadius(cells []cell.Cell, maxRadius float64) []cell.Cell {
	return Apply(cells, RadiusBelow(maxRadius))
}

// Apply keeps the cells satisfying every predicate. With no predicates it
// returns a copy of cells.
func Apply(cells []cell.Cell, preds ...Predicate) []cell.Cell {
	out := make([]cell.Cell, 0, len(cells))
	for _, c := range cells {
		if keep(c, preds) {
			out = append(out, c)
		}
	}

	return out
}

func keep(c cell.Cell, preds []Predicate) bool {
	for _, p := range preds {
		if !p(c) {
			return false
		}
	}

	return true
}

// RadiusBelow is the ByRadius predicate: ‖Index‖₂ < r.
func RadiusBelow(r float64) Predicate {
	return func(c cell.Cell) bool {
		return c.Index.Norm() < r
	}
}

// HasFamily keeps cells produced by a combination that includes family j.
func HasFamily(j int) Predicate {
	return func(c cell.Cell) bool {
		for _, f := range c.Families {
			if f == j {
				return true
			}
		}
		return false
	}
}

// WithinWindow keeps cells whose window tuple lies in [-n, n] on every
// selected family, i.e. cells that a smaller indexRange would also produce.
func WithinWindow(n int) Predicate {
	return func(c cell.Cell) bool {
		for _, k := range c.Window {
			if k < -n || k > n {
				return false
			}
		}
		return true
	}
}
