// Package filter selects subsets of generated cells.
//
// ByRadius is the classic post-processing step for multigrid output: the
// window enumeration produces a roughly square patch in index space, and
// keeping only cells with ‖index‖ < r trims it to a disc-like patch.
// Predicates compose through Apply:
//
//	kept := filter.Apply(res.Cells, filter.RadiusBelow(4), filter.HasFamily(0))
package filter
