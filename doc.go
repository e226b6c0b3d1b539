// Package multigrid is a toolkit for building quasiperiodic tilings with the
// dual multigrid method, in any number of dimensions.
//
// 🚀 What is multigrid?
//
//	A small, deterministic library plus a CLI that brings together:
//		• Coordinate model: real space points and integer grid indices
//		• Linear bases: I hyperplane families in R dimensions, with offsets
//		• Presets: cubic lattices, s-fold rotational stars, Penrose
//		• Generation: one cell per non-singular R-subset of families and window
//		• Filtering: radius cut-offs and composable cell predicates
//		• Export: plain vertex lists for numpy, or JSON Lines
//
// ✨ Why choose multigrid?
//
//   - Reproducible: seeded offsets, stable output order for any worker count
//   - Any dimension: R and I are runtime values, not type parameters
//   - Honest numerics: singular subsystems are detected with a relative
//     pivot tolerance and reported, not silently mis-solved
//
// Under the hood, everything is organized under these subpackages:
//
//	space/         RealSpace, GridSpace and the Basis interface
//	matrix/        Dense matrices, LUP factorization and inverse
//	basis/         the linear Basis: ToGrid, ToReal and per-combination systems
//	builder/       Cubic, RotSym, Penrose and Custom presets with options
//	cell/          corner enumeration and cell construction
//	multigrid/     Generate: combinations × windows → cells
//	filter/        ByRadius and other predicates over cells
//	export/        numpy-friendly text and JSON Lines writers
//	config/        YAML run files validated against a CUE schema
//	cmd/multigrid  the command-line front end
//
// Quick ASCII example (Cubic2D, range 0, offsets 0.1):
//
//	(0,1)───(1,1)
//	  │       │
//	(0,0)───(1,0)
//
// a single unit square: the one cell of the one window of the one
// combination {0, 1}.
//
//	go install github.com/katalvlaran/multigrid/cmd/multigrid@latest
//	multigrid generate --kind penrose --range 3 -o penrose.txt
package multigrid
