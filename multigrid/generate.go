// SPDX-License-Identifier: MIT

package multigrid

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/multigrid/basis"
	"github.com/katalvlaran/multigrid/cell"
	"github.com/katalvlaran/multigrid/matrix"
	"github.com/katalvlaran/multigrid/space"
)

// Basis is what the generator needs from a basis: the space conversions plus
// the per-combination R×R system (selected directions as rows, their offsets).
// *basis.Linear implements it.
type Basis interface {
	space.Basis
	Subsystem(families []int) (*matrix.Dense, []float64, error)
}

// Stats summarizes one Generate call.
type Stats struct {
	// Combinations is C(I,R), the number of family subsets considered.
	Combinations int
	// Degenerate counts combinations skipped because their system is singular.
	Degenerate int
	// WindowsPerCombination is (2·indexRange+1)^R.
	WindowsPerCombination int
	// Cells is the number of cells produced.
	Cells int
}

// Result is the ordered output of Generate.
type Result struct {
	Cells []cell.Cell
	Stats Stats
}

// system is the solved local frame of one non-singular combination.
type system struct {
	families []int
	inverse  *matrix.Dense
	offsets  []float64
}

// task is a contiguous slice of the window tuples of one system.
type task struct {
	sys    int
	lo, hi int
}

// Generate builds the dual tiling of b truncated to hyperplane indices in
// [−indexRange, indexRange] per selected family.
//
// Implementation:
//   - Stage 1 (Validate): b non-nil (typed nil included), indexRange ≥ 0,
//     optional cell budget, window count representable as an int.
//   - Stage 2 (Prepare): enumerate the C(I,R) combinations lexicographically;
//     invert each R×R subsystem; singular ones are logged, reported to the
//     OnDegenerate hook and skipped. Build the window tuples and the corner
//     table once.
//   - Stage 3 (Execute): for every (system, window k) solve
//     x = A⁻¹·(o + k) and build the cell around x. With WithWorkers(n>1) the
//     product is cut into chunks run on an errgroup; chunk results are
//     concatenated in order, so output does not depend on n.
//   - Stage 4 (Finalize): concatenate in combination order then window order.
//
// Behavior highlights:
//   - No deduplication; degenerate bases may yield geometrically coincident cells.
//   - indexRange = 0 explores the single tuple (0,…,0) per combination.
//
// Errors:
//   - ErrNilBasis, ErrBadRange (negative, or too large to enumerate),
//     ErrTooManyCells; errors from cell construction.
//
// Complexity:
//   - Time O(C(I,R)·(2n+1)^R·2^R·I·R), Space O(output).
func Generate(b Basis, indexRange int, opts ...Option) (*Result, error) {
	if err := validateBasis(b); err != nil {
		return nil, generateErrorf("Validate", err)
	}
	if indexRange < 0 {
		return nil, generateErrorf("Validate", fmt.Errorf("indexRange=%d: %w", indexRange, ErrBadRange))
	}
	cfg := newConfig(opts...)
	r, n := b.RealDims(), b.IndexDims()
	if cfg.maxCells > 0 {
		if want := ExpectedCells(n, r, indexRange); want > cfg.maxCells {
			return nil, generateErrorf("Validate", fmt.Errorf("%d > %d: %w", want, cfg.maxCells, ErrTooManyCells))
		}
	}
	if _, ok := WindowCount(r, indexRange); !ok {
		return nil, generateErrorf("Validate", fmt.Errorf("indexRange=%d: (2n+1)^%d overflows int: %w", indexRange, r, ErrBadRange))
	}

	combos := Combinations(n, r)
	windows := Windows(r, indexRange)
	corners := cell.Corners(r)
	stats := Stats{Combinations: len(combos), WindowsPerCombination: len(windows)}

	systems := make([]system, 0, len(combos))
	for _, fam := range combos {
		a, off, err := b.Subsystem(fam)
		if err != nil {
			return nil, generateErrorf("Prepare", err)
		}
		inv, err := matrix.InverseTol(a, cfg.singularTol)
		if errors.Is(err, matrix.ErrSingular) {
			stats.Degenerate++
			cfg.logger.Debug("singular combination skipped", "families", fam, "system", a)
			if cfg.onDegenerate != nil {
				cfg.onDegenerate(fam)
			}
			continue
		}
		if err != nil {
			return nil, generateErrorf("Prepare", err)
		}
		systems = append(systems, system{families: fam, inverse: inv, offsets: off})
	}

	var cells []cell.Cell
	var err error
	if cfg.workers <= 1 {
		cells, err = runSequential(b, systems, windows, corners)
	} else {
		cells, err = runParallel(b, systems, windows, corners, cfg)
	}
	if err != nil {
		return nil, generateErrorf("Execute", err)
	}
	stats.Cells = len(cells)

	cfg.logger.Debug("generation finished",
		"real_dims", r,
		"families", n,
		"index_range", indexRange,
		"combinations", stats.Combinations,
		"degenerate", stats.Degenerate,
		"cells", stats.Cells,
		"workers", cfg.workers,
	)

	return &Result{Cells: cells, Stats: stats}, nil
}

// validateBasis rejects a nil basis, including a typed nil *basis.Linear.
func validateBasis(b Basis) error {
	if b == nil {
		return ErrNilBasis
	}
	if l, ok := b.(*basis.Linear); ok && l == nil {
		return ErrNilBasis
	}

	return nil
}

func runSequential(b Basis, systems []system, windows [][]int, corners [][]int) ([]cell.Cell, error) {
	cells := make([]cell.Cell, 0, len(systems)*len(windows))
	for i := range systems {
		part, err := buildRange(b, &systems[i], windows, corners)
		if err != nil {
			return nil, err
		}
		cells = append(cells, part...)
	}

	return cells, nil
}

func runParallel(b Basis, systems []system, windows [][]int, corners [][]int, cfg config) ([]cell.Cell, error) {
	tasks := make([]task, 0, len(systems)*(len(windows)/cfg.chunkSize+1))
	for s := range systems {
		for lo := 0; lo < len(windows); lo += cfg.chunkSize {
			hi := lo + cfg.chunkSize
			if hi > len(windows) {
				hi = len(windows)
			}
			tasks = append(tasks, task{sys: s, lo: lo, hi: hi})
		}
	}

	// One slot per task keeps the merge ordered without locks.
	parts := make([][]cell.Cell, len(tasks))
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, t := range tasks {
		g.Go(func() error {
			part, err := buildRange(b, &systems[t.sys], windows[t.lo:t.hi], corners)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	cells := make([]cell.Cell, 0, total)
	for _, p := range parts {
		cells = append(cells, p...)
	}

	return cells, nil
}

// buildRange solves and builds the cells of one system for the given windows.
func buildRange(b Basis, sys *system, windows [][]int, corners [][]int) ([]cell.Cell, error) {
	out := make([]cell.Cell, 0, len(windows))
	rhs := make([]float64, len(sys.offsets))
	for _, k := range windows {
		for i := range rhs {
			rhs[i] = sys.offsets[i] + float64(k[i])
		}
		x, err := matrix.MatVec(sys.inverse, rhs)
		if err != nil {
			return nil, err
		}
		c, err := cell.FromIntersection(b, x, sys.families, k, corners)
		if err != nil {
			return nil, fmt.Errorf("families %v window %v: %w", sys.families, k, err)
		}
		out = append(out, c)
	}

	return out, nil
}
