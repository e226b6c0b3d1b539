// SPDX-License-Identifier: MIT
// Package: multigrid
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil logger, workers < 1, negative tolerance). Generate itself never panics.
//   • Defaults are deterministic: sequential, silent, tolerance 1e-9.

package multigrid

import (
	"io"
	"log/slog"
	"math"
)

// Deterministic defaults.
const (
	// DefaultSingularTol is the relative pivot tolerance under which a
	// combination's R×R system is treated as singular. Directions that are
	// parallel only up to rounding (e.g. cos(π) ≈ −1) are caught by it.
	DefaultSingularTol = 1e-9
	// DefaultChunkSize is the number of window tuples per parallel task.
	DefaultChunkSize = 256
	defaultWorkers   = 1
)

// Option customizes a Generate call.
type Option func(*config)

type config struct {
	workers      int
	chunkSize    int
	singularTol  float64
	maxCells     int // 0 = unlimited
	logger       *slog.Logger
	onDegenerate func(families []int)
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers:     defaultWorkers,
		chunkSize:   DefaultChunkSize,
		singularTol: DefaultSingularTol,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets how many goroutines build cells. 1 (the default) runs
// sequentially; any value yields the same ordered output.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("multigrid: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithChunkSize sets how many window tuples one parallel task covers.
// Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("multigrid: WithChunkSize(n<1)")
	}
	return func(c *config) { c.chunkSize = n }
}

// WithSingularTol overrides DefaultSingularTol. 0 treats only exactly zero
// pivots as singular. Panics on negative or NaN.
func WithSingularTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("multigrid: WithSingularTol(tol<0)")
	}
	return func(c *config) { c.singularTol = tol }
}

// WithMaxCells makes Generate fail with ErrTooManyCells before doing any work
// when the run could produce more than n cells. Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("multigrid: WithMaxCells(n<1)")
	}
	return func(c *config) { c.maxCells = n }
}

// WithLogger routes diagnostics (skipped combinations, run summary) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("multigrid: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithOnDegenerate registers a hook called, in combination order and on the
// calling goroutine, for every combination whose system is singular.
// Panics on nil.
func WithOnDegenerate(fn func(families []int)) Option {
	if fn == nil {
		panic("multigrid: WithOnDegenerate(nil)")
	}
	return func(c *config) { c.onDegenerate = fn }
}
