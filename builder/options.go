// SPDX-License-Identifier: MIT
// Package: multigrid/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Presets themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a preset by mutating a builderConfig instance
// before the basis is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithOffsets sets explicit per-family offsets. The slice is copied.
// Panics on nil/empty input or a non-finite value.
func WithOffsets(offsets []float64) BuilderOption {
	if len(offsets) == 0 {
		panic("builder: WithOffsets(empty)")
	}
	for _, v := range offsets {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("builder: WithOffsets(non-finite)")
		}
	}
	cp := make([]float64, len(offsets))
	copy(cp, offsets)
	return func(c *builderConfig) {
		c.offsets = cp
	}
}

// WithUniformOffset puts the same offset v on every family.
// Panics on a non-finite v.
func WithUniformOffset(v float64) BuilderOption {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("builder: WithUniformOffset(non-finite)")
	}
	return func(c *builderConfig) {
		c.uniform = &v
	}
}

// WithRandomOffsets draws every offset from U[0,1) using the configured rng.
// Combine with WithSeed or WithRand; without an rng the preset fails with
// ErrNeedRandSource.
func WithRandomOffsets() BuilderOption {
	return func(c *builderConfig) {
		c.randomize = true
	}
}

// WithRand provides an explicit RNG for random offsets.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (seed 0 maps to a
// fixed default, see rngFromSeed). Use this in tests and examples.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}
