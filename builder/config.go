// SPDX-License-Identifier: MIT
// Package: multigrid/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Offset resolution order (first match wins):
//   1. WithOffsets        explicit per-family values (length must equal I)
//   2. WithRandomOffsets  I draws from cfg.rng (rng required)
//   3. WithUniformOffset  the same value on every family
//   4. the preset default

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by presets.
// It is passed by VALUE to presets (immutable to callers).
type builderConfig struct {
	offsets   []float64  // explicit offsets; nil = not set
	uniform   *float64   // uniform offset; nil = not set
	randomize bool       // draw offsets from rng
	rng       *rand.Rand // nil means "no randomness"
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveOffsets returns the I offsets for a preset following the documented order.
// defaults is copied, never returned as-is.
func (cfg builderConfig) resolveOffsets(method string, n int, defaults func(int) []float64) ([]float64, error) {
	switch {
	case cfg.offsets != nil:
		if len(cfg.offsets) != n {
			return nil, builderErrorf(method, fmt.Sprintf("%d offsets for %d families", len(cfg.offsets), n), ErrBadSize)
		}
		out := make([]float64, n)
		copy(out, cfg.offsets)
		return out, nil
	case cfg.randomize:
		out, err := RandomOffsets(n, cfg.rng)
		if err != nil {
			return nil, builderErrorf(method, "", err)
		}
		return out, nil
	case cfg.uniform != nil:
		return uniformOffsets(n, *cfg.uniform), nil
	default:
		return defaults(n), nil
	}
}

func uniformOffsets(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
