// Package builder - RNG utilities for random offsets.
//
// Goals:
//   - Determinism: same seed ⇒ identical offsets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package builder

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// RandomOffsets returns n offsets drawn from U[0,1) in order from rng.
//
// Errors:
//   - ErrNeedRandSource if rng is nil.
//   - ErrBadSize if n < 0.
//
// Complexity: O(n).
func RandomOffsets(n int, rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, builderErrorf(MethodRandomOffsets, "", ErrNeedRandSource)
	}
	if n < 0 {
		return nil, builderErrorf(MethodRandomOffsets, fmt.Sprintf("n=%d", n), ErrBadSize)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}

	return out, nil
}
