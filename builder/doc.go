// Package builder provides the parameterized basis presets of the multigrid
// module, configured with functional options in the same style everywhere.
//
// The package offers the following key components:
//
//   - Presets (each returns a *basis.Linear):
//     – Cubic(d):     I = R = d, standard orthonormal directions, offset 0.1.
//     – Cubic2D():    Cubic(2).
//     – RotSym(s):    R = 2, directions evenly spaced by 2π/s; for even s the
//     antipodal half is dropped so I = s/2, otherwise I = s.
//     Uniform offsets 1/s by default.
//     – Penrose():    RotSym(5) with offsets constrained to sum to zero,
//     default [0.2, 0.2, 0.2, 0.2, −0.8].
//     – Custom(dirs): caller directions with option-resolved offsets.
//   - Offset helpers:
//     – PenroseConstraint: replace the last offset by −Σ(others).
//     – RandomOffsets:     n draws from U[0,1) using an explicit *rand.Rand.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithOffsets, WithUniformOffset, WithRandomOffsets, WithSeed, WithRand.
//
// Guarantees:
//
//   - Determinism: no hidden global randomness; WithSeed fixes every draw.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (sentinels wrapped with the preset name) for
//     invalid preset parameters; check them with errors.Is.
package builder
