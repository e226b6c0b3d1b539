// Package matrix offers the small dense linear-algebra kernel used by the
// multigrid generator.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix, immutable once built, with a safe At
//     accessor and Row copies.
//   - Transpose, MatVec and SelectRows for projecting points and building
//     per-combination systems.
//   - LUP: Doolittle LU factorization with partial (row) pivoting and an
//     explicit singular tolerance, plus Solve for repeated right-hand sides.
//   - InverseTol built on LUP.
//
// Matrices here are tiny (R×R, R the real dimension of a tiling), so the
// kernels favour determinism and clear failure modes over blocking or SIMD.
// A singular system is reported as ErrSingular and is an expected outcome
// for callers enumerating direction combinations.
package matrix
