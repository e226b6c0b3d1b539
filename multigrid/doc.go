// Package multigrid generates the cells of a dual multigrid tiling.
//
// A basis (see package basis) describes I families of parallel hyperplanes in
// R-dimensional real space. Every R-element subset of families, taken at
// integer indices in a window [−n, n]^R, meets in exactly one point unless the
// subset's directions are linearly dependent. Each such intersection becomes
// one cell: the 2^R vertices obtained by stepping the point's grid index up by
// one on any subset of the chosen families, mapped back to real space.
//
// The package offers the following key components:
//
//   - Generate(b, n, opts...): the whole pipeline, returning cells in
//     combination order then window order, plus Stats.
//   - Combinations, Windows: the lexicographic enumerations Generate walks.
//   - Binomial, ExpectedCells, WindowCount: closed-form counts for budgeting a
//     run; they saturate instead of overflowing.
//   - Options: WithWorkers, WithChunkSize, WithSingularTol, WithMaxCells,
//     WithLogger, WithOnDegenerate.
//
// Guarantees:
//
//   - Output order is identical for any worker count.
//   - Singular combinations are skipped and counted, never fatal.
//   - No global state; all randomness lives in package builder.
package multigrid
