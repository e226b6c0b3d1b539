// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used to solve the small
// per-combination systems of the multigrid construction: transpose, mat-vec,
// row selection, LU with partial pivoting, solve and inverse.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf(op, err).
//   - Inputs are never mutated; results are freshly allocated *Dense or slices.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opSelectRows = "SelectRows"
	opLUP        = "LUP"
	opSolve      = "Solve"
	opInverse    = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return out, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// SelectRows materializes the submatrix made of the given rows (in the given order).
// This is how a combination of families is cut out of the I×R coefficient matrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (no rows), ErrOutOfRange.
// Complexity: Time O(len(rows)*c), Space O(len(rows)*c).
func SelectRows(m Matrix, rows []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	cols := m.Cols()
	out, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}

	var v float64
	for i, r := range rows {
		for j := 0; j < cols; j++ {
			if v, err = m.At(r, j); err != nil {
				return nil, matrixErrorf(opSelectRows, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// LU is a packed LU factorization with row permutation: P·A = L·U.
// The strict lower triangle of lu holds L (unit diagonal implied), the upper
// triangle including the diagonal holds U. perm[i] is the source row of A
// that ended up in row i.
type LU struct {
	n    int
	lu   []float64
	perm []int
}

// LUP computes the Doolittle factorization with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); copy A into a flat buffer; perm = identity.
//   - Stage 2: for each column k, pick the row p ≥ k with the largest |a[p][k]|
//     (first one wins on ties), swap rows p and k.
//   - Stage 3: if |a[k][k]| ≤ tol·max|A| the column has no usable pivot → ErrSingular.
//   - Stage 4: eliminate below the pivot, storing multipliers in place.
//
// Behavior highlights:
//   - tol is relative to the largest absolute entry of A; tol = 0 flags only exact zeros.
//   - A zero leading entry with a usable pivot below it is NOT singular (pivoting handles it).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(m Matrix, tol float64) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	n := m.Rows()
	a := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(a, d.data)
	} else {
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if a[i*n+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLUP, err)
				}
			}
		}
	}

	// Scale the tolerance once by the magnitude of the input.
	var scale float64
	for _, v := range a {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	threshold := tol * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, piv, f float64
	for k = 0; k < n; k++ {
		// Partial pivot search in column k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= threshold {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		piv = a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / piv
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &LU{n: n, lu: a, perm: perm}, nil
}

// Solve returns x with A·x = b using the factorization (forward then backward substitution).
//
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: Time O(n^2), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)

	var i, k int
	var sum float64
	// Forward: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// InverseTol computes A^{-1} via LUP(m, tol), solving one unit column at a time.
// tol = 0 treats only an exactly zero pivot (after pivoting) as singular.
//
// Implementation:
//   - Stage 1: factorize (validation and singularity surface here).
//   - Stage 2: for each canonical basis column e_col solve A·x = e_col and
//     write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (all wrapped with "Inverse").
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func InverseTol(m Matrix, tol float64) (*Dense, error) {
	f, err := LUP(m, tol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var x []float64
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
