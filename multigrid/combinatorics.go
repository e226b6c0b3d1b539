// SPDX-License-Identifier: MIT

package multigrid

import "math"

// Combinations returns every k-element subset of {0,…,n−1} in lexicographic
// order, each subset ascending. There are C(n,k) of them.
// k = 0 yields one empty subset; k < 0 or k > n yields none.
//
// Complexity: O(C(n,k)·k) time and space.
func Combinations(n, k int) [][]int {
	if k < 0 || n < 0 || k > n {
		return nil
	}
	out := make([][]int, 0, Binomial(n, k))
	cur := make([]int, k)
	for i := range cur {
		cur[i] = i
	}
	for {
		c := make([]int, k)
		copy(c, cur)
		out = append(out, c)

		// Find the rightmost position that can still advance.
		i := k - 1
		for i >= 0 && cur[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		cur[i]++
		for j := i + 1; j < k; j++ {
			cur[j] = cur[j-1] + 1
		}
	}
}

// Windows returns every r-tuple of integers in [−radius, radius]^r, the
// cartesian product of r closed ranges, with the last coordinate varying
// fastest. There are (2·radius+1)^r tuples; radius < 0 or r < 0 yields none,
// and so does a count that does not fit in an int (see WindowCount).
//
// Complexity: O((2·radius+1)^r · r) time and space.
func Windows(r, radius int) [][]int {
	total, ok := WindowCount(r, radius)
	if !ok || total == 0 {
		return nil
	}
	out := make([][]int, 0, total)
	cur := make([]int, r)
	for i := range cur {
		cur[i] = -radius
	}
	for t := 0; t < total; t++ {
		w := make([]int, r)
		copy(w, cur)
		out = append(out, w)

		// Odometer increment from the last coordinate.
		for i := r - 1; i >= 0; i-- {
			if cur[i] < radius {
				cur[i]++
				break
			}
			cur[i] = -radius
		}
	}

	return out
}

// WindowCount returns (2·radius+1)^r, the number of window tuples per
// combination. ok is false when the count does not fit in an int; the count
// is then math.MaxInt. Negative arguments give (0, true).
func WindowCount(r, radius int) (count int, ok bool) {
	switch {
	case r < 0 || radius < 0:
		return 0, true
	case r == 0:
		return 1, true
	case radius > (math.MaxInt-1)/2:
		return math.MaxInt, false
	}

	return ipow(2*radius+1, r)
}

// Binomial returns C(n,k), or 0 when k is outside [0,n]. Results that do not
// fit in an int saturate at math.MaxInt.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	var ok bool
	for i := 1; i <= k; i++ {
		// res·(n−k+i) is divisible by i at every step.
		if res, ok = mul(res, n-k+i); !ok {
			return math.MaxInt
		}
		res /= i
	}

	return res
}

// ExpectedCells is the cell count of a run with no singular combinations:
// C(families, realDims) · (2·indexRange+1)^realDims. It is an upper bound
// for the actual count and saturates at math.MaxInt, so it can be compared
// against a budget without overflowing.
func ExpectedCells(families, realDims, indexRange int) int {
	if indexRange < 0 {
		return 0
	}
	windows, ok := WindowCount(realDims, indexRange)
	if !ok {
		return math.MaxInt
	}
	cells, ok := mul(Binomial(families, realDims), windows)
	if !ok {
		return math.MaxInt
	}

	return cells
}

// ipow returns base^exp for base ≥ 0, saturating at math.MaxInt with ok=false.
func ipow(base, exp int) (int, bool) {
	res := 1
	var ok bool
	for ; exp > 0; exp-- {
		if res, ok = mul(res, base); !ok {
			return math.MaxInt, false
		}
	}

	return res, true
}

// mul multiplies two non-negative ints, reporting overflow.
func mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return math.MaxInt, false
	}

	return a * b, true
}
