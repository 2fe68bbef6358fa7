// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and product kernels so that Mat2,
//     Mat3 and Mat4 share one loop per operation instead of unrolled copies.
//   - Kernels work on flat column-major slices taken from the fixed arrays
//     (m.M[:]), so they never allocate.
//
// Determinism:
//   - Fixed loop orders (flat 0..n²-1, or column → row → k for products).

package matrix

import "github.com/katalvlaran/lvlgeom/scalar"

func add[T scalar.Number](a, b T) T { return a + b }
func sub[T scalar.Number](a, b T) T { return a - b }
func mul[T scalar.Number](a, b T) T { return a * b }
func div[T scalar.Number](a, b T) T { return a / b }

// ewScalar computes dst[i] = op(a[i], f).
// Time: O(len(a)).
func ewScalar[T scalar.Number](dst, a []T, f T, op func(T, T) T) {
	for i := range a {
		dst[i] = op(a[i], f)
	}
}

// ewPair computes dst[i] = op(a[i], b[i]). Assumes len(a) == len(b) == len(dst).
// Time: O(len(a)).
func ewPair[T scalar.Number](dst, a, b []T, op func(T, T) T) {
	for i := range a {
		dst[i] = op(a[i], b[i])
	}
}

// requireNonZero panics with ErrDivisionByZero if any entry of b is zero.
// Runs before a division kernel so a failed check leaves dst untouched.
func requireNonZero[T scalar.Number](tag string, b []T) {
	for _, v := range b {
		if v == 0 {
			matrixPanic(tag, ErrDivisionByZero)
		}
	}
}

// mulColMajor computes dst = a·b for n×n column-major operands.
// Column c of the result is column c of b transformed by a.
// dst must not alias a or b.
// Time: O(n³).
func mulColMajor[T scalar.Number](dst, a, b []T, n int) {
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += a[k*n+r] * b[c*n+k]
			}
			dst[c*n+r] = sum
		}
	}
}

// mulVecColMajor computes dst = a·v for an n×n column-major a.
// Time: O(n²).
func mulVecColMajor[T scalar.Number](dst, a, v []T, n int) {
	for r := 0; r < n; r++ {
		var sum T
		for k := 0; k < n; k++ {
			sum += a[k*n+r] * v[k]
		}
		dst[r] = sum
	}
}

// transposeInPlace swaps m[c][r] with m[r][c] for an n×n matrix.
// Time: O(n²).
func transposeInPlace[T scalar.Number](m []T, n int) {
	for c := 0; c < n; c++ {
		for r := c + 1; r < n; r++ {
			m[c*n+r], m[r*n+c] = m[r*n+c], m[c*n+r]
		}
	}
}

// identity writes the n×n identity into m.
func identity[T scalar.Number](m []T, n int) {
	for i := range m {
		m[i] = 0
	}
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
}
