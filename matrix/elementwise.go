// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) so the public
//     operators do not duplicate tight loops.
//   - Keep all loops deterministic: a single flat walk 0..n²-1.
//
// Design:
//   - Kernels assume validated operands; validation lives in the public
//     operators (arith.go) via validators.go.
//   - Each kernel allocates exactly one result buffer and never mutates inputs.

package matrix

// ewBinary computes out[k] = f(a[k], b[k]) over the flat buffers.
// Preconditions: a and b are live with equal dimension.
// Time: O(n²). Space: O(n²).
func ewBinary(a, b *Square, f func(x, y float64) float64) *Square {
	out := &Square{n: a.n, data: make([]float64, len(a.data))}
	for idx := range out.data { // deterministic 0..n²-1
		out.data[idx] = f(a.data[idx], b.data[idx])
	}

	return out
}

// ewMap computes out[k] = f(a[k]) over the flat buffer.
// Preconditions: a is live.
// Time: O(n²). Space: O(n²).
func ewMap(a *Square, f func(x float64) float64) *Square {
	out := &Square{n: a.n, data: make([]float64, len(a.data))}
	for idx := range out.data {
		out.data[idx] = f(a.data[idx])
	}

	return out
}

// ewShiftInPlace adds delta to every element of m in place.
// Used by Inc/Dec; an empty matrix is a no-op.
func ewShiftInPlace(m *Square, delta float64) {
	for idx := range m.data {
		m.data[idx] += delta
	}
}
