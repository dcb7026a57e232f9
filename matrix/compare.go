// SPDX-License-Identifier: MIT

// Package matrix - equality and total-sum ordering.
//
// Equal is structural and exact (no epsilon): callers needing a tolerance
// must wrap it. The ordering predicates compare the scalar sum of all
// elements, so two different matrices with the same sum are neither Greater
// nor Less than each other while Equal still reports false.

package matrix

// Sum returns the sum of all elements, accumulated in row-major order.
// A nil or empty matrix sums to 0. Complexity: O(n²).
func (m *Square) Sum() float64 {
	if m == nil {
		return 0
	}
	s := 0.0
	for _, v := range m.data {
		s += v
	}

	return s
}

// Equal reports whether a and b have the same dimension and bit-for-bit
// equal elements under ==. NaN is never equal to itself, so a matrix holding
// NaN is not Equal to its own clone. Two nil matrices are Equal.
func Equal(a, b *Square) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// NotEqual is !Equal(a, b).
func NotEqual(a, b *Square) bool { return !Equal(a, b) }

// Greater reports a.Sum() > b.Sum().
func Greater(a, b *Square) bool { return a.Sum() > b.Sum() }

// GreaterEqual reports a.Sum() >= b.Sum().
func GreaterEqual(a, b *Square) bool { return a.Sum() >= b.Sum() }

// Less reports a.Sum() < b.Sum().
func Less(a, b *Square) bool { return a.Sum() < b.Sum() }

// LessEqual reports a.Sum() <= b.Sum().
func LessEqual(a, b *Square) bool { return a.Sum() <= b.Sum() }

// Compare orders a and b by total sum: -1 if less, +1 if greater, 0
// otherwise (including when either sum is NaN).
func Compare(a, b *Square) int {
	sa, sb := a.Sum(), b.Sum()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// Equal is the method form of the package-level Equal.
func (m *Square) Equal(other *Square) bool { return Equal(m, other) }
