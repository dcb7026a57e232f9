// SPDX-License-Identifier: MIT

// Package matrix - compound assignment and increment/decrement.
//
// Every XxxAssign method is "compute the binary operator, then replace the
// receiver with the result": the full result is built first and the receiver
// adopts its buffer only on success. A failed call leaves the receiver
// untouched, and no RowView obtained before a successful call observes the
// new contents (the buffer is replaced, not rewritten).

package matrix

// assignWith runs op and, on success, moves the result's storage into m.
func (m *Square) assignWith(op func() (*Square, error)) error {
	res, err := op()
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// AddAssign performs m = m + b.
func (m *Square) AddAssign(b *Square) error {
	return m.assignWith(func() (*Square, error) { return Add(m, b) })
}

// SubAssign performs m = m - b.
func (m *Square) SubAssign(b *Square) error {
	return m.assignWith(func() (*Square, error) { return Sub(m, b) })
}

// MulAssign performs m = m × b (matrix product).
func (m *Square) MulAssign(b *Square) error {
	return m.assignWith(func() (*Square, error) { return Mul(m, b) })
}

// ScaleAssign performs m = m * s.
func (m *Square) ScaleAssign(s float64) error {
	return m.assignWith(func() (*Square, error) { return Scale(m, s) })
}

// DivAssign performs m = m / s; ErrDivisionByZero leaves m unchanged.
func (m *Square) DivAssign(s float64) error {
	return m.assignWith(func() (*Square, error) { return Div(m, s) })
}

// ModAssign performs m = Mod(m, b), i.e. the element-wise product
// (see the compatibility note on Mod).
func (m *Square) ModAssign(b *Square) error {
	return m.assignWith(func() (*Square, error) { return Mod(m, b) })
}

// ModScalarAssign performs m = ModScalar(m, k).
func (m *Square) ModScalarAssign(k int) error {
	return m.assignWith(func() (*Square, error) { return ModScalar(m, k) })
}

// Inc adds 1.0 to every element in place and returns m (prefix ++).
// Empty and nil matrices are left as they are.
func (m *Square) Inc() *Square {
	if m != nil {
		ewShiftInPlace(m, 1)
	}

	return m
}

// Dec subtracts 1.0 from every element in place and returns m (prefix --).
func (m *Square) Dec() *Square {
	if m != nil {
		ewShiftInPlace(m, -1)
	}

	return m
}

// PostInc returns a copy of m taken before adding 1.0 to every element of m
// in place (postfix ++).
func (m *Square) PostInc() *Square {
	before := m.Clone()
	m.Inc()

	return before
}

// PostDec returns a copy of m taken before subtracting 1.0 from every
// element of m in place (postfix --).
func (m *Square) PostDec() *Square {
	before := m.Clone()
	m.Dec()

	return before
}
