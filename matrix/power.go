// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Power returns A^exp for a non-negative integer exponent.
// MAIN DESCRIPTION:
//   - A^0 is the identity of A's dimension; A^k is k matrix products
//     starting from the identity.
//
// Implementation:
//   - Stage 1: ValidateLive(a); reject exp < 0.
//   - Stage 2: build the identity; return it when exp == 0.
//   - Stage 3: multiply according to the configured PowerStrategy.
//
// Behavior highlights:
//   - PowerNaive (default) performs exactly exp products I·A·A·…·A, the
//     reference rounding order.
//   - PowerBinary performs O(log exp) products; results agree with the naive
//     schedule whenever all partial products are exact (integer-valued data).
//
// Errors:
//   - ErrInvalidArgument for exp < 0; ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Naive: O(exp·n³). Binary: O(log(exp)·n³). Space O(n²).
func Power(a *Square, exp int, opts ...Option) (*Square, error) {
	if err := ValidateLive(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if exp < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("negative exponent %d: %w", exp, ErrInvalidArgument))
	}
	o := gatherOptions(opts...)

	result, err := NewIdentity(a.n)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if exp == 0 {
		return result, nil
	}
	log.Debugf("Power: %d×%d ^ %d (%s)", a.n, a.n, exp, o.power)

	if o.power == PowerBinary {
		return powBinary(a, result, exp)
	}

	return powNaive(a, result, exp)
}

// powNaive multiplies acc by a exactly exp times.
func powNaive(a, acc *Square, exp int) (*Square, error) {
	var err error
	for k := 0; k < exp; k++ {
		if acc, err = Mul(acc, a); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return acc, nil
}

// powBinary is square-and-multiply over the bits of exp.
func powBinary(a, acc *Square, exp int) (*Square, error) {
	base := a.Clone()
	var err error
	for exp > 0 {
		if exp&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return acc, nil
}

// Pow is the method form of Power.
func (m *Square) Pow(exp int, opts ...Option) (*Square, error) { return Power(m, exp, opts...) }
