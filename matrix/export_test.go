// SPDX-License-Identifier: MIT
// Package matrix - test-only exports, compiled only with the tests.
//
// Purpose:
//   - Expose a read-only snapshot of the resolved Options and a few private
//     kernels so that black-box tests in matrix_test can assert on them.
//   - Names carry the _TestOnly suffix; do not use them in production code.

package matrix

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Power      PowerStrategy
	DetWarnDim int
	Precision  int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as public entry points do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Power: o.power, DetWarnDim: o.detWarnDim, Precision: o.precision}
}

// CofactorDet_TestOnly runs the recursive kernel on a raw row-major buffer.
func CofactorDet_TestOnly(d []float64, n int) float64 { return cofactorDet(d, n) }

// NewRaw_TestOnly builds a Square around an arbitrary buffer without any
// validation, so tests can reach the defensive storage checks.
func NewRaw_TestOnly(n int, data []float64) *Square { return &Square{n: n, data: data} }
