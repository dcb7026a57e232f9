// Package squaremat is a small, self-contained square-matrix value type for
// Go: dense n×n float64 storage with the full arithmetic toolbox you would
// expect from an operator-rich matrix class.
//
// 🚀 What is in the box?
//
//	• Construction: zero, identity and literal grids; deep copy, move, release
//	• Element access: bounds-checked At/Set and borrowed row views
//	• Arithmetic: +, −, matrix product, scalar scale/divide, fmod, transpose
//	• Compound assignment and ++/-- style helpers
//	• Power (naive or square-and-multiply) and cofactor determinant
//	• Sum-based ordering plus exact equality
//	• Bracketed text rendering, one row per line
//
// ✨ Why squaremat?
//
//   - Value semantics: every operator returns a fresh matrix
//   - Sentinel errors: match failures with errors.Is, never panics on input
//   - Functional options for the few tunables (power strategy, precision)
//
// Layout:
//
//	matrix/        - the Square type, operators, validators and options
//	cmd/squaremat/ - command-line walkthrough of every operation
//	examples/      - runnable scenarios (Markov steady state)
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	fmt.Print(a)   // [ 1 ][ 2 ]
//	               // [ 3 ][ 4 ]
//	d, _ := a.Det() // -2
//
//	go get github.com/katalvlaran/squaremat/matrix
package squaremat
