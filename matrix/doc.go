// Package matrix implements Square, a dense n×n matrix of float64 values
// with value-type arithmetic, exact comparison, exponentiation and a
// cofactor-expansion determinant.
//
// What & Why:
//
//	Square owns a single row-major buffer. Copies are explicit (Clone,
//	CopyFrom) and always deep; moves (Move, MoveFrom) transfer the buffer and
//	leave the source empty (dimension 0) but still safe to use. Every binary
//	operator returns a fresh matrix and never mutates its operands; the
//	XxxAssign methods compute the full result before replacing the receiver,
//	so a failed call never leaves a partially updated matrix.
//
// Errors:
//
//	All failures are sentinel errors matched with errors.Is: ErrInvalidArgument,
//	ErrOutOfRange, ErrDimensionMismatch, ErrDivisionByZero, ErrNilMatrix and
//	ErrEmptyMatrix (a refinement of ErrInvalidArgument).
//
// Ordering:
//
//	Greater/Less/GreaterEqual/LessEqual compare the total element Sum, not
//	the structure. Equal is exact element-wise equality.
//
// Compatibility:
//
//	Mod (matrix % matrix) multiplies element-wise; it does not compute a
//	remainder. ModScalar is the real floating-point remainder.
//
// Complexity:
//
//	At/Set/Row O(1); element-wise operators O(n²); Mul O(n³);
//	Power O(exp·n³) naive or O(log(exp)·n³) binary; Determinant O(n!).
package matrix
