// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCellOpen  = "[ "
	_fmtCellClose = " ]"
	_fmtRowClose  = "\n"

	_fmtNaN    = "nan"
	_fmtPosInf = "inf"
	_fmtNegInf = "-inf"
)

// String renders m one row per line, every element as "[ v ]" with no
// separator between columns, e.g. "[ 1 ][ 2 ]\n[ 3 ][ 4 ]\n".
// Values use DefaultPrecision significant digits in %g style. An empty
// matrix renders as "".
func (m *Square) String() string { return Format(m) }

// Format renders m like String with the given options (WithPrecision).
// Complexity: O(n²).
func Format(m *Square, opts ...Option) string {
	if m.IsEmpty() {
		return ""
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(_fmtCellOpen)
			b.WriteString(formatValue(m.data[base+j], o.precision))
			b.WriteString(_fmtCellClose)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// FormatScalar formats a single value exactly as it appears inside a cell.
func FormatScalar(v float64, opts ...Option) string {
	return formatValue(v, gatherOptions(opts...).precision)
}

// formatValue mirrors the default stream output of a double: %g with prec
// significant digits, trailing zeros dropped, and lower-case nan/inf.
func formatValue(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return _fmtNaN
	case math.IsInf(v, 1):
		return _fmtPosInf
	case math.IsInf(v, -1):
		return _fmtNegInf
	}

	return strconv.FormatFloat(v, 'g', prec, 64)
}
