// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for exponentiation, determinant
// diagnostics and textual output. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options never change the numeric contract of an operation; naive and
//     binary exponentiation agree exactly whenever every partial product is
//     exactly representable (e.g. small integer-valued matrices).
package matrix

// PowerStrategy selects the multiplication schedule used by Power.
type PowerStrategy int

const (
	// PowerNaive multiplies the identity by A exactly exp times (exp products).
	PowerNaive PowerStrategy = iota

	// PowerBinary uses square-and-multiply (O(log exp) products).
	PowerBinary
)

// String returns the human-readable strategy name used in debug logs.
func (s PowerStrategy) String() string {
	switch s {
	case PowerNaive:
		return "naive"
	case PowerBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPowerStrategy reproduces the reference repeated multiplication.
	DefaultPowerStrategy = PowerNaive

	// DefaultDeterminantWarnDim is the dimension from which Determinant logs a
	// warning: cofactor expansion costs O(n!) and 10! is already ~3.6M minors.
	DefaultDeterminantWarnDim = 10

	// DefaultPrecision is the number of significant digits used by String,
	// matching the default precision of a %g stream.
	DefaultPrecision = 6

	// maxPrecision is the largest meaningful number of significant digits for
	// a float64.
	maxPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPowerStrategyInvalid = "matrix: WithPowerStrategy: unknown strategy"
	panicWarnDimInvalid       = "matrix: WithDeterminantWarnDim: dimension must be >= 1"
	panicPrecisionInvalid     = "matrix: WithPrecision: precision must be in [1, 17]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	power      PowerStrategy // DefaultPowerStrategy
	detWarnDim int           // DefaultDeterminantWarnDim
	precision  int           // DefaultPrecision
}

// ---------- Constructors (WithX) ----------

// WithPowerStrategy selects the exponentiation schedule.
// Panics on values other than PowerNaive and PowerBinary.
func WithPowerStrategy(s PowerStrategy) Option {
	if s != PowerNaive && s != PowerBinary {
		panic(panicPowerStrategyInvalid)
	}

	return func(o *Options) { o.power = s }
}

// WithBinaryPower is shorthand for WithPowerStrategy(PowerBinary).
func WithBinaryPower() Option { return WithPowerStrategy(PowerBinary) }

// WithNaivePower is shorthand for WithPowerStrategy(PowerNaive) (the default).
func WithNaivePower() Option { return WithPowerStrategy(PowerNaive) }

// WithDeterminantWarnDim sets the dimension from which Determinant logs a
// cost warning.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter writing detWarnDim.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithDeterminantWarnDim(n int) Option {
	if n < 1 {
		panic(panicWarnDimInvalid)
	}

	return func(o *Options) { o.detWarnDim = n }
}

// WithPrecision sets the number of significant digits used by Format and
// FormatScalar. Panics unless 1 <= p <= 17.
func WithPrecision(p int) Option {
	if p < 1 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		power:      DefaultPowerStrategy,
		detWarnDim: DefaultDeterminantWarnDim,
		precision:  DefaultPrecision,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters are applied in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
