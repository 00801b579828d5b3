// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction and
// approximate comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The decomposition kernels (RowEchelon, Determinant, Inverse, Rank) take
//     no options: pivot and singularity tests are exact by contract.
//   - Options affect: the numeric policy of newly created Dense values
//     (NewDense, FromRows) and the tolerances of AllClose.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultRelTolerance is the relative tolerance used by AllClose.
	DefaultRelTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply/FromRows.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelTolerance: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	rtol           float64 // >= 0; DefaultRelTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelTolerance returns the resolved relative tolerance.
func (o Options) RelTolerance() float64 { return o.rtol }

// ValidateNaNInf reports whether new matrices reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the absolute tolerance used by AllClose.
//
// Errors:
//   - Panics with a stable message when eps is negative or non-finite.
//
// AI-Hints:
//   - 1e-9 suits double-precision results of small closed-form kernels;
//     float32 data usually needs ~1e-5.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTolerance sets the relative tolerance used by AllClose
// (|a-b| ≤ eps + rtol*|b|).
//
// Errors:
//   - Panics with a stable message when rtol is negative or non-finite.
func WithRelTolerance(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Useful for inspecting the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		rtol:           DefaultRelTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
