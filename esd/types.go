// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// types.go — observations, tail selection and test parameters.

package esd

import (
	"fmt"
	"strings"
)

// Tail selects which side of the distribution counts as anomalous.
//
//   - BothTails — |v − median| / σ (two-sided test; the zero value).
//   - UpperTail — (v − median) / σ (only unusually high values).
//   - LowerTail — (median − v) / σ (only unusually low values).
type Tail int

const (
	// BothTails flags deviations in either direction.
	BothTails Tail = iota

	// UpperTail flags only values above the median.
	UpperTail

	// LowerTail flags only values below the median.
	LowerTail
)

// Canonical text forms used by String, MarshalText and UnmarshalText.
const (
	tailBoth  = "both"
	tailUpper = "upper"
	tailLower = "lower"
)

// String returns "both", "upper" or "lower" (or "Tail(n)" for unknown values).
func (t Tail) String() string {
	switch t {
	case BothTails:
		return tailBoth
	case UpperTail:
		return tailUpper
	case LowerTail:
		return tailLower
	default:
		return fmt.Sprintf("Tail(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tail) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, ErrUnknownTail
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive; "two-sided" is accepted as an alias of "both".
func (t *Tail) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case tailBoth, "two-sided":
		*t = BothTails
	case tailUpper:
		*t = UpperTail
	case tailLower:
		*t = LowerTail
	default:
		return fmt.Errorf("%q: %w", text, ErrUnknownTail)
	}

	return nil
}

func (t Tail) valid() bool {
	return t == BothTails || t == UpperTail || t == LowerTail
}

// Observation is one labeled value. Labels are opaque: Detect never compares
// or orders them, so duplicates are allowed.
type Observation[L any] struct {
	Label L
	Value float64
}

// Parameter configures the test. It is plain immutable data.
//
// Fields:
//   - K     — maximum fraction of the data that may be flagged, in (0,1).
//     Detect runs at most ⌊n·K⌋ rounds.
//   - Alpha — significance level in (0,1). Smaller ⇒ stricter, fewer anomalies.
//   - Tail  — which deviations count (see Tail).
type Parameter struct {
	K     float64
	Alpha float64
	Tail  Tail
}

// Documented defaults.
const (
	DefaultK     = 0.49
	DefaultAlpha = 0.05
)

// DefaultParameter returns {K: 0.49, Alpha: 0.05, Tail: BothTails}.
func DefaultParameter() Parameter {
	return Parameter{K: DefaultK, Alpha: DefaultAlpha, Tail: BothTails}
}

// Validate checks K, Alpha and Tail in that order and returns the first
// violated sentinel. NaN fails both interval checks.
func (p Parameter) Validate() error {
	if !(p.K > 0 && p.K < 1) {
		return esdErrorf(opValidate, fmt.Errorf("k=%v: %w", p.K, ErrInvalidK))
	}
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return esdErrorf(opValidate, fmt.Errorf("alpha=%v: %w", p.Alpha, ErrInvalidAlpha))
	}
	if !p.Tail.valid() {
		return esdErrorf(opValidate, fmt.Errorf("tail=%d: %w", int(p.Tail), ErrUnknownTail))
	}

	return nil
}

// MaxOutliers returns ⌊n·K⌋, the number of rounds Detect may run on n points.
func (p Parameter) MaxOutliers(n int) int {
	if n <= 0 {
		return 0
	}

	return int(float64(n) * p.K)
}
