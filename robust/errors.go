// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// errors.go — sentinel errors for the robust package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with robustErrorf (%w), never baked into sentinels.
//   • View index violations are programmer errors and panic instead.

package robust

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty slice or window where at least one
	// element is required (median of nothing is undefined).
	ErrEmptyInput = errors.New("robust: input must be non-empty")

	// ErrRankOutOfRange indicates a selection rank k outside [0, len(window)).
	ErrRankOutOfRange = errors.New("robust: rank out of range")

	// ErrPivotOutOfRange indicates a Pivot policy returned an index outside
	// the window it was given.
	ErrPivotOutOfRange = errors.New("robust: pivot index out of range")

	// ErrNaNInf indicates a NaN or ±Inf value; ordering is undefined for NaN.
	ErrNaNInf = errors.New("robust: NaN or Inf encountered")
)

// Operation tags used as error context prefixes.
const (
	opFindKInPlace = "FindKInPlace"
	opMedianSigma  = "MedianSigma"
	opMedian       = "Median"
)

// robustErrorf wraps err with the operation tag: "<op>: <err>".
func robustErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
