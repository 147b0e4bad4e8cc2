// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// errors.go — sentinel errors for the esd package.
//
// Configuration errors are reported before any computation. Degenerate data
// (σ = 0) is not an error: Detect stops and returns what it has.

package esd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK indicates Parameter.K outside the open interval (0,1).
	ErrInvalidK = errors.New("esd: k must be in (0,1)")

	// ErrInvalidAlpha indicates Parameter.Alpha outside the open interval (0,1).
	ErrInvalidAlpha = errors.New("esd: alpha must be in (0,1)")

	// ErrUnknownTail indicates a Tail value other than BothTails, UpperTail
	// or LowerTail.
	ErrUnknownTail = errors.New("esd: unknown tail")

	// ErrNaNInf indicates an observation value that is NaN or ±Inf.
	ErrNaNInf = errors.New("esd: NaN or Inf observation")
)

// Operation tags used as error context prefixes.
const (
	opDetect        = "Detect"
	opLoadParameter = "LoadParameter"
	opValidate      = "Validate"
)

// esdErrorf wraps err with the operation tag: "<op>: <err>".
func esdErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
