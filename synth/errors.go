// SPDX-License-Identifier: MIT
// Package: shesd/synth
//
// errors.go — sentinel errors for the synth package.
//
// Series builders return nil on invalid sizes (they have no error channel);
// InjectSpikes reports through these sentinels.

package synth

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative spike count or an empty series.
var ErrBadSize = errors.New("synth: invalid size/length")

// ErrTooManySpikes indicates more spikes than positions in the series.
var ErrTooManySpikes = errors.New("synth: more spikes than samples")

// MethodInjectSpikes tags errors returned by InjectSpikes.
const MethodInjectSpikes = "InjectSpikes"

// synthErrorf prefixes err with the method name, keeping it matchable.
func synthErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
