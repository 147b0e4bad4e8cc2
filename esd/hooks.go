// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// hooks.go — per-round observation points for Detect.

package esd

// Outcome classifies how a round ended.
type Outcome int

const (
	// Continue — the round's candidate was confirmed as an anomaly.
	Continue Outcome = iota

	// StopDegenerate — σ of the remaining data is 0 (constant values).
	StopDegenerate

	// StopBelowThreshold — the candidate's score did not exceed λ.
	StopBelowThreshold

	// StopNoDegrees — no Student-t degrees of freedom remain (n−i−1 ≤ 0).
	StopNoDegrees
)

// String returns a short snake_case name for logs.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case StopDegenerate:
		return "stop_degenerate"
	case StopBelowThreshold:
		return "stop_below_threshold"
	case StopNoDegrees:
		return "stop_no_degrees"
	default:
		return "unknown"
	}
}

// Round describes one evaluated round of Detect.
//
// Position is the candidate's index in the original observation slice, or -1
// when the round stopped before a candidate was chosen (StopDegenerate).
// Critical is 0 when no critical value could be computed.
type Round struct {
	Index    int // 1-based round number
	Position int
	Value    float64
	Median   float64
	Sigma    float64
	Score    float64
	Critical float64
	Outcome  Outcome
}

// Hooks lets callers observe Detect without changing its result.
// Nil fields are skipped.
type Hooks struct {
	// OnRound is called once per evaluated round, including the final one.
	OnRound func(Round)
}

func (h Hooks) round(r Round) {
	if h.OnRound != nil {
		h.OnRound(r)
	}
}
