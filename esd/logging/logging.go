// SPDX-License-Identifier: MIT
// Package: shesd/esd/logging
//
// logging.go — logrus adapter for Detect rounds.

// Package logging adapts esd round events to structured logrus entries.
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	labels, err := esd.Detect(obs, p, esd.WithHooks(logging.NewHooks(log)))
//
// Confirmed anomalies are logged at Info, every other round at Debug.
package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/shesd/esd"
)

// Field keys shared by every entry.
const (
	FieldRound    = "round"
	FieldPosition = "position"
	FieldValue    = "value"
	FieldMedian   = "median"
	FieldSigma    = "sigma"
	FieldScore    = "score"
	FieldCritical = "critical"
	FieldOutcome  = "outcome"
)

// Messages per outcome.
const (
	MessageAnomaly = "anomaly confirmed"
	MessageStopped = "esd stopped"
)

// NewHooks returns esd.Hooks that log every round to log.
func NewHooks(log logrus.FieldLogger) esd.Hooks {
	return esd.Hooks{OnRound: func(r esd.Round) {
		entry := log.WithFields(Fields(r))
		if r.Outcome == esd.Continue {
			entry.Info(MessageAnomaly)

			return
		}
		entry.Debug(MessageStopped)
	}}
}

// Fields renders a round as logrus fields. Position and score fields are
// omitted for degenerate rounds, which never pick a candidate.
func Fields(r esd.Round) logrus.Fields {
	f := logrus.Fields{
		FieldRound:   r.Index,
		FieldMedian:  r.Median,
		FieldSigma:   r.Sigma,
		FieldOutcome: r.Outcome.String(),
	}
	if r.Outcome == esd.StopDegenerate {
		return f
	}
	f[FieldPosition] = r.Position
	f[FieldValue] = r.Value
	f[FieldScore] = r.Score
	if r.Outcome != esd.StopNoDegrees {
		f[FieldCritical] = r.Critical
	}

	return f
}
