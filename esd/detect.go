// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// detect.go — the S-H-ESD iteration.

package esd

import (
	"math"

	"github.com/katalvlaran/shesd/robust"
)

// Detect returns the labels of the observations judged anomalous, most
// extreme first (discovery order, not input order).
//
// Algorithm Outline:
//  1. Validate p, reject non-finite values. n = len(obs), rounds ≤ ⌊n·K⌋.
//  2. Round i: (m, σ) = robust median/scaled-MAD of the working set.
//     σ ≤ 0 ⇒ stop (StopDegenerate).
//  3. Score each remaining point by p.Tail and pick the maximum; on ties the
//     earliest remaining point wins. Remove it from the working set by
//     position, so duplicate labels never cause extra removals.
//  4. λ from the Student-t quantile (see criticalValue). No degrees of
//     freedom left ⇒ stop (StopNoDegrees).
//  5. score > λ ⇒ record the label and continue; else stop
//     (StopBelowThreshold). Only recorded labels are returned.
//
// obs is never modified. Each call owns its scratch buffers.
//
// Errors (returned before any computation):
//   - ErrInvalidK, ErrInvalidAlpha, ErrUnknownTail — from p.Validate.
//   - ErrNaNInf — an observation value is NaN or ±Inf.
//
// Complexity:
//
//	Time   = O(r·n) expected for r executed rounds
//	Memory = O(n)
func Detect[L any](obs []Observation[L], p Parameter, opts ...Option) ([]L, error) {
	// Stage 1 (Validate): configuration first, then data.
	if err := p.Validate(); err != nil {
		return nil, esdErrorf(opDetect, err)
	}
	for _, o := range obs {
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return nil, esdErrorf(opDetect, ErrNaNInf)
		}
	}

	// Stage 2 (Prepare): working set of original positions plus one scratch
	// buffer reused by the median estimator on every round.
	n := len(obs)
	maxOutliers := p.MaxOutliers(n)
	anomalies := make([]L, 0, maxOutliers)
	if maxOutliers == 0 {
		return anomalies, nil
	}

	cfg := newConfig(opts...)
	work := make([]int, n)
	for i := range work {
		work[i] = i
	}
	scratch := make([]float64, 0, n)

	// Stage 3 (Iterate).
	for i := 1; i <= maxOutliers; i++ {
		scratch = scratch[:0]
		for _, pos := range work {
			scratch = append(scratch, obs[pos].Value)
		}
		median, sigma, err := robust.MedianSigmaInPlace(scratch, cfg.robust...)
		if err != nil {
			return nil, esdErrorf(opDetect, err)
		}

		r := Round{Index: i, Position: -1, Median: median, Sigma: sigma}
		if sigma <= 0 {
			r.Outcome = StopDegenerate
			cfg.hooks.round(r)

			break
		}

		best, score := maxScore(obs, work, median, sigma, p.Tail)
		r.Position = work[best]
		r.Value = obs[r.Position].Value
		r.Score = score
		work = append(work[:best], work[best+1:]...)

		lam, ok := criticalValue(n, i, p.Alpha, p.Tail, cfg.quantile)
		if !ok {
			r.Outcome = StopNoDegrees
			cfg.hooks.round(r)

			break
		}
		r.Critical = lam

		if score <= lam {
			r.Outcome = StopBelowThreshold
			cfg.hooks.round(r)

			break
		}

		r.Outcome = Continue
		cfg.hooks.round(r)
		anomalies = append(anomalies, obs[r.Position].Label)
	}

	return anomalies, nil
}

// maxScore returns the index into work of the highest-scoring observation and
// its score. Strict comparison keeps the first maximum encountered.
func maxScore[L any](obs []Observation[L], work []int, median, sigma float64, tail Tail) (best int, score float64) {
	score = math.Inf(-1)
	for j, pos := range work {
		s := deviation(obs[pos].Value, median, sigma, tail)
		if s > score {
			best, score = j, s
		}
	}

	return best, score
}

// deviation is the normalized distance of v from median in the tested
// direction(s).
func deviation(v, median, sigma float64, tail Tail) float64 {
	switch tail {
	case UpperTail:
		return (v - median) / sigma
	case LowerTail:
		return (median - v) / sigma
	default:
		return math.Abs(v-median) / sigma
	}
}
