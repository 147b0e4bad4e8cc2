// SPDX-License-Identifier: MIT
// Package: shesd/synth
//
// series.go — baseline generators.
//
// Contract:
//   • n < 1 ⇒ nil (no error channel, never panic).
//   • O(n) time, one O(n) allocation.

package synth

import "math"

// BuildSeries returns level + trend·i + noise·N(0,1) for i in [0,n).
func BuildSeries(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.level + cfg.trend*float64(i) + cfg.noise()
	}

	return out
}

// BuildPulse returns a pulse train with optional trend and noise.
//
// Shape (frac = (i·f0) mod 1):
//   - Rectangular: A when frac < duty, else 0.
//   - Triangular:  A·(1 − |2·frac − 1|).
func BuildPulse(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	var frac, base float64
	for i := range out {
		frac = math.Mod(float64(i)*cfg.frequency, 1)
		switch {
		case cfg.triangular:
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			base = cfg.amplitude
		default:
			base = 0
		}
		out[i] = cfg.level + base + cfg.trend*float64(i) + cfg.noise()
	}

	return out
}

// noise draws one Gaussian sample, or 0 without touching the RNG when
// noise is disabled (keeps noiseless output independent of the seed).
func (c config) noise() float64 {
	if c.noiseSigma == 0 {
		return 0
	}

	return c.noiseSigma * c.rng.NormFloat64()
}
