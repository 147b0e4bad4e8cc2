// SPDX-License-Identifier: MIT
// Package: shesd/synth
//
// config.go — options and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil ⇒ rand seeded with defaultSeed
//   • level      = 0.0
//   • amplitude  = 1.0 (pulse height)
//   • frequency  = 0.125 cycles/sample (pulse period 8)
//   • duty       = 0.5
//   • trend      = 0.0 per sample
//   • noise      = 0.0 (noiseless)
//   • spikeSign  = +1 (upward spikes; 0 ⇒ random sign)

package synth

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	level      float64
	amplitude  float64
	frequency  float64
	duty       float64
	triangular bool
	trend      float64
	noiseSigma float64
	spikeSign  int
}

const (
	defaultSeed      int64 = 1
	defaultAmplitude       = 1.0
	defaultFrequency       = 0.125
	defaultDuty            = 0.5
)

// newConfig applies options in order (last wins) and resolves the RNG.
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: defaultAmplitude,
		frequency: defaultFrequency,
		duty:      defaultDuty,
		spikeSign: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithRand shares a caller-owned generator across several generator calls.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed uses a fresh generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLevel sets the constant baseline of BuildSeries.
func WithLevel(level float64) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithAmplitude sets the pulse height (A > 0).
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}

	return func(c *config) {
		c.amplitude = a
	}
}

// WithFrequency sets the pulse frequency in cycles per sample (f0 > 0).
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}

	return func(c *config) {
		c.frequency = f0
	}
}

// WithDuty sets the rectangular pulse duty cycle in [0,1].
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("synth: WithDuty(duty∉[0,1])")
	}

	return func(c *config) {
		c.duty = duty
	}
}

// WithTriangular switches BuildPulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithTrend adds k·i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}

// WithNoise adds sigma·N(0,1) to every sample (sigma ≥ 0).
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}

	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithSpikeSign fixes spike direction: +1 up, -1 down, 0 random per spike.
func WithSpikeSign(sign int) Option {
	if sign < -1 || sign > 1 {
		panic("synth: WithSpikeSign(sign∉{-1,0,1})")
	}

	return func(c *config) {
		c.spikeSign = sign
	}
}
