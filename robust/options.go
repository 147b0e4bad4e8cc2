// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// options.go — functional options for MedianSigma / Median.
//
// Deterministic defaults:
//   • pivot = nil ⇒ RandomPivot over rng
//   • rng   = nil ⇒ fresh generator seeded with defaultRNGSeed per call
//
// WithX constructors panic on nil arguments (programmer error), never at
// computation time.

package robust

import "math/rand"

// Option customizes a MedianSigma / Median call.
type Option func(*config)

// config is resolved once per call and passed by value.
type config struct {
	pivot Pivot
	rng   *rand.Rand
}

// newConfig applies opts in order (last wins) and resolves the pivot policy.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pivot == nil {
		cfg.pivot = RandomPivot(cfg.rng)
	}

	return cfg
}

// WithPivot replaces the pivot policy (e.g. FirstPivot for reproducible
// comparison sequences). Overrides any RNG-based default.
func WithPivot(p Pivot) Option {
	if p == nil {
		panic("robust: WithPivot(nil)")
	}

	return func(c *config) {
		c.pivot = p
	}
}

// WithRand sets the generator used by the default RandomPivot.
// The caller keeps ownership; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("robust: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes the default RandomPivot draw from a generator seeded with
// seed (0 ⇒ defaultRNGSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}
