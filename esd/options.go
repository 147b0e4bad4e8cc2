// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// options.go — functional options for Detect.
//
// Deterministic defaults:
//   • median estimator: robust defaults (random pivot, fresh seeded RNG)
//   • quantile:         StudentTQuantile
//   • hooks:            none
//
// WithX constructors panic on nil arguments (programmer error).

package esd

import (
	"math/rand"

	"github.com/katalvlaran/shesd/robust"
)

// Option customizes a Detect call.
type Option func(*config)

type config struct {
	robust   []robust.Option
	quantile QuantileFunc
	hooks    Hooks
}

// newConfig applies opts in order; later options win.
func newConfig(opts ...Option) config {
	cfg := config{quantile: StudentTQuantile}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPivot sets the quickselect pivot policy of the median estimator.
// Deterministic policies make every comparison reproducible.
func WithPivot(p robust.Pivot) Option {
	if p == nil {
		panic("esd: WithPivot(nil)")
	}

	return func(c *config) {
		c.robust = append(c.robust, robust.WithPivot(p))
	}
}

// WithRand sets the generator behind the default random pivot. It is used
// for every round of the call; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("esd: WithRand(nil)")
	}

	return func(c *config) {
		c.robust = append(c.robust, robust.WithRand(r))
	}
}

// WithSeed seeds the generator behind the default random pivot. One
// generator is built per Detect call and shared by all of its rounds
// (seed==0 ⇒ the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.robust = append(c.robust, robust.WithRand(robust.NewRand(seed)))
	}
}

// WithQuantile replaces the Student-t inverse CDF (e.g. with a cached table
// or a lower-precision approximation).
func WithQuantile(q QuantileFunc) Option {
	if q == nil {
		panic("esd: WithQuantile(nil)")
	}

	return func(c *config) {
		c.quantile = q
	}
}

// WithHooks installs round observers.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}
