// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// pivot.go — pivot selection policies for quickselect.
//
// A Pivot maps a non-empty window to the index (relative to the window) of
// the element used as the partitioning value. Returning an index rather than
// a free value guarantees the pivot is a member of the window, which is what
// makes FindKInPlace terminate.
//
// Concurrency:
//   • RandomPivot closes over a *rand.Rand, which is NOT goroutine-safe.
//     Build one policy per goroutine.

package robust

import "math/rand"

// Pivot selects the pivot index for a non-empty window.
type Pivot func(v View) int

// defaultRNGSeed seeds the per-call generator when no RNG was supplied.
// Any fixed value works: the selected order statistic does not depend on it.
const defaultRNGSeed int64 = 1

// NewRand returns a fresh deterministic generator for WithRand.
// Policy: seed==0 ⇒ defaultRNGSeed.
func NewRand(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

// rngFromSeed returns a fresh deterministic generator.
// Policy: seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomPivot samples a uniformly random index of the window using rng.
// A nil rng gets a fresh generator seeded with defaultRNGSeed.
func RandomPivot(rng *rand.Rand) Pivot {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return func(v View) int {
		return rng.Intn(v.Len())
	}
}

// FirstPivot always picks the leftmost element. Quadratic on sorted input;
// useful as an adversarial policy in tests.
func FirstPivot() Pivot {
	return func(View) int { return 0 }
}

// MiddlePivot picks the center element of the window.
func MiddlePivot() Pivot {
	return func(v View) int { return v.Len() / 2 }
}

// MedianOfThreePivot picks whichever of the first, middle and last elements
// holds the median of the three values.
func MedianOfThreePivot() Pivot {
	return func(v View) int {
		n := v.Len()
		a, b, c := 0, n/2, n-1
		x, y, z := v.At(a), v.At(b), v.At(c)
		switch {
		case (x <= y && y <= z) || (z <= y && y <= x):
			return b
		case (y <= x && x <= z) || (z <= x && x <= y):
			return a
		default:
			return c
		}
	}
}
