// Package robust computes outlier-resistant location and scale estimates
// (median and scaled Median Absolute Deviation) without sorting.
//
// 🚀 What is inside?
//
//	• View        — a non-owning window [from, until) over a []float64 with
//	                in-place two-way partitioning.
//	• FindKInPlace — quickselect: the k-th largest value of a window in
//	                expected linear time, with a pluggable Pivot policy.
//	• MedianSigma — exact median plus sigma = 1.4826 × MAD, the MAD scaled to
//	                be a consistent estimator of the standard deviation under
//	                normality.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shesd/robust"
//
//	med, sigma, err := robust.MedianSigma(values, robust.WithSeed(7))
//	if err != nil {
//	  // ErrEmptyInput or ErrNaNInf
//	}
//
// Pivot policies:
//
//	RandomPivot(rng)     — uniform index (default; seeded, never global state)
//	FirstPivot()         — leftmost element (deterministic, adversarial-friendly)
//	MiddlePivot()        — center element
//	MedianOfThreePivot() — median of first/middle/last
//
// The selected value never depends on the pivot policy; only the number of
// comparisons does.
//
// Performance:
//
//   - FindKInPlace: O(n) expected, O(n²) worst case, O(1) extra memory.
//   - MedianSigma:  O(n) expected, one O(n) scratch copy.
package robust
