// SPDX-License-Identifier: MIT
// Package: shesd/esd
//
// critical.go — ESD critical values from the Student-t distribution.

package esd

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileFunc returns the p-quantile (inverse CDF) of a standard Student-t
// distribution with df degrees of freedom. df is always > 0 when called.
type QuantileFunc func(df, p float64) float64

// StudentTQuantile is the default QuantileFunc backed by gonum's
// distuv.StudentsT (location 0, scale 1).
func StudentTQuantile(df, p float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// criticalValue returns λ for round i (1-based) of a test on n points.
//
//	prob = 1 − α/(2(n−i+1))  (BothTails)
//	prob = 1 − α/(n−i+1)     (UpperTail, LowerTail)
//	t    = quantile(n−i−1, prob)
//	λ    = t·(n−i) / sqrt((n−i+1+t²)·(n−i+1))
//
// ok is false when there are no degrees of freedom left (n−i−1 ≤ 0) or the
// quantile is not finite; the round then cannot reject and Detect stops.
func criticalValue(n, i int, alpha float64, tail Tail, quantile QuantileFunc) (lam float64, ok bool) {
	df := float64(n - i - 1)
	if df <= 0 {
		return 0, false
	}

	rem := float64(n - i + 1)
	prob := 1 - alpha/rem
	if tail == BothTails {
		prob = 1 - alpha/(2*rem)
	}

	t := quantile(df, prob)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}

	lam = t * float64(n-i) / math.Sqrt((rem+t*t)*rem)

	return lam, true
}
