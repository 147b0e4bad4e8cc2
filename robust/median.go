// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// median.go — exact median and MAD-based sigma via quickselect.

package robust

import "math"

// MADScale turns a Median Absolute Deviation into a consistent estimator of
// the standard deviation for normally distributed data (1/Φ⁻¹(3/4)).
const MADScale = 1.4826

// MedianSigma returns the exact median of values and
// sigma = MADScale × median(|xᵢ − median|).
//
// values is never modified; the work happens on a private copy.
// sigma is 0 when values are constant: callers must treat that as
// "cannot normalize" rather than dividing by it.
//
// Errors:
//   - ErrEmptyInput — len(values) == 0.
//   - ErrNaNInf     — any value is NaN or ±Inf.
//
// Complexity: O(n) expected time, O(n) memory for the copy.
func MedianSigma(values []float64, opts ...Option) (median, sigma float64, err error) {
	buf := make([]float64, len(values))
	copy(buf, values)

	return MedianSigmaInPlace(buf, opts...)
}

// MedianSigmaInPlace is MedianSigma working directly on buf.
// On return buf holds the absolute deviations from the median, in
// unspecified order.
func MedianSigmaInPlace(buf []float64, opts ...Option) (median, sigma float64, err error) {
	if err = validateFinite(buf); err != nil {
		return 0, 0, robustErrorf(opMedianSigma, err)
	}
	cfg := newConfig(opts...)

	// Stage 1: location.
	median, err = medianOf(NewView(buf), cfg.pivot)
	if err != nil {
		return 0, 0, robustErrorf(opMedianSigma, err)
	}

	// Stage 2: absolute deviations overwrite the buffer (order is irrelevant).
	for i, x := range buf {
		buf[i] = math.Abs(x - median)
	}

	// Stage 3: scale.
	mad, err := medianOf(NewView(buf), cfg.pivot)
	if err != nil {
		return 0, 0, robustErrorf(opMedianSigma, err)
	}

	return median, MADScale * mad, nil
}

// Median returns the exact median of values without modifying them.
func Median(values []float64, opts ...Option) (float64, error) {
	if err := validateFinite(values); err != nil {
		return 0, robustErrorf(opMedian, err)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	m, err := medianOf(NewView(buf), newConfig(opts...).pivot)
	if err != nil {
		return 0, robustErrorf(opMedian, err)
	}

	return m, nil
}

// medianOf selects the central order statistic, or averages the two central
// ones for an even-length window. Ranks are descending, which is symmetric
// around the center, so the result equals the ascending definition.
func medianOf(v View, pivot Pivot) (float64, error) {
	n := v.Len()
	if n == 0 {
		return 0, ErrEmptyInput
	}

	below, err := FindKInPlace(v, n/2, pivot)
	if err != nil {
		return 0, err
	}
	if n%2 == 1 {
		return below, nil
	}

	above, err := FindKInPlace(v, n/2-1, pivot)
	if err != nil {
		return 0, err
	}

	return midpoint(below, above), nil
}

// midpoint averages a and b without overflowing for finite inputs: a sum is
// safe when the signs differ, a difference when they agree.
func midpoint(a, b float64) float64 {
	if (a < 0) != (b < 0) {
		return (a + b) / 2
	}

	return a + (b-a)/2
}

// validateFinite rejects empty input and NaN/±Inf values.
//
// Finite inputs are accepted across the whole float64 range. The median
// never overflows, but a deviation |x − median| between values of opposite sign
// near ±math.MaxFloat64 can still round to +Inf, and so can sigma.
func validateFinite(values []float64) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for _, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
