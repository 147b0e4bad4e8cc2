// Package esd detects anomalies with the Seasonal Hybrid Extreme Studentized
// Deviate test (S-H-ESD): a generalized ESD test whose location and scale are
// the median and the scaled MAD instead of mean and standard deviation.
//
// 🚀 How it works
//
//	For round i = 1..⌊n·K⌋:
//	  1. (m, σ) = robust.MedianSigma(remaining values); σ = 0 ⇒ stop.
//	  2. Score every remaining point ((v−m)/σ, (m−v)/σ or |v−m|/σ by Tail).
//	  3. Remove the highest-scoring point.
//	  4. λ = t·(n−i) / sqrt((n−i+1+t²)·(n−i+1)),
//	     t = Student-t quantile with n−i−1 degrees of freedom.
//	  5. score > λ ⇒ anomaly, next round; otherwise stop.
//
// Seasonality and trend must already be removed by the caller; Detect sees a
// residual series.
//
// ⚙️ Usage:
//
//	obs := []esd.Observation[string]{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 100}}
//	p := esd.DefaultParameter()
//	p.K = 0.5
//	labels, err := esd.Detect(obs, p)
//	// labels == ["e"]
//
// Options select the pivot policy and RNG of the median estimator
// (WithPivot, WithSeed, WithRand), replace the Student-t quantile
// (WithQuantile), or observe every round (WithHooks; see esd/logging).
//
// Parameters can be loaded from YAML with LoadParameter.
package esd
