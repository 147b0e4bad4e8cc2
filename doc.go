// Package shesd detects anomalies in residual time series with the Seasonal
// Hybrid Extreme Studentized Deviate test (S-H-ESD).
//
// 🚀 What is inside?
//
//	robust/      — quickselect over windowed views, exact median and
//	               MAD-based sigma without sorting
//	esd/         — the iterative generalized ESD test over labeled
//	               observations, Student-t critical values, YAML parameters
//	esd/logging/ — logrus adapter for per-round diagnostics
//	synth/       — reproducible synthetic series with planted spikes
//
// ✨ Why robust statistics?
//
//	Mean and standard deviation are dragged by the very outliers the test is
//	looking for. Median and MAD are not, so a single huge spike cannot mask
//	smaller ones.
//
// Seasonal decomposition is out of scope: feed Detect the residual after
// removing trend and seasonality.
//
//	go get github.com/katalvlaran/shesd
package shesd
