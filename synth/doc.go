// Package synth generates deterministic synthetic series with planted
// anomalies, for tests, examples and benchmarks of the esd detector.
//
// ✨ Generators:
//   - BuildSeries  — level + linear trend + Gaussian noise
//   - BuildPulse   — rectangular or triangular pulse train (+ trend, noise)
//   - InjectSpikes — add ±magnitude spikes at distinct random positions
//
// Every generator is reproducible for the same (n, options, seed): no global
// state, no time-based sources.
//
//	xs := synth.BuildSeries(200, synth.WithSeed(1), synth.WithNoise(0.5))
//	pos, err := synth.InjectSpikes(xs, 3, 10, synth.WithSeed(2))
package synth
