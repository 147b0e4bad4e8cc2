// SPDX-License-Identifier: MIT
// Package: shesd/synth
//
// spikes.go — plant anomalies into an existing series.

package synth

// InjectSpikes adds a spike of size magnitude to count distinct, randomly
// chosen samples of values (in place) and returns their positions in the
// order they were planted.
//
// Direction follows WithSpikeSign: +1 (default) adds, -1 subtracts, 0 picks
// a random sign per spike.
//
// Errors:
//   - ErrBadSize       — count < 0 or values is empty.
//   - ErrTooManySpikes — count > len(values).
//
// Complexity: O(n) time and memory (partial Fisher–Yates over positions).
func InjectSpikes(values []float64, count int, magnitude float64, opts ...Option) ([]int, error) {
	if count < 0 || len(values) == 0 {
		return nil, synthErrorf(MethodInjectSpikes, ErrBadSize)
	}
	if count > len(values) {
		return nil, synthErrorf(MethodInjectSpikes, ErrTooManySpikes)
	}
	cfg := newConfig(opts...)

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}

	positions := make([]int, count)
	var j int
	for i := 0; i < count; i++ {
		j = i + cfg.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		positions[i] = idx[i]

		sign := float64(cfg.spikeSign)
		if cfg.spikeSign == 0 {
			sign = 1
			if cfg.rng.Intn(2) == 0 {
				sign = -1
			}
		}
		values[idx[i]] += sign * magnitude
	}

	return positions, nil
}
