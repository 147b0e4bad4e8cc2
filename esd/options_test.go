package esd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shesd/robust"
)

// TestWithSeed_SharesGeneratorAcrossRounds checks that successive median
// estimations of one call draw from a single seeded stream. The leftover
// deviation order depends on every pivot drawn, so it fingerprints the stream.
func TestWithSeed_SharesGeneratorAcrossRounds(t *testing.T) {
	input := make([]float64, 64)
	for i := range input {
		input[i] = float64((i * 37) % 64)
	}
	run := func(opts []robust.Option) [][]float64 {
		out := make([][]float64, 0, 3)
		for round := 0; round < 3; round++ {
			buf := append([]float64(nil), input...)
			_, _, err := robust.MedianSigmaInPlace(buf, opts...)
			require.NoError(t, err)
			out = append(out, buf)
		}

		return out
	}

	cfg := newConfig(WithSeed(7))
	shared := robust.NewRand(7)

	assert.Equal(t, run([]robust.Option{robust.WithRand(shared)}), run(cfg.robust))
}
