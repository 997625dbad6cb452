package ring_test

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/tfhe-core/ring"
	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

func newTestPRNG(t *testing.T) sampling.PRNG {
	t.Helper()
	key := make([]byte, sampling.SeedSize)
	for i := range key {
		key[i] = byte(i * 7)
	}
	prng, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	return prng
}

func TestUniformSamplerBitsAreZeroOrOne(t *testing.T) {
	s := ring.NewUniformSampler(newTestPRNG(t))
	for _, b := range s.ReadBits(1000) {
		require.True(t, b == 0 || b == 1)
	}
}

func TestUniformSamplerSpread(t *testing.T) {
	s := ring.NewUniformSampler(newTestPRNG(t))
	seen := map[uint64]bool{}
	for i := 0; i < 64; i++ {
		seen[s.Read().Bits()] = true
	}
	require.Greater(t, len(seen), 1, "uniform draws should not collapse to a single value")
}

func TestGaussianSamplerEmpiricalStats(t *testing.T) {
	// spec §8: noise must stay well under 1/(2p) for reasonable p; check
	// the empirical distribution of decoded noise is centered near 0 and
	// has bounded spread, using montanaflynn/stats per SPEC_FULL §4.
	sigma := 1.0 / 1024.0
	g := ring.NewGaussianSampler(newTestPRNG(t), sigma)

	p := uint64(1) << 16
	samples := make([]float64, 2000)
	for i := range samples {
		e := g.Read()
		r := e.ToReal(p)
		if r > 0.5 {
			r -= 1 // unwrap onto (-0.5, 0.5] for a meaningful mean/stddev
		}
		samples[i] = r
	}

	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 0.01)

	stddev, err := stats.StandardDeviation(samples)
	require.NoError(t, err)
	require.Less(t, stddev, 5*sigma)
}
