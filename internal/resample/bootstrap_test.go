package resample

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestBootstrap_ConstantInput(t *testing.T) {
	b := NewBootstrap(rand.NewPCG(1, 2))
	for _, size := range []int{1, 2, 17} {
		samples := make([]float64, size)
		for i := range samples {
			samples[i] = 3.25
		}
		for _, n := range []int{0, 1, 50} {
			means, err := b.Mean(samples, n)
			require.NoError(t, err)
			require.Len(t, means, n)
			for _, m := range means {
				assert.InDelta(t, 3.25, m, 1e-12)
			}

			vars, err := b.Variance(samples, n)
			require.NoError(t, err)
			require.Len(t, vars, n)
			for _, v := range vars {
				assert.InDelta(t, 0.0, v, 1e-12)
			}
		}
	}
}

func TestBootstrap_ReplicatesDrawFromSamples(t *testing.T) {
	b := NewBootstrap(rand.NewPCG(5, 5))
	samples := []float64{-1, 4}
	got, err := b.Replicate(samples, 200, func(x []float64) float64 {
		for _, v := range x {
			if v != -1 && v != 4 {
				return math.NaN()
			}
		}
		return float64(len(x))
	})
	require.NoError(t, err)
	for _, v := range got {
		assert.Equal(t, 2.0, v)
	}
}

func TestBootstrap_MeanDistributionCentresOnSampleMean(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 3))
	samples := make([]float64, 400)
	for i := range samples {
		samples[i] = 2 + 3*rng.NormFloat64()
	}

	means, err := NewBootstrap(rand.NewPCG(8, 8)).Mean(samples, 2000)
	require.NoError(t, err)

	assert.InDelta(t, stat.Mean(samples, nil), stat.Mean(means, nil), 0.02)
	// standard error of the mean ≈ sd/sqrt(n)
	assert.InDelta(t, stat.StdDev(samples, nil)/20, StandardError(means), 0.02)
}

func TestBootstrap_VarianceUsesPopulationDenominator(t *testing.T) {
	assert.InDelta(t, 1.0, PopVariance([]float64{1, 3}), 1e-12)
	assert.InDelta(t, 2.0, Mean([]float64{1, 3}), 1e-12)
}

func TestBootstrap_SeededIsReproducible(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5}
	a, err := NewBootstrap(rand.NewPCG(9, 1)).Variance(samples, 100)
	require.NoError(t, err)
	b, err := NewBootstrap(rand.NewPCG(9, 1)).Variance(samples, 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBootstrap_InvalidParameters(t *testing.T) {
	b := NewBootstrap(nil)

	_, err := b.Mean(nil, 10)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = b.Variance([]float64{1}, -1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestPercentileCI(t *testing.T) {
	dist := make([]float64, 100)
	for i := range dist {
		dist[99-i] = float64(i + 1)
	}

	ci, err := PercentileCI(dist, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ci.Lower, 1)
	assert.InDelta(t, 95.0, ci.Upper, 1)
	assert.Equal(t, 0.9, ci.Level)
	assert.Equal(t, 1.0, dist[99], "input must not be reordered")

	_, err = PercentileCI(nil, 0.9)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = PercentileCI(dist, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestStandardError_ShortInput(t *testing.T) {
	assert.Equal(t, 0.0, StandardError([]float64{4}))
}
