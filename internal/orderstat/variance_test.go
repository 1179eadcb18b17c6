package orderstat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedValueCovariance_Symmetric(t *testing.T) {
	const n = 40
	for r := 1; r <= n; r += 3 {
		for s := 1; s <= n; s += 5 {
			rs, err := SelectedValueCovariance(r, s, 2, 0.7, n)
			require.NoError(t, err)
			sr, err := SelectedValueCovariance(s, r, 2, 0.7, n)
			require.NoError(t, err)
			assert.Equal(t, rs, sr, "r=%d s=%d", r, s)
		}
	}
}

func TestSelectedValueCovariance_SymmetricBitForBit(t *testing.T) {
	rs, err := SelectedValueCovariance(40, 16, 1, 0.3, 50)
	require.NoError(t, err)
	sr, err := SelectedValueCovariance(16, 40, 1, 0.3, 50)
	require.NoError(t, err)
	if rs != sr {
		t.Fatalf("cov(40,16)=%v, cov(16,40)=%v", rs, sr)
	}
}

func TestSelectedValueCovariance_EqualRanksIsVariance(t *testing.T) {
	v, err := SelectedValueVariance(17, 1.5, 0.3, 20)
	require.NoError(t, err)
	c, err := SelectedValueCovariance(17, 17, 1.5, 0.3, 20)
	require.NoError(t, err)
	assert.Equal(t, v, c)
}

func TestSelectedValueVariance_NoiselessHasNoResidual(t *testing.T) {
	// With no noise only the order statistic sampling variance remains.
	got, err := SelectedValueVariance(50, 1, 0, 99)
	require.NoError(t, err)
	// median of 99: 50*50/(100^2*101)/φ(0)^2
	want := 2500.0 / (10000.0 * 101.0) / (0.3989422804014327 * 0.3989422804014327)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSelectedValueVariance_PureNoiseIsResidual(t *testing.T) {
	// The regression term vanishes relative to the residual as noise dominates.
	got, err := SelectedValueVariance(5, 1, 1e6, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-3)
}

func TestSelectedMeanVariance_NonNegative(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		for _, m := range []int{1, n / 2, n} {
			if m < 1 {
				continue
			}
			for _, eps := range []float64{0, 0.01, 1, 25} {
				t.Run(fmt.Sprintf("n%d_m%d_eps%v", n, m, eps), func(t *testing.T) {
					got, err := SelectedMeanVariance(1.3, eps, n, m)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, got, 0.0)
				})
			}
		}
	}
}

func TestSelectedMeanVariance_SingleSelectionIsRankVariance(t *testing.T) {
	v, err := SelectedValueVariance(30, 2, 0.5, 30)
	require.NoError(t, err)
	got, err := SelectedMeanVariance(2, 0.5, 30, 1)
	require.NoError(t, err)
	assert.InDelta(t, v, got, 1e-15)
}

func TestSelectedMeanVariance_SumsPairwiseTerms(t *testing.T) {
	const (
		n   = 12
		m   = 4
		sx  = 1.0
		eps = 0.25
	)
	acc := 0.0
	for r := n - m + 1; r <= n; r++ {
		for s := n - m + 1; s <= n; s++ {
			c, err := SelectedValueCovariance(r, s, sx, eps, n)
			require.NoError(t, err)
			acc += c
		}
	}

	got, err := SelectedMeanVariance(sx, eps, n, m)
	require.NoError(t, err)
	assert.InDelta(t, acc/(m*m), got, 1e-12)
}

func TestSelectedValueVariance_InvalidRank(t *testing.T) {
	_, err := SelectedValueVariance(0, 1, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = SelectedValueCovariance(3, 11, 1, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func BenchmarkSelectedMeanVariance(b *testing.B) {
	for b.Loop() {
		_, _ = SelectedMeanVariance(1, 0.5, 1000, 100)
	}
}
