// Package resample estimates the sampling distribution of a summary
// statistic by bootstrap resampling.
package resample

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

var ErrInvalidParameters = errors.New("invalid bootstrap parameters")

// Statistic reduces one resample to a scalar.
type Statistic func(x []float64) float64

// Mean is the arithmetic mean.
func Mean(x []float64) float64 {
	return stat.Mean(x, nil)
}

// PopVariance is the variance with denominator len(x).
func PopVariance(x []float64) float64 {
	_, variance := stat.PopMeanVariance(x, nil)
	return variance
}

type Bootstrap struct {
	rng *rand.Rand
}

// NewBootstrap returns a resampler drawing indices from src. The caller owns
// src. A nil src is replaced by a randomly seeded PCG.
func NewBootstrap(src rand.Source) *Bootstrap {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Bootstrap{rng: rand.New(src)}
}

// Mean returns n bootstrap replicates of the mean of samples.
func (b *Bootstrap) Mean(samples []float64, n int) ([]float64, error) {
	return b.Replicate(samples, n, Mean)
}

// Variance returns n bootstrap replicates of the population variance of samples.
func (b *Bootstrap) Variance(samples []float64, n int) ([]float64, error) {
	return b.Replicate(samples, n, PopVariance)
}

// Replicate draws n resamples of samples with replacement, each the same size
// as samples, and returns fn of every resample.
func (b *Bootstrap) Replicate(samples []float64, n int, fn Statistic) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: samples must not be empty", ErrInvalidParameters)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: bootstrap count must be non-negative, got %d", ErrInvalidParameters, n)
	}

	out := make([]float64, n)
	resample := make([]float64, len(samples))
	for i := range out {
		for j := range resample {
			resample[j] = samples[b.rng.IntN(len(samples))]
		}
		out[i] = fn(resample)
	}

	return out, nil
}
