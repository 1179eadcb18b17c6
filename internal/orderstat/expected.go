// Package orderstat approximates the moments of the mean true value of the
// top-M items selected by a noisy normal observation, using asymptotic
// normal order statistics.
package orderstat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExpectedTopMean returns the average expected value of the M largest order
// statistics of N standard normal draws.
func ExpectedTopMean(n, m int) (float64, error) {
	if err := validateSelection(n, m); err != nil {
		return 0, err
	}
	return expectedTopMean(n, m), nil
}

func expectedTopMean(n, m int) float64 {
	quantiles := make([]float64, 0, m)
	denom := float64(n) - 2*PlottingPosition + 1
	for r := n - m + 1; r <= n; r++ {
		quantiles = append(quantiles, distuv.UnitNormal.Quantile((float64(r)-PlottingPosition)/denom))
	}
	return floats.Sum(quantiles) / float64(m)
}

// ExpectedSelectedMean returns the expected mean true value of the M items
// ranked highest by X+ε, where X ~ N(muX, sigmaSqX) and ε has variance
// sigmaSqEps.
func ExpectedSelectedMean(muX, sigmaSqX, sigmaSqEps float64, n, m int) (float64, error) {
	if err := validateVariances(sigmaSqX, sigmaSqEps); err != nil {
		return 0, err
	}
	if err := validateSelection(n, m); err != nil {
		return 0, err
	}

	return muX + signalFraction(sigmaSqX, sigmaSqEps)*expectedTopMean(n, m), nil
}

// signalFraction is the slope of X on the standardized observation.
func signalFraction(sigmaSqX, sigmaSqEps float64) float64 {
	return sigmaSqX / math.Sqrt(sigmaSqX+sigmaSqEps)
}
