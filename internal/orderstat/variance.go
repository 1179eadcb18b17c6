package orderstat

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// SelectedValueVariance returns the variance of the true value of the item
// holding noisy rank r out of n.
func SelectedValueVariance(r int, sigmaSqX, sigmaSqEps float64, n int) (float64, error) {
	if err := validateVariances(sigmaSqX, sigmaSqEps); err != nil {
		return 0, err
	}
	if err := validateSelection(n, 1); err != nil {
		return 0, err
	}
	if err := validateRank(r, n); err != nil {
		return 0, err
	}

	d := rankDensity(r, n)
	return selectedValueVariance(r, d, sigmaSqX, sigmaSqEps, n), nil
}

// SelectedValueCovariance returns the covariance between the true values of
// the items holding noisy ranks r and s. It is symmetric in r and s and
// reduces to SelectedValueVariance when r == s.
func SelectedValueCovariance(r, s int, sigmaSqX, sigmaSqEps float64, n int) (float64, error) {
	if r == s {
		return SelectedValueVariance(r, sigmaSqX, sigmaSqEps, n)
	}
	if err := validateVariances(sigmaSqX, sigmaSqEps); err != nil {
		return 0, err
	}
	if err := validateSelection(n, 1); err != nil {
		return 0, err
	}
	if err := validateRank(r, n); err != nil {
		return 0, err
	}
	if err := validateRank(s, n); err != nil {
		return 0, err
	}

	return selectedValueCovariance(r, s, rankDensity(r, n), rankDensity(s, n), sigmaSqX, sigmaSqEps, n), nil
}

// SelectedMeanVariance returns the variance of the mean true value of the M
// items holding the top noisy ranks N-M+1..N.
func SelectedMeanVariance(sigmaSqX, sigmaSqEps float64, n, m int) (float64, error) {
	if err := validateVariances(sigmaSqX, sigmaSqEps); err != nil {
		return 0, err
	}
	if err := validateSelection(n, m); err != nil {
		return 0, err
	}

	first := n - m + 1
	densities := make([]float64, m)
	for r := first; r <= n; r++ {
		densities[r-first] = rankDensity(r, n)
	}

	acc := 0.0
	for r := first; r <= n; r++ {
		acc += selectedValueVariance(r, densities[r-first], sigmaSqX, sigmaSqEps, n)
		for s := r + 1; s <= n; s++ {
			acc += 2 * selectedValueCovariance(r, s, densities[r-first], densities[s-first], sigmaSqX, sigmaSqEps, n)
		}
	}

	return acc / float64(m*m), nil
}

// rankDensity is φ(Φ⁻¹(r/(n+1))).
func rankDensity(r, n int) float64 {
	return distuv.UnitNormal.Prob(distuv.UnitNormal.Quantile(float64(r) / float64(n+1)))
}

func regression(sigmaSqX, sigmaSqEps float64) float64 {
	return sigmaSqX * sigmaSqX / (sigmaSqX + sigmaSqEps)
}

func selectedValueVariance(r int, density, sigmaSqX, sigmaSqEps float64, n int) float64 {
	residual := sigmaSqEps * sigmaSqX / (sigmaSqX + sigmaSqEps)
	nf := float64(n)
	rf := float64(r)
	orderVar := rf * (nf - rf + 1) / ((nf + 1) * (nf + 1) * (nf + 2)) / (density * density)
	return residual + regression(sigmaSqX, sigmaSqEps)*orderVar
}

func selectedValueCovariance(r, s int, densityR, densityS, sigmaSqX, sigmaSqEps float64, n int) float64 {
	lo, hi, dLo, dHi := r, s, densityR, densityS
	if s < r {
		lo, hi, dLo, dHi = s, r, densityS, densityR
	}
	nf := float64(n)
	orderCov := float64(lo) * (nf - float64(hi) + 1) / ((nf + 1) * (nf + 1) * (nf + 2)) / dLo / dHi
	return regression(sigmaSqX, sigmaSqEps) * orderCov
}
