package resample

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// PercentileCI returns the equal-tailed percentile interval of a bootstrap
// distribution at the given level, e.g. 0.95.
func PercentileCI(dist []float64, level float64) (ConfidenceInterval, error) {
	if len(dist) == 0 {
		return ConfidenceInterval{}, fmt.Errorf("%w: bootstrap distribution must not be empty", ErrInvalidParameters)
	}
	if !(level > 0 && level < 1) {
		return ConfidenceInterval{}, fmt.Errorf("%w: confidence level must be in (0, 1), got %v", ErrInvalidParameters, level)
	}

	sorted := slices.Clone(dist)
	slices.Sort(sorted)

	alpha := (1 - level) / 2
	return ConfidenceInterval{
		Lower: stat.Quantile(alpha, stat.Empirical, sorted, nil),
		Upper: stat.Quantile(1-alpha, stat.Empirical, sorted, nil),
		Level: level,
	}, nil
}

// StandardError is the standard deviation of a bootstrap distribution.
func StandardError(dist []float64) float64 {
	if len(dist) < 2 {
		return 0
	}
	return stat.StdDev(dist, nil)
}
