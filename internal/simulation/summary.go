package simulation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

func (s *Samples) Len() int {
	return len(s.NoisyMean)
}

// Summary returns the mean, sample variance and standard error of each
// sequence.
func (s *Samples) Summary() Summary {
	return Summary{
		Noisy:       summarize(s.NoisyMean),
		Clean:       summarize(s.CleanMean),
		Improvement: summarize(s.Improvement),
	}
}

func summarize(x []float64) SequenceSummary {
	switch len(x) {
	case 0:
		return SequenceSummary{}
	case 1:
		return SequenceSummary{Mean: x[0]}
	}

	mean, variance := stat.MeanVariance(x, nil)
	return SequenceSummary{
		Mean:     mean,
		Variance: variance,
		StdErr:   math.Sqrt(variance / float64(len(x))),
	}
}
