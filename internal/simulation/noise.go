package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseModel builds the reduced-noise observation of a trial.
type NoiseModel interface {
	// Observe writes truth[i] plus a fresh noise draw into dst[i].
	Observe(dst, truth []float64, p Params, src rand.Source)
	Validate() error
	Name() string
}

// FullReduction replaces the noise of every item with the SigmaSq2 source.
type FullReduction struct{}

func (FullReduction) Observe(dst, truth []float64, p Params, src rand.Source) {
	noise := distuv.Normal{Mu: p.MuEpsilon, Sigma: math.Sqrt(p.SigmaSq2), Src: src}
	for i, x := range truth {
		dst[i] = x + noise.Rand()
	}
}

func (FullReduction) Validate() error { return nil }

func (FullReduction) Name() string { return "full" }

// PartialReduction gives each item the SigmaSq2 noise with probability
// Coverage and the original SigmaSq1 noise otherwise. The mask is drawn
// afresh on every trial.
type PartialReduction struct {
	Coverage float64
}

func (r PartialReduction) Observe(dst, truth []float64, p Params, src rand.Source) {
	gate := distuv.Bernoulli{P: r.Coverage, Src: src}
	reduced := distuv.Normal{Mu: p.MuEpsilon, Sigma: math.Sqrt(p.SigmaSq2), Src: src}
	original := distuv.Normal{Mu: p.MuEpsilon, Sigma: math.Sqrt(p.SigmaSq1), Src: src}
	for i, x := range truth {
		if gate.Rand() == 1 {
			dst[i] = x + reduced.Rand()
		} else {
			dst[i] = x + original.Rand()
		}
	}
}

func (r PartialReduction) Validate() error {
	if !(r.Coverage >= 0 && r.Coverage <= 1) {
		return fmt.Errorf("%w: coverage must be in [0, 1], got %v", ErrInvalidParameters, r.Coverage)
	}
	return nil
}

func (r PartialReduction) Name() string { return fmt.Sprintf("partial(p=%g)", r.Coverage) }
