// Package simulation estimates by Monte Carlo the mean true value of the
// top-M items selected by a noisy observation, before and after the noise
// is reduced.
package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type Engine struct {
	src      rand.Source
	noise    NoiseModel
	progress ProgressFunc
}

type EngineOption func(*Engine)

// WithNoiseModel sets how the reduced observation is built. Defaults to FullReduction.
func WithNoiseModel(model NoiseModel) EngineOption {
	return func(e *Engine) {
		e.noise = model
	}
}

func WithProgress(fn ProgressFunc) EngineOption {
	return func(e *Engine) {
		e.progress = fn
	}
}

// NewEngine returns an engine drawing every random number from src. The
// caller owns src; seeding it makes runs reproducible. A nil src is replaced
// by a randomly seeded PCG.
func NewEngine(src rand.Source, opts ...EngineOption) *Engine {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	e := &Engine{
		src:   src,
		noise: FullReduction{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// trial holds the per-trial buffers, reused across trials of a run.
type trial struct {
	truth    []float64
	observed []float64
	ranks    []float64
	order    []int
	selected []float64
}

func newTrial(n, m int) *trial {
	return &trial{
		truth:    make([]float64, n),
		observed: make([]float64, n),
		ranks:    make([]float64, n),
		order:    make([]int, n),
		selected: make([]float64, 0, m),
	}
}

// Run executes p.Samples independent trials and returns the per-trial
// selected means. A rank or selection-size postcondition failure panics.
func (e *Engine) Run(p Params) (*Samples, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if e.noise == nil {
		return nil, fmt.Errorf("%w: noise model is required", ErrInvalidParameters)
	}
	if err := e.noise.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	log.Debug().Str("noise", e.noise.Name()).Int("samples", p.Samples).Int("n", p.N).Int("m", p.M).
		Msg("starting selection simulation")

	population := distuv.Normal{Mu: p.MuX, Sigma: math.Sqrt(p.SigmaSqX), Src: e.src}
	noisy := distuv.Normal{Mu: p.MuEpsilon, Sigma: math.Sqrt(p.SigmaSq1), Src: e.src}

	out := &Samples{
		NoisyMean:   make([]float64, 0, p.Samples),
		CleanMean:   make([]float64, 0, p.Samples),
		Improvement: make([]float64, 0, p.Samples),
	}
	spacing := float64(p.Samples) / progressReports
	nextReport := 0.0
	tr := newTrial(p.N, p.M)

	for i := range p.Samples {
		for j := range tr.truth {
			tr.truth[j] = population.Rand()
		}

		for j, x := range tr.truth {
			tr.observed[j] = x + noisy.Rand()
		}
		noisyMean := tr.selectedMean(p.N, p.M)

		e.noise.Observe(tr.observed, tr.truth, p, e.src)
		cleanMean := tr.selectedMean(p.N, p.M)

		out.NoisyMean = append(out.NoisyMean, noisyMean)
		out.CleanMean = append(out.CleanMean, cleanMean)
		out.Improvement = append(out.Improvement, cleanMean-noisyMean)

		if e.progress != nil && float64(i) >= nextReport {
			nextReport += spacing
			e.progress(Progress{
				Trial:          i,
				NoisyMean:      noisyMean,
				CleanMean:      cleanMean,
				Improvement:    cleanMean - noisyMean,
				ImprovementPct: improvementPct(noisyMean, cleanMean),
			})
		}
	}

	log.Debug().Str("noise", e.noise.Name()).Msgf("selection simulation finished in %v", time.Since(startTime))
	return out, nil
}

// improvementPct is the relative gain of clean over noisy in percent, or 0
// when noisy is 0.
func improvementPct(noisy, clean float64) float64 {
	if noisy == 0 {
		return 0
	}
	return 100 * (clean/noisy - 1)
}

// selectedMean ranks the current observation, keeps the true values whose
// rank exceeds n-m and returns their mean.
func (t *trial) selectedMean(n, m int) float64 {
	rankInto(t.ranks, t.order, t.observed)

	if lo, hi := floats.Min(t.ranks), floats.Max(t.ranks); lo != 1 || hi != float64(n) {
		panic(fmt.Sprintf("simulation: ranks span [%v, %v], want [1, %d]", lo, hi, n))
	}

	threshold := float64(n - m)
	t.selected = t.selected[:0]
	for j, r := range t.ranks {
		if r > threshold {
			t.selected = append(t.selected, t.truth[j])
		}
	}

	if len(t.selected) != m {
		panic(fmt.Sprintf("simulation: selected %d items, want %d", len(t.selected), m))
	}

	return stat.Mean(t.selected, nil)
}

// FullReductionSamples runs p with every item's noise replaced by SigmaSq2.
// When verbose, progress is logged.
func FullReductionSamples(src rand.Source, p Params, verbose bool) (*Samples, error) {
	return newVerboseEngine(src, FullReduction{}, verbose).Run(p)
}

// PartialReductionSamples runs p with each item receiving the SigmaSq2 noise
// with probability coverage.
func PartialReductionSamples(src rand.Source, p Params, coverage float64, verbose bool) (*Samples, error) {
	return newVerboseEngine(src, PartialReduction{Coverage: coverage}, verbose).Run(p)
}

func newVerboseEngine(src rand.Source, model NoiseModel, verbose bool) *Engine {
	opts := []EngineOption{WithNoiseModel(model)}
	if verbose {
		opts = append(opts, WithProgress(LogProgress()))
	}
	return NewEngine(src, opts...)
}
