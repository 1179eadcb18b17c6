// Package experiment runs a selection scenario end to end and cross-checks
// the simulated selected means against the analytic order-statistic model.
package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/noisyselect/internal/config"
	"github.com/tensorplex-labs/noisyselect/internal/orderstat"
	"github.com/tensorplex-labs/noisyselect/internal/resample"
	"github.com/tensorplex-labs/noisyselect/internal/simulation"
	"github.com/tensorplex-labs/noisyselect/internal/utils/logger"
)

func ScenarioFromConfig(cfg *config.AppConfig) Scenario {
	s := Scenario{
		Params: simulation.Params{
			Samples:   cfg.Samples,
			N:         cfg.N,
			M:         cfg.M,
			MuX:       cfg.MuX,
			MuEpsilon: cfg.MuEpsilon,
			SigmaSqX:  cfg.SigmaSqX,
			SigmaSq1:  cfg.SigmaSq1,
			SigmaSq2:  cfg.SigmaSq2,
		},
		Coverage:   cfg.Coverage,
		Bootstraps: cfg.Bootstraps,
		Confidence: cfg.Confidence,
	}
	if cfg.Verbose {
		s.Progress = simulation.LogProgress()
	}
	return s
}

// NoiseModel is FullReduction at coverage 1 and PartialReduction otherwise.
func (s Scenario) NoiseModel() simulation.NoiseModel {
	if s.Coverage == 1 {
		return simulation.FullReduction{}
	}
	return simulation.PartialReduction{Coverage: s.Coverage}
}

// Run evaluates s. All randomness is drawn from src, which the caller owns.
func Run(ctx context.Context, s Scenario, src rand.Source) (*Report, error) {
	startTime := time.Now()
	report := &Report{
		RunID:  uuid.NewString(),
		Noise:  s.NoiseModel().Name(),
		Params: s.Params,
	}

	analytic, err := predict(s.Params)
	if err != nil {
		return nil, fmt.Errorf("analytic model: %w", err)
	}
	report.Analytic = analytic

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []simulation.EngineOption{simulation.WithNoiseModel(s.NoiseModel())}
	if s.Progress != nil {
		opts = append(opts, simulation.WithProgress(s.Progress))
	}
	samples, err := simulation.NewEngine(src, opts...).Run(s.Params)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	report.Simulated = samples.Summary()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.Bootstraps > 0 {
		dist, err := resample.NewBootstrap(src).Mean(samples.Improvement, s.Bootstraps)
		if err != nil {
			return nil, fmt.Errorf("bootstrap improvement: %w", err)
		}
		ci, err := resample.PercentileCI(dist, s.Confidence)
		if err != nil {
			return nil, fmt.Errorf("bootstrap improvement: %w", err)
		}
		report.ImprovementSE = resample.StandardError(dist)
		report.ImprovementCI = &ci
	}

	report.Elapsed = time.Since(startTime)

	log.Debug().Str("run_id", report.RunID).Msgf("scenario finished in %v", report.Elapsed)
	logger.Sugar().Infow("Scenario summary",
		"runID", report.RunID,
		"noise", report.Noise,
		"analyticNoisy", report.Analytic.Noisy.ExpectedMean,
		"simulatedNoisy", report.Simulated.Noisy.Mean,
		"analyticReduced", report.Analytic.Reduced.ExpectedMean,
		"simulatedClean", report.Simulated.Clean.Mean,
		"improvement", report.Simulated.Improvement.Mean,
	)

	return report, nil
}

func predict(p simulation.Params) (Analytic, error) {
	noisy, err := prediction(p, p.SigmaSq1)
	if err != nil {
		return Analytic{}, err
	}
	reduced, err := prediction(p, p.SigmaSq2)
	if err != nil {
		return Analytic{}, err
	}
	return Analytic{Noisy: noisy, Reduced: reduced}, nil
}

func prediction(p simulation.Params, sigmaSqEps float64) (Prediction, error) {
	mean, err := orderstat.ExpectedSelectedMean(p.MuX, p.SigmaSqX, sigmaSqEps, p.N, p.M)
	if err != nil {
		return Prediction{}, err
	}
	variance, err := orderstat.SelectedMeanVariance(p.SigmaSqX, sigmaSqEps, p.N, p.M)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{ExpectedMean: mean, Variance: variance}, nil
}

// JSON encodes the report.
func (r *Report) JSON() ([]byte, error) {
	return sonic.Marshal(r)
}
