package experiment

import (
	"time"

	"github.com/tensorplex-labs/noisyselect/internal/resample"
	"github.com/tensorplex-labs/noisyselect/internal/simulation"
)

// Scenario is one parameter set run through the analytic model, the
// simulation engine and the bootstrap.
type Scenario struct {
	Params     simulation.Params
	Coverage   float64 // share of items given the reduced noise; 1 is full reduction
	Bootstraps int     // 0 skips the bootstrap
	Confidence float64
	Progress   simulation.ProgressFunc
}

// Prediction is the analytic mean and variance of the selected-subset mean.
type Prediction struct {
	ExpectedMean float64 `json:"expected_mean"`
	Variance     float64 `json:"variance"`
}

// Analytic holds the predictions for the original and the reduced noise.
// Reduced assumes every item gets the reduced noise, so it bounds partial coverage.
type Analytic struct {
	Noisy   Prediction `json:"noisy"`
	Reduced Prediction `json:"reduced"`
}

type Report struct {
	RunID         string                       `json:"run_id"`
	Noise         string                       `json:"noise"`
	Params        simulation.Params            `json:"params"`
	Analytic      Analytic                     `json:"analytic"`
	Simulated     simulation.Summary           `json:"simulated"`
	ImprovementSE float64                      `json:"improvement_se"`
	ImprovementCI *resample.ConfidenceInterval `json:"improvement_ci,omitempty"`
	Elapsed       time.Duration                `json:"elapsed"`
}
