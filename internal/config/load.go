// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	SimulationEnvConfig
	BootstrapEnvConfig
	RunEnvConfig
}

// LoadConfig reads the configuration from the process environment, after
// loading a .env file when one exists.
func LoadConfig(ctx context.Context) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	return LoadConfigFrom(ctx, envconfig.OsLookuper())
}

// LoadConfigFrom reads the configuration from l.
func LoadConfigFrom(ctx context.Context, l envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SimulationEnvConfig holds the population and noise parameters of a scenario.
// Coverage is the share of items receiving the reduced noise; 1 is full reduction.
type SimulationEnvConfig struct {
	Samples   int     `env:"SIM_SAMPLES, default=10000"`
	N         int     `env:"SIM_N, default=100"`
	M         int     `env:"SIM_M, default=10"`
	MuX       float64 `env:"SIM_MU_X, default=0"`
	MuEpsilon float64 `env:"SIM_MU_EPSILON, default=0"`
	SigmaSqX  float64 `env:"SIM_SIGMA_SQ_X, default=1"`
	SigmaSq1  float64 `env:"SIM_SIGMA_SQ_1, default=1"`
	SigmaSq2  float64 `env:"SIM_SIGMA_SQ_2, default=0.01"`
	Coverage  float64 `env:"SIM_COVERAGE, default=1"`
}

// BootstrapEnvConfig configures uncertainty estimation on simulated outputs.
type BootstrapEnvConfig struct {
	Bootstraps int     `env:"SIM_BOOTSTRAPS, default=1000"`
	Confidence float64 `env:"SIM_CONFIDENCE, default=0.95"`
}

// RunEnvConfig configures reproducibility and reporting.
type RunEnvConfig struct {
	Seed        uint64 `env:"SIM_SEED, default=0"` // 0 draws a random seed
	Verbose     bool   `env:"SIM_VERBOSE, default=false"`
	Environment string `env:"ENVIRONMENT, default=dev"`
}

func (c *AppConfig) Validate() error {
	if !(c.Coverage >= 0 && c.Coverage <= 1) {
		return fmt.Errorf("SIM_COVERAGE must be in [0, 1], got %v", c.Coverage)
	}
	if c.Bootstraps < 0 {
		return fmt.Errorf("SIM_BOOTSTRAPS must be non-negative, got %d", c.Bootstraps)
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		return fmt.Errorf("SIM_CONFIDENCE must be in (0, 1), got %v", c.Confidence)
	}
	return nil
}
