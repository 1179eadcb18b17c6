package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/noisyselect/internal/config"
	"github.com/tensorplex-labs/noisyselect/internal/experiment"
	"github.com/tensorplex-labs/noisyselect/internal/utils/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Environment)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Info().Uint64("seed", seed).Float64("coverage", cfg.Coverage).Msg("running selection scenario")

	report, err := experiment.Run(ctx, experiment.ScenarioFromConfig(cfg), rand.NewPCG(seed, seed>>1|1))
	if err != nil {
		log.Fatal().Err(err).Msg("scenario failed")
	}

	out, err := report.JSON()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode report")
	}
	fmt.Println(string(out))
}
