// Package logger provides a global logger for the application
package logger

import (
	"flag"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

// DefaultEnvironment is used when no environment is given.
const DefaultEnvironment = "dev"

var (
	Logger *zap.Logger
	mu     sync.RWMutex
)

// LevelForEnvironment maps ENVIRONMENT to the default log level.
// dev and test log everything, anything else logs info and above.
func LevelForEnvironment(environment string) zerolog.Level {
	switch strings.ToLower(environment) {
	case "dev", "test":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

func initLogger(environment string) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	info := flag.Bool("info", false, "sets log level to info (default)")
	flag.Parse()

	environment = strings.ToLower(environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	logLevel := LevelForEnvironment(environment)

	if *debug {
		logLevel = zerolog.DebugLevel
		log.Info().Msg("Debug flag detected - overriding environment log level")
	} else if *trace {
		logLevel = zerolog.TraceLevel
		log.Info().Msg("Trace flag detected - overriding environment log level")
	} else if *info {
		logLevel = zerolog.InfoLevel
		log.Info().Msg("Info flag detected - overriding environment log level")
	}

	zerolog.SetGlobalLevel(logLevel)

	zapLogger, err := newZapLogger(environment)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build zap logger")
	}
	mu.Lock()
	Logger = zapLogger
	mu.Unlock()

	log.Info().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialised")
}

func newZapLogger(environment string) (*zap.Logger, error) {
	if environment == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Init initializes the logger for the given environment (dev, test or prod)
// and the command line flags.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init(cfg.Environment) <- inside whichever main() function in your entrypoint
//
// Then, `go run ./cmd/selectsim --debug`
func Init(environment string) {
	initLogger(environment)
}

// Sugar returns a sugared logger for key/value summaries. Before Init it
// returns a no-op logger.
func Sugar() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if Logger == nil {
		return zap.NewNop().Sugar()
	}
	return Logger.Sugar()
}
