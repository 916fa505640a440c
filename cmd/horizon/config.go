package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
	"github.com/caarlos0/env/v11"
)

const (
	CommandForecast = "forecast"
	CommandBacktest = "backtest"
	CommandSuite    = "suite"

	FormatTable = "table"
	FormatJSON  = "json"
)

var (
	ErrNoCommand      = errors.New("expected a command: forecast, backtest or suite")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownFormat  = errors.New("format must be table or json")
)

// Config holds the command line settings. Environment variables provide the defaults and
// flags override them.
type Config struct {
	Command      string           `env:"-"`
	Metric       reference.Metric `env:"HORIZON_METRIC" envDefault:"population"`
	Model        forecast.Kind    `env:"HORIZON_MODEL" envDefault:"composite"`
	EntropySeed  int              `env:"HORIZON_ENTROPY_SEED" envDefault:"5"`
	ToYear       int              `env:"HORIZON_TO_YEAR" envDefault:"2035"`
	TrainEndYear int              `env:"HORIZON_TRAIN_END_YEAR" envDefault:"2018"`
	LogLevel     slog.Level       `env:"HORIZON_LOG_LEVEL" envDefault:"info"`
	Format       string           `env:"HORIZON_FORMAT" envDefault:"table"`
	Plot         string           `env:"HORIZON_PLOT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig reads the command from the first argument and the settings from the
// environment and the remaining flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return Config{}, ErrNoCommand
	}
	cfg.Command = args[0]
	switch cfg.Command {
	case CommandForecast, CommandBacktest, CommandSuite:
	default:
		return Config{}, fmt.Errorf("%q, %w", cfg.Command, ErrUnknownCommand)
	}

	metric := string(cfg.Metric)
	fs.StringVar(&metric, "metric", metric, "reference metric to forecast or backtest")
	fs.TextVar(&cfg.Model, "model", cfg.Model, "model kind: linear, exponential, entropy or composite")
	fs.IntVar(&cfg.EntropySeed, "seed", cfg.EntropySeed, "entropy seed in [0, 100]")
	fs.IntVar(&cfg.ToYear, "to", cfg.ToYear, "last year to forecast")
	fs.IntVar(&cfg.TrainEndYear, "train-end", cfg.TrainEndYear, "last year of the training window")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: table or json")
	fs.StringVar(&cfg.Plot, "plot", cfg.Plot, "optional html plot output path")
	if err := fs.Parse(args[1:]); err != nil {
		return Config{}, err
	}

	m, err := reference.ParseMetric(metric)
	if err != nil {
		return Config{}, err
	}
	cfg.Metric = m

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format != FormatTable && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("%q, %w", cfg.Format, ErrUnknownFormat)
	}
	return cfg, nil
}
