package main

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("horizon", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"forecast"})
	require.Nil(t, err)

	expected := Config{
		Command:      CommandForecast,
		Metric:       reference.MetricPopulation,
		Model:        forecast.KindComposite,
		EntropySeed:  5,
		ToYear:       2035,
		TrainEndYear: reference.DefaultTrainEndYear,
		LogLevel:     slog.LevelInfo,
		Format:       FormatTable,
	}
	assert.Equal(t, expected, cfg)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("HORIZON_METRIC", "income")
	t.Setenv("HORIZON_MODEL", "linear")
	t.Setenv("HORIZON_ENTROPY_SEED", "40")
	t.Setenv("HORIZON_TO_YEAR", "2040")
	t.Setenv("HORIZON_TRAIN_END_YEAR", "2016")
	t.Setenv("HORIZON_LOG_LEVEL", "debug")
	t.Setenv("HORIZON_FORMAT", "JSON")

	cfg, err := ParseConfig(newFlagSet(), []string{"backtest"})
	require.Nil(t, err)
	assert.Equal(t, CommandBacktest, cfg.Command)
	assert.Equal(t, reference.MetricIncome, cfg.Metric)
	assert.Equal(t, forecast.KindLinear, cfg.Model)
	assert.Equal(t, 40, cfg.EntropySeed)
	assert.Equal(t, 2040, cfg.ToYear)
	assert.Equal(t, 2016, cfg.TrainEndYear)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HORIZON_ENTROPY_SEED", "40")
	t.Setenv("HORIZON_MODEL", "linear")

	cfg, err := ParseConfig(newFlagSet(), []string{
		"forecast",
		"-metric", "home-value",
		"-model", "entropy",
		"-seed", "7",
		"-to", "2030",
		"-log-level", "warn",
		"-plot", "out.html",
	})
	require.Nil(t, err)
	assert.Equal(t, reference.MetricHomeValue, cfg.Metric)
	assert.Equal(t, forecast.KindEntropy, cfg.Model)
	assert.Equal(t, 7, cfg.EntropySeed)
	assert.Equal(t, 2030, cfg.ToYear)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "out.html", cfg.Plot)
}

func TestParseConfigErrors(t *testing.T) {
	testData := map[string]struct {
		args []string
		err  error
	}{
		"no args": {
			err: ErrNoCommand,
		},
		"flag first": {
			args: []string{"-seed", "5"},
			err:  ErrNoCommand,
		},
		"unknown command": {
			args: []string{"train"},
			err:  ErrUnknownCommand,
		},
		"unknown metric": {
			args: []string{"forecast", "-metric", "gdp"},
			err:  reference.ErrUnknownMetric,
		},
		"unknown format": {
			args: []string{"suite", "-format", "yaml"},
			err:  ErrUnknownFormat,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(newFlagSet(), td.args)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestParseConfigInvalidEnv(t *testing.T) {
	t.Setenv("HORIZON_MODEL", "arima")

	_, err := ParseConfig(newFlagSet(), []string{"forecast"})
	require.NotNil(t, err)
	assert.ErrorContains(t, err, "parse env")
	assert.ErrorContains(t, err, "arima")
}
