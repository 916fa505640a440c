package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	horizon "github.com/aouyang1/go-horizon"
	"github.com/aouyang1/go-horizon/backtest"
	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
)

// Run executes the configured command against the reference entity
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	h, err := horizon.New(nil)
	if err != nil {
		return err
	}

	switch cfg.Command {
	case CommandForecast:
		return runForecast(h, cfg, out)
	case CommandBacktest:
		return runBacktest(h, cfg, out)
	case CommandSuite:
		return runSuite(h, cfg, out)
	default:
		return fmt.Errorf("%q, %w", cfg.Command, ErrUnknownCommand)
	}
}

func runForecast(h *horizon.Horizon, cfg Config, out io.Writer) error {
	e, err := reference.Default()
	if err != nil {
		return err
	}
	td, err := e.Dataset(cfg.Metric)
	if err != nil {
		return err
	}

	res, err := h.ForecastDataset(td, cfg.ToYear, cfg.Model, cfg.EntropySeed)
	if err != nil {
		return err
	}
	slog.Info("forecast complete", "metric", string(cfg.Metric), "model", cfg.Model.String(), "to_year", cfg.ToYear)

	if cfg.Plot != "" {
		if err := writePlot(cfg.Plot, func(w io.Writer) error {
			return horizon.PlotForecast(w, td, res)
		}); err != nil {
			return err
		}
	}

	if cfg.Format == FormatJSON {
		return backtest.WriteJSON(out, res)
	}
	if _, err := fmt.Fprintf(out, "%s %s\n", e.Name, cfg.Metric); err != nil {
		return err
	}
	return res.TablePrint(out, "", "  ")
}

func runBacktest(h *horizon.Horizon, cfg Config, out io.Writer) error {
	e, err := reference.Default()
	if err != nil {
		return err
	}
	td, err := e.Dataset(cfg.Metric)
	if err != nil {
		return err
	}

	results, err := h.BacktestAll(td.Years, td.Values, cfg.TrainEndYear, cfg.EntropySeed)
	if err != nil {
		return err
	}
	slog.Info("backtest complete", "metric", string(cfg.Metric), "train_end_year", cfg.TrainEndYear)

	if cfg.Plot != "" {
		if err := writePlot(cfg.Plot, func(w io.Writer) error {
			return horizon.PlotBacktest(w, string(cfg.Metric), results)
		}); err != nil {
			return err
		}
	}

	rows := make([]backtest.Row, 0, len(results))
	for _, kind := range forecast.Kinds() {
		rows = append(rows, backtest.NewRow(cfg.Metric, kind, results[kind]))
	}
	if cfg.Format == FormatJSON {
		return backtest.WriteJSON(out, rows)
	}
	return backtest.TablePrint(out, rows)
}

func runSuite(h *horizon.Horizon, cfg Config, out io.Writer) error {
	s, err := h.Suite(cfg.EntropySeed)
	if err != nil {
		return err
	}
	slog.Info("suite complete", "entity", s.Entity, "entropy_seed", s.EntropySeed)

	if cfg.Format == FormatJSON {
		return backtest.WriteJSON(out, s)
	}
	return backtest.TablePrint(out, backtest.FormatResults(s))
}

func writePlot(path string, plot func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	if err := plot(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
