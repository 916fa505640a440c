// Package horizon projects yearly series to a target year and backtests the projections.
// It validates raw year and value slices before handing them to the forecast and backtest
// packages.
package horizon

import (
	"fmt"

	"github.com/aouyang1/go-horizon/backtest"
	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/timedataset"
)

// Horizon forecasts and backtests yearly series
type Horizon struct {
	opt *Options

	forecaster *forecast.Forecaster
	harness    *backtest.Harness
}

// New creates a new instance of a Horizon using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Horizon, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	f, err := forecast.New(opt.ForecastOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}
	h, err := backtest.New(opt.ForecastOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize backtest harness, %w", err)
	}
	return &Horizon{
		opt:        opt,
		forecaster: f,
		harness:    h,
	}, nil
}

// Forecast projects the series from the year after its last observation through toYear
func (h *Horizon) Forecast(years []int, values []float64, toYear int, kind forecast.Kind, entropySeed int) (*forecast.Result, error) {
	td, err := timedataset.NewYearlyDataset(years, values)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset, %w", err)
	}
	return h.ForecastDataset(td, toYear, kind, entropySeed)
}

// ForecastDataset projects an already validated dataset
func (h *Horizon) ForecastDataset(td *timedataset.TimeDataset, toYear int, kind forecast.Kind, entropySeed int) (*forecast.Result, error) {
	res, err := h.forecaster.Project(kind, td, toYear, entropySeed)
	if err != nil {
		return nil, fmt.Errorf("unable to forecast %s model, %w", kind, err)
	}
	return res, nil
}

// Backtest trains the model on the observations through trainEndYear and scores it on the
// rest. Errors wrapping backtest.ErrUnavailable mean the window cannot be backtested.
func (h *Horizon) Backtest(years []int, values []float64, trainEndYear int, kind forecast.Kind, entropySeed int) (*backtest.Result, error) {
	td, err := timedataset.NewYearlyDataset(years, values)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset, %w", err)
	}
	return h.harness.Run(td, trainEndYear, kind, entropySeed)
}

// BacktestAll backtests every model kind over the same window
func (h *Horizon) BacktestAll(years []int, values []float64, trainEndYear, entropySeed int) (map[forecast.Kind]*backtest.Result, error) {
	td, err := timedataset.NewYearlyDataset(years, values)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset, %w", err)
	}
	return h.harness.RunAll(td, trainEndYear, entropySeed)
}

// Suite backtests every model on the reference entity
func (h *Horizon) Suite(entropySeed int) (*backtest.Suite, error) {
	return h.harness.RunFullSuite(entropySeed)
}

// Options returns the validated options of the Horizon
func (h *Horizon) Options() *Options {
	return h.opt
}
