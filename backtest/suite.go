package backtest

import (
	"fmt"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
)

// Suite holds backtest results per metric and model. Unavailable backtests are nil.
type Suite struct {
	Entity       string                                         `json:"entity"`
	TrainEndYear int                                            `json:"train_end_year"`
	EntropySeed  int                                            `json:"entropy_seed"`
	Results      map[reference.Metric]map[forecast.Kind]*Result `json:"results"`
}

// RunSuite backtests every model on every metric of the entity over the same window
func (h *Harness) RunSuite(e *reference.Entity, trainEndYear, entropySeed int) (*Suite, error) {
	s := &Suite{
		Entity:       e.Name,
		TrainEndYear: trainEndYear,
		EntropySeed:  entropySeed,
		Results:      make(map[reference.Metric]map[forecast.Kind]*Result, len(e.Series)),
	}
	for _, m := range reference.Metrics() {
		td, exists := e.Series[m]
		if !exists {
			continue
		}
		res, err := h.RunAll(td, trainEndYear, entropySeed)
		if err != nil {
			return nil, fmt.Errorf("unable to backtest %s, %w", m, err)
		}
		s.Results[m] = res
	}
	return s, nil
}

// RunFullSuite backtests the reference entity at the reference training cutoff
func (h *Harness) RunFullSuite(entropySeed int) (*Suite, error) {
	e, err := reference.Default()
	if err != nil {
		return nil, err
	}
	return h.RunSuite(e, reference.DefaultTrainEndYear, entropySeed)
}
