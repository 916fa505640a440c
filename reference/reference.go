// Package reference holds the fixed reference entity used for transparency reports. The
// histories are biennial observations from 2010 through 2024.
package reference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aouyang1/go-horizon/timedataset"
)

// DefaultTrainEndYear is the last year used for training in the reference backtest suite
const DefaultTrainEndYear = 2018

var ErrUnknownMetric = errors.New("unknown metric")

// Metric names a tracked series of the reference entity
type Metric string

const (
	MetricPopulation   Metric = "population"
	MetricIncome       Metric = "income"
	MetricHomeValue    Metric = "home_value"
	MetricUnemployment Metric = "unemployment"
)

// Metrics returns every metric in report order
func Metrics() []Metric {
	return []Metric{MetricPopulation, MetricIncome, MetricHomeValue, MetricUnemployment}
}

// ParseMetric maps a metric name to a Metric accepting dashes in place of underscores
func ParseMetric(name string) (Metric, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, m := range Metrics() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%q, %w", name, ErrUnknownMetric)
}

var years = []int{2010, 2012, 2014, 2016, 2018, 2020, 2022, 2024}

var histories = map[Metric][]float64{
	MetricPopulation:   {45230, 46180, 47350, 48120, 49410, 50230, 51080, 52340},
	MetricIncome:       {52100, 53800, 55400, 58200, 61300, 63900, 68400, 72100},
	MetricHomeValue:    {185000, 178500, 192300, 210400, 235800, 262100, 318500, 341200},
	MetricUnemployment: {9.1, 7.8, 6.2, 5.1, 4.3, 3.9, 5.8, 4.1},
}

// Entity is a named set of metric histories
type Entity struct {
	Name   string
	Series map[Metric]*timedataset.TimeDataset
}

// Default returns the reference entity. Every call returns fresh datasets so callers may
// modify them freely.
func Default() (*Entity, error) {
	e := &Entity{
		Name:   "Reference County",
		Series: make(map[Metric]*timedataset.TimeDataset, len(histories)),
	}
	for _, m := range Metrics() {
		td, err := timedataset.NewYearlyDataset(years, histories[m])
		if err != nil {
			return nil, fmt.Errorf("unable to load %s history, %w", m, err)
		}
		e.Series[m] = td
	}
	return e, nil
}

// Dataset returns the history for metric
func (e *Entity) Dataset(m Metric) (*timedataset.TimeDataset, error) {
	td, exists := e.Series[m]
	if !exists {
		return nil, fmt.Errorf("%s, %w", m, ErrUnknownMetric)
	}
	return td, nil
}
