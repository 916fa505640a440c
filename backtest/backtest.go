// Package backtest validates forecast models by training on the observations up to a cutoff
// year and scoring the projection against the held out observations after it.
package backtest

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/timedataset"
)

// MinTrainingPoints is the fewest observations a training window may hold
const MinTrainingPoints = 3

var (
	// ErrUnavailable is wrapped by every error signalling that the window cannot be
	// backtested. It is an expected outcome rather than a fault.
	ErrUnavailable = errors.New("backtest unavailable")

	ErrInsufficientTraining = fmt.Errorf("need at least %d training observations, %w", MinTrainingPoints, ErrUnavailable)
	ErrInsufficientTest     = fmt.Errorf("need at least 1 holdout observation, %w", ErrUnavailable)
	ErrNoMatchedPoints      = fmt.Errorf("no projected year matches a holdout year, %w", ErrUnavailable)
	ErrNoDataset            = errors.New("no dataset")
)

// PredictedPoint is a projected value for a holdout year
type PredictedPoint struct {
	Year       int     `json:"year"`
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ActualPoint is an observed holdout value
type ActualPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// PointError is the error of the projection at a holdout year
type PointError struct {
	Year     int     `json:"year"`
	Error    float64 `json:"error"`
	AbsError float64 `json:"abs_error"`
	PctError float64 `json:"pct_error"`
}

// Result is the outcome of a single model backtest
type Result struct {
	Model       forecast.Kind    `json:"model"`
	TrainWindow string           `json:"train_window"`
	TestWindow  string           `json:"test_window"`
	MAE         float64          `json:"mae"`
	RMSE        float64          `json:"rmse"`
	MAPE        float64          `json:"mape"`
	Predictions []PredictedPoint `json:"predictions"`
	Actuals     []ActualPoint    `json:"actuals"`
	Errors      []PointError     `json:"errors"`
	N           int              `json:"n"`
}

// Grade returns the letter grade of the result MAPE
func (r *Result) Grade() Grade {
	return GradeMAPE(r.MAPE)
}

// Harness runs backtests using a single forecaster
type Harness struct {
	forecaster *forecast.Forecaster
}

// New creates a harness whose forecaster uses the provided options. If none are provided a
// default is used.
func New(opt *forecast.Options) (*Harness, error) {
	f, err := forecast.New(opt)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}
	return &Harness{forecaster: f}, nil
}

// Split returns the training observations up to and including trainEndYear and the holdout
// observations after it.
func Split(td *timedataset.TimeDataset, trainEndYear int) (*timedataset.TimeDataset, *timedataset.TimeDataset, error) {
	if td == nil {
		return nil, nil, ErrNoDataset
	}
	trainIdx := td.IndexAfter(trainEndYear)
	if trainIdx < MinTrainingPoints {
		return nil, nil, fmt.Errorf("got %d through %d, %w", trainIdx, trainEndYear, ErrInsufficientTraining)
	}
	if trainIdx >= td.Len() {
		return nil, nil, fmt.Errorf("no observations after %d, %w", trainEndYear, ErrInsufficientTest)
	}

	train, err := td.Slice(0, trainIdx)
	if err != nil {
		return nil, nil, err
	}
	test, err := td.Slice(trainIdx, td.Len())
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// Run fits the model only on the observations up to and including trainEndYear, projects
// through the final observed year and scores the projection on the holdout years. Errors
// wrapping ErrUnavailable mean the window cannot be backtested.
func (h *Harness) Run(td *timedataset.TimeDataset, trainEndYear int, kind forecast.Kind, entropySeed int) (*Result, error) {
	train, test, err := Split(td, trainEndYear)
	if err != nil {
		return nil, err
	}

	res, err := h.forecaster.Project(kind, train, test.LastYear(), entropySeed)
	if err != nil {
		return nil, fmt.Errorf("unable to project %s model, %w", kind, err)
	}

	byYear := make(map[int]forecast.Prediction, len(res.Predictions))
	for _, p := range res.Predictions {
		byYear[p.Year] = p
	}

	r := &Result{
		Model:       kind,
		TrainWindow: timedataset.YearSlice(train.Years).Window(),
		TestWindow:  timedataset.YearSlice(test.Years).Window(),
		Predictions: make([]PredictedPoint, 0, test.Len()),
		Actuals:     make([]ActualPoint, 0, test.Len()),
		Errors:      make([]PointError, 0, test.Len()),
	}

	predicted := make([]float64, 0, test.Len())
	actual := make([]float64, 0, test.Len())
	for i, year := range test.Years {
		p, exists := byYear[year]
		if !exists {
			slog.Warn("no projection for holdout year, skipping", "model", kind.String(), "year", year)
			continue
		}
		a := test.Values[i]
		e := p.Value - a

		predicted = append(predicted, p.Value)
		actual = append(actual, a)
		r.Predictions = append(r.Predictions, PredictedPoint{Year: year, Value: p.Value, Confidence: p.Confidence})
		r.Actuals = append(r.Actuals, ActualPoint{Year: year, Value: a})
		r.Errors = append(r.Errors, PointError{
			Year:     year,
			Error:    e,
			AbsError: math.Abs(e),
			PctError: PctError(p.Value, a),
		})
	}

	r.N = len(actual)
	if r.N == 0 {
		return nil, ErrNoMatchedPoints
	}

	scores, err := NewScores(predicted, actual)
	if err != nil {
		return nil, err
	}
	r.MAE = scores.MAE
	r.RMSE = scores.RMSE
	r.MAPE = scores.MAPE
	return r, nil
}

// RunAll backtests every model kind over the same window. Kinds that cannot be backtested
// map to nil; any other failure is returned.
func (h *Harness) RunAll(td *timedataset.TimeDataset, trainEndYear, entropySeed int) (map[forecast.Kind]*Result, error) {
	results := make(map[forecast.Kind]*Result, len(forecast.Kinds()))
	for _, kind := range forecast.Kinds() {
		res, err := h.Run(td, trainEndYear, kind, entropySeed)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				slog.Debug("backtest unavailable", "model", kind.String(), "train_end_year", trainEndYear, "error", err.Error())
				results[kind] = nil
				continue
			}
			return nil, err
		}
		results[kind] = res
	}
	return results, nil
}
