package backtest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrNoPoints       = errors.New("no points to score")
)

// Scores tracks the holdout error metrics
type Scores struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	MAPE float64 `json:"mape"`
}

// NewScores calculates the error metrics given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	rmse, err := RMSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute root mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}
	return &Scores{
		MAE:  mae,
		RMSE: rmse,
		MAPE: mape,
	}, nil
}

func checkLen(predicted, actual []float64) error {
	if len(predicted) != len(actual) {
		return fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return ErrNoPoints
	}
	return nil
}

// MAE computes the mean absolute error, mean(|yhat-y|)
func MAE(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}
	absErr := make([]float64, len(actual))
	for i := range actual {
		absErr[i] = math.Abs(predicted[i] - actual[i])
	}
	return stat.Mean(absErr, nil), nil
}

// RMSE computes the root mean squared error, sqrt(mean((yhat-y)^2))
func RMSE(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}
	sqErr := make([]float64, len(actual))
	for i := range actual {
		d := predicted[i] - actual[i]
		sqErr[i] = d * d
	}
	return math.Sqrt(stat.Mean(sqErr, nil)), nil
}

// PctError returns |yhat-y|/|y| or 0 when the actual value is 0
func PctError(predicted, actual float64) float64 {
	if actual == 0 {
		return 0
	}
	return math.Abs(predicted-actual) / math.Abs(actual)
}

// MAPE calculates the mean absolute percent error in percent, mean(|yhat-y|/|y|)*100. Points
// with an actual value of 0 contribute 0 but still count towards the mean.
func MAPE(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}
	pctErr := make([]float64, len(actual))
	for i := range actual {
		pctErr[i] = PctError(predicted[i], actual[i])
	}
	return stat.Mean(pctErr, nil) * 100.0, nil
}
