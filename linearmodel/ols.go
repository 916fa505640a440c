package linearmodel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoOptions          = errors.New("no initialized model options")
	ErrNoTrainingArray    = errors.New("no training array")
	ErrNoTargetArray      = errors.New("no target array")
	ErrTargetLenMismatch  = errors.New("target length does not match training length")
	ErrInsufficientPoints = errors.New("need at least 2 observations to fit")
	ErrDegenerateDesign   = errors.New("regressor has no variance")
	ErrUntrained          = errors.New("model has not been fit")
)

// OLSOptions represents input options to run the OLS Regression
type OLSOptions struct {
	// FitIntercept fits y = m*x + b if true, otherwise y = m*x
	FitIntercept bool
}

// Validate runs basic validation on OLS options
func (o *OLSOptions) Validate() (*OLSOptions, error) {
	if o == nil {
		o = NewDefaultOLSOptions()
	}

	return o, nil
}

// NewDefaultOLSOptions returns a default set of OLS Regression options
func NewDefaultOLSOptions() *OLSOptions {
	return &OLSOptions{
		FitIntercept: true,
	}
}

// OLSRegression computes a single regressor ordinary least squares fit
type OLSRegression struct {
	opt       *OLSOptions
	coef      float64
	intercept float64
	trained   bool
}

// NewOLSRegression initializes an ordinary least squares model ready for fitting
func NewOLSRegression(opt *OLSOptions) (*OLSRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &OLSRegression{
		opt: opt,
	}, nil
}

func validateXY(x, y []float64) error {
	if x == nil {
		return ErrNoTrainingArray
	}
	if y == nil {
		return ErrNoTargetArray
	}
	if len(x) != len(y) {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", len(x), len(y), ErrTargetLenMismatch)
	}
	return nil
}

// Fit the model according to the given training data
func (o *OLSRegression) Fit(x, y []float64) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if err := validateXY(x, y); err != nil {
		return err
	}
	if len(x) < 2 {
		return fmt.Errorf("got %d observations, %w", len(x), ErrInsufficientPoints)
	}

	if !o.opt.FitIntercept {
		if floats.Dot(x, x) == 0 {
			return ErrDegenerateDesign
		}
		o.intercept, o.coef = stat.LinearRegression(x, y, nil, true)
		o.trained = true
		return nil
	}

	// fit on values centered at their means
	if stat.Variance(x, nil) == 0 {
		return ErrDegenerateDesign
	}
	o.intercept, o.coef = stat.LinearRegression(x, y, nil, false)
	o.trained = true
	return nil
}

// Predict using the OLS model
func (o *OLSRegression) Predict(x []float64) ([]float64, error) {
	if o.opt == nil {
		return nil, ErrNoOptions
	}
	if !o.trained {
		return nil, ErrUntrained
	}
	if x == nil {
		return nil, ErrNoTrainingArray
	}

	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = o.coef*xi + o.intercept
	}
	return res, nil
}

// Score computes the coefficient of determination of the prediction. A target with no
// variance is defined as a perfect fit of 1.0.
func (o *OLSRegression) Score(x, y []float64) (float64, error) {
	if err := validateXY(x, y); err != nil {
		return 0.0, err
	}

	res, err := o.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return RSquared(res, y), nil
}

// Intercept returns the computed intercept if FitIntercept is set to true. Defaults to 0.0 if not set.
func (o *OLSRegression) Intercept() float64 {
	return o.intercept
}

// Coef returns the trained slope
func (o *OLSRegression) Coef() float64 {
	return o.coef
}

// RSquared returns 1 - SSres/SStot of the predicted values against the actual values,
// returning 1.0 when the actual values are constant.
func RSquared(predicted, actual []float64) float64 {
	meanY := stat.Mean(actual, nil)

	var ssRes, ssTot float64
	for i, yi := range actual {
		d := yi - predicted[i]
		ssRes += d * d
		dm := yi - meanY
		ssTot += dm * dm
	}
	if ssTot == 0 {
		return 1.0
	}
	return 1.0 - ssRes/ssTot
}
