// Package forecast projects a yearly series forward with linear, exponential, entropy
// perturbed and composite models. All projections are deterministic given their inputs.
package forecast

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aouyang1/go-horizon/rng"
	"github.com/aouyang1/go-horizon/timedataset"
)

var (
	ErrNoDataset            = errors.New("no dataset")
	ErrEntropySeedRange     = fmt.Errorf("entropy seed must be in [0, %d]", MaxEntropySeed)
	ErrMismatchedComponents = errors.New("component projections cover different years")
)

// Forecaster projects datasets using a fixed set of options
type Forecaster struct {
	opt *Options
}

// New creates a new forecaster with the given options. If none are provided, a default
// is used
func New(opt *Options) (*Forecaster, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to validate forecast options, %w", err)
	}
	return &Forecaster{opt: opt}, nil
}

// Options returns the options used by the forecaster
func (f *Forecaster) Options() *Options {
	return f.opt
}

// Project dispatches to the model selected by kind. The entropy seed is ignored by the
// linear and exponential models.
func (f *Forecaster) Project(kind Kind, td *timedataset.TimeDataset, toYear, entropySeed int) (*Result, error) {
	switch kind {
	case KindLinear:
		return f.Linear(td, toYear)
	case KindExponential:
		return f.Exponential(td, toYear)
	case KindEntropy:
		return f.Entropy(td, toYear, entropySeed)
	case KindComposite:
		return f.Composite(td, toYear, entropySeed)
	default:
		return nil, fmt.Errorf("%s, %w", kind, ErrUnknownKind)
	}
}

func horizon(td *timedataset.TimeDataset, toYear int) ([]int, error) {
	if td == nil {
		return nil, ErrNoDataset
	}
	return td.HorizonYears(toYear)
}

// Linear fits an ordinary least squares line and projects every year after the last
// observation through toYear.
func (f *Forecaster) Linear(td *timedataset.TimeDataset, toYear int) (*Result, error) {
	years, err := horizon(td, toYear)
	if err != nil {
		return nil, err
	}
	trend, err := FitLinear(td)
	if err != nil {
		return nil, err
	}
	r2 := trend.RSquared
	return &Result{
		Kind:        KindLinear,
		Predictions: trend.project(years, td.LastYear(), f.opt.LinearDecay, f.opt.LinearMargin),
		RSquared:    &r2,
	}, nil
}

// Exponential fits a line to the log of the series and back transforms the projection.
// Confidence decays faster than the linear model and bounds are wider.
func (f *Forecaster) Exponential(td *timedataset.TimeDataset, toYear int) (*Result, error) {
	years, err := horizon(td, toYear)
	if err != nil {
		return nil, err
	}
	trend, err := FitExponential(td)
	if err != nil {
		return nil, err
	}
	r2 := trend.RSquared
	return &Result{
		Kind:        KindExponential,
		Predictions: trend.project(years, td.LastYear(), f.opt.ExponentialDecay, f.opt.ExponentialMargin),
		RSquared:    &r2,
	}, nil
}

func validateEntropySeed(entropySeed int) error {
	if entropySeed < 0 || entropySeed > MaxEntropySeed {
		return fmt.Errorf("got %d, %w", entropySeed, ErrEntropySeedRange)
	}
	return nil
}

// Entropy perturbs the linear projection with gaussian noise drawn from a generator seeded
// by the entropy seed. Noise amplitude grows with the entropy seed and the distance from the
// last observation while confidence is penalized by the entropy seed.
func (f *Forecaster) Entropy(td *timedataset.TimeDataset, toYear, entropySeed int) (*Result, error) {
	if err := validateEntropySeed(entropySeed); err != nil {
		return nil, err
	}
	base, err := f.Linear(td, toYear)
	if err != nil {
		return nil, err
	}

	lastYear := td.LastYear()
	baseValue := td.LastValue()
	intensity := float64(entropySeed) / 100.0
	penalty := float64(entropySeed) / f.opt.EntropyPenaltyScale

	r := rng.NewFromEntropy(entropySeed)
	noise := r.Gaussians(toYear - lastYear)

	preds := make([]Prediction, 0, len(base.Predictions))
	for i, p := range base.Predictions {
		dist := p.Year - lastYear
		amplitude := baseValue * intensity * (float64(dist) / 10.0)
		preds = append(preds, Prediction{
			Year:       p.Year,
			Value:      math.Max(0, p.Value+noise[i]*amplitude),
			Confidence: math.Max(f.opt.EntropyMinConfidence, p.Confidence-penalty),
			Upper:      p.Upper + amplitude,
			Lower:      math.Max(0, p.Lower-amplitude),
		})
	}
	return &Result{
		Kind:        KindEntropy,
		Predictions: preds,
	}, nil
}

// Composite blends the linear, exponential and entropy projections weighting each by its
// confidence. Bounds take the widest envelope of the three and confidence is their mean.
// The blended value is not clamped to be non-negative.
func (f *Forecaster) Composite(td *timedataset.TimeDataset, toYear, entropySeed int) (*Result, error) {
	linear, err := f.Linear(td, toYear)
	if err != nil {
		return nil, fmt.Errorf("unable to project linear component, %w", err)
	}
	exponential, err := f.Exponential(td, toYear)
	if err != nil {
		return nil, fmt.Errorf("unable to project exponential component, %w", err)
	}
	entropy, err := f.Entropy(td, toYear, entropySeed)
	if err != nil {
		return nil, fmt.Errorf("unable to project entropy component, %w", err)
	}

	n := len(linear.Predictions)
	if len(exponential.Predictions) != n || len(entropy.Predictions) != n {
		return nil, ErrMismatchedComponents
	}

	preds := make([]Prediction, 0, n)
	comps := make([]Components, 0, n)
	for i := 0; i < n; i++ {
		l, e, s := linear.Predictions[i], exponential.Predictions[i], entropy.Predictions[i]
		if l.Year != e.Year || l.Year != s.Year {
			return nil, fmt.Errorf("at index %d, %w", i, ErrMismatchedComponents)
		}

		values := [3]float64{l.Value, e.Value, s.Value}
		weights := [3]float64{l.Confidence, e.Confidence, s.Confidence}
		total := weights[0] + weights[1] + weights[2]
		if total == 0 {
			slog.Warn("all component confidences are zero, using equal weights", "year", l.Year)
			weights = [3]float64{1, 1, 1}
			total = 3
		}

		var value float64
		for j := range values {
			value += values[j] * (weights[j] / total)
		}

		preds = append(preds, Prediction{
			Year:       l.Year,
			Value:      value,
			Confidence: (l.Confidence + e.Confidence + s.Confidence) / 3.0,
			Upper:      math.Max(l.Upper, math.Max(e.Upper, s.Upper)),
			Lower:      math.Min(l.Lower, math.Min(e.Lower, s.Lower)),
		})
		comps = append(comps, Components{
			Year:        l.Year,
			Linear:      l.Value,
			Exponential: e.Value,
			Entropy:     s.Value,
		})
	}

	return &Result{
		Kind:        KindComposite,
		Predictions: preds,
		Components:  comps,
	}, nil
}
