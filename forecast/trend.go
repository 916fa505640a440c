package forecast

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-horizon/linearmodel"
	"github.com/aouyang1/go-horizon/timedataset"
)

// Trend is a year indexed least squares fit, optionally in log space
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
	LogSpace  bool    `json:"log_space"`
}

// FitLinear fits value = slope*year + intercept. RSquared is clamped to [0, 1].
func FitLinear(td *timedataset.TimeDataset) (*Trend, error) {
	return fitTrend(td.YearsFloat(), td.Values, false)
}

// FitExponential fits ln(max(value, 1)) = slope*year + intercept
func FitExponential(td *timedataset.TimeDataset) (*Trend, error) {
	logValues := make([]float64, len(td.Values))
	for i, v := range td.Values {
		logValues[i] = math.Log(math.Max(v, 1.0))
	}
	return fitTrend(td.YearsFloat(), logValues, true)
}

func fitTrend(x, y []float64, logSpace bool) (*Trend, error) {
	ols, err := linearmodel.NewOLSRegression(nil)
	if err != nil {
		return nil, err
	}
	if err := ols.Fit(x, y); err != nil {
		return nil, fmt.Errorf("unable to fit trend, %w", err)
	}
	r2, err := ols.Score(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to score trend, %w", err)
	}
	return &Trend{
		Slope:     ols.Coef(),
		Intercept: ols.Intercept(),
		RSquared:  math.Min(1.0, math.Max(0.0, r2)),
		LogSpace:  logSpace,
	}, nil
}

// ValueAt evaluates the trend at year, back transforming log space fits
func (t *Trend) ValueAt(year int) float64 {
	v := t.Slope*float64(year) + t.Intercept
	if t.LogSpace {
		return math.Exp(v)
	}
	return v
}

// project evaluates the trend over years with confidence decaying by decay per year past
// lastYear and bounds widening as confidence drops.
func (t *Trend) project(years []int, lastYear int, decay, margin float64) []Prediction {
	preds := make([]Prediction, 0, len(years))
	for _, year := range years {
		value := t.ValueAt(year)
		dist := year - lastYear
		confidence := t.RSquared * math.Pow(decay, float64(dist))
		m := math.Abs(value) * margin * (1.0 - confidence)
		preds = append(preds, Prediction{
			Year:       year,
			Value:      value,
			Confidence: confidence,
			Upper:      value + m,
			Lower:      math.Max(0, value-m),
		})
	}
	return preds
}
