package horizon

import (
	"testing"

	"github.com/aouyang1/go-horizon/backtest"
	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
	"github.com/aouyang1/go-horizon/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lineYears  = []int{2010, 2012, 2014, 2016}
	lineValues = []float64{100, 110, 120, 130}
)

func TestNew(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)
	assert.Equal(t, NewDefaultOptions(), h.Options())

	opt := NewDefaultOptions()
	opt.ForecastOptions.LinearDecay = 1.5
	_, err = New(opt)
	assert.ErrorIs(t, err, forecast.ErrInvalidDecay)
}

func TestForecast(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	res, err := h.Forecast(lineYears, lineValues, 2018, forecast.KindLinear, 0)
	require.Nil(t, err)
	assert.Equal(t, []int{2017, 2018}, res.Years())
	assert.InDelta(t, 135.0, res.Predictions[0].Value, 1e-9)
	assert.InDelta(t, 0.97, res.Predictions[0].Confidence, 1e-9)
	assert.InDelta(t, 140.0, res.Predictions[1].Value, 1e-9)

	for _, kind := range forecast.Kinds() {
		res, err := h.Forecast(lineYears, lineValues, 2030, kind, 25)
		require.Nil(t, err, kind.String())
		assert.Equal(t, kind, res.Kind)
		assert.Len(t, res.Predictions, 14)
	}
}

func TestForecastValidation(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	testData := map[string]struct {
		years  []int
		values []float64
		toYear int
		kind   forecast.Kind
		seed   int
		err    error
	}{
		"empty": {
			toYear: 2030,
			kind:   forecast.KindLinear,
			err:    timedataset.ErrNoTrainingData,
		},
		"single point": {
			years:  []int{2010},
			values: []float64{1},
			toYear: 2030,
			kind:   forecast.KindLinear,
			err:    timedataset.ErrInsufficientPoints,
		},
		"length mismatch": {
			years:  []int{2010, 2011},
			values: []float64{1},
			toYear: 2030,
			kind:   forecast.KindLinear,
			err:    timedataset.ErrDatasetLenMismatch,
		},
		"unsorted": {
			years:  []int{2011, 2010},
			values: []float64{1, 2},
			toYear: 2030,
			kind:   forecast.KindLinear,
			err:    timedataset.ErrNonMonotonic,
		},
		"horizon in past": {
			years:  lineYears,
			values: lineValues,
			toYear: 2016,
			kind:   forecast.KindExponential,
			err:    timedataset.ErrInvalidHorizon,
		},
		"seed too large": {
			years:  lineYears,
			values: lineValues,
			toYear: 2020,
			kind:   forecast.KindEntropy,
			seed:   101,
			err:    forecast.ErrEntropySeedRange,
		},
		"unknown kind": {
			years:  lineYears,
			values: lineValues,
			toYear: 2020,
			kind:   forecast.Kind(99),
			err:    forecast.ErrUnknownKind,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := h.Forecast(td.years, td.values, td.toYear, td.kind, td.seed)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestBacktest(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	e, err := reference.Default()
	require.Nil(t, err)
	td, err := e.Dataset(reference.MetricPopulation)
	require.Nil(t, err)

	res, err := h.Backtest(td.Years, td.Values, reference.DefaultTrainEndYear, forecast.KindLinear, 0)
	require.Nil(t, err)
	assert.Equal(t, "2010-2018", res.TrainWindow)
	assert.Equal(t, "2020-2024", res.TestWindow)
	assert.Equal(t, 3, res.N)
	assert.InDelta(t, 161.33333333333334, res.MAE, 1e-6)
	assert.Equal(t, backtest.GradeA, res.Grade())

	_, err = h.Backtest(td.Years, td.Values, 2024, forecast.KindLinear, 0)
	assert.ErrorIs(t, err, backtest.ErrUnavailable)

	results, err := h.BacktestAll(td.Years, td.Values, reference.DefaultTrainEndYear, 5)
	require.Nil(t, err)
	assert.Len(t, results, len(forecast.Kinds()))
	for _, kind := range forecast.Kinds() {
		require.NotNil(t, results[kind], kind.String())
		assert.Equal(t, kind, results[kind].Model)
	}

	_, err = h.BacktestAll([]int{2010}, []float64{1}, 2010, 5)
	assert.ErrorIs(t, err, timedataset.ErrInsufficientPoints)
}

func TestSuite(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	s, err := h.Suite(5)
	require.Nil(t, err)
	assert.Equal(t, reference.DefaultTrainEndYear, s.TrainEndYear)
	assert.Equal(t, 5, s.EntropySeed)
	assert.Len(t, s.Results, len(reference.Metrics()))

	rows := backtest.FormatResults(s)
	assert.Len(t, rows, len(reference.Metrics())*len(forecast.Kinds()))
}
