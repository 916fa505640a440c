package horizon

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
	"github.com/aouyang1/go-horizon/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineForecast(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	td, err := timedataset.NewYearlyDataset(lineYears, lineValues)
	require.Nil(t, err)

	res, err := h.ForecastDataset(td, 2019, forecast.KindLinear, 0)
	require.Nil(t, err)

	line := LineForecast(td, res)
	require.Len(t, line.MultiSeries, 4)

	names := make([]string, 0, len(line.MultiSeries))
	for _, s := range line.MultiSeries {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Actual", "Forecast", "Upper", "Lower"}, names)

	// history plus three projected years
	for _, s := range line.MultiSeries {
		assert.Len(t, s.Data, 7)
	}
}

func TestPlotForecast(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	td, err := timedataset.NewYearlyDataset(lineYears, lineValues)
	require.Nil(t, err)

	testData := map[string]struct {
		kind       forecast.Kind
		components bool
	}{
		"linear":    {kind: forecast.KindLinear},
		"composite": {kind: forecast.KindComposite, components: true},
	}

	for name, td2 := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := h.ForecastDataset(td, 2025, td2.kind, 10)
			require.Nil(t, err)

			var buf bytes.Buffer
			require.Nil(t, PlotForecast(&buf, td, res))

			out := buf.String()
			assert.Contains(t, out, "Forecast")
			assert.Contains(t, out, "Upper")
			if td2.components {
				assert.Contains(t, out, "Forecast Components")
				assert.Contains(t, out, "Exponential")
			} else {
				assert.NotContains(t, out, "Forecast Components")
			}
		})
	}
}

func TestPlotBacktest(t *testing.T) {
	h, err := New(nil)
	require.Nil(t, err)

	e, err := reference.Default()
	require.Nil(t, err)
	td, err := e.Dataset(reference.MetricHomeValue)
	require.Nil(t, err)

	results, err := h.BacktestAll(td.Years, td.Values, reference.DefaultTrainEndYear, 5)
	require.Nil(t, err)

	line := LineBacktest("home_value", results)
	require.Len(t, line.MultiSeries, 1+len(forecast.Kinds()))
	assert.Equal(t, "Actual", line.MultiSeries[0].Name)
	assert.Equal(t, "linear", line.MultiSeries[1].Name)

	var buf bytes.Buffer
	require.Nil(t, PlotBacktest(&buf, "home_value", results))
	assert.Contains(t, buf.String(), "composite")
}
