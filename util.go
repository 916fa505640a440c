package horizon

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-horizon/backtest"
	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// missing is rendered by echarts as a gap in the line
const missing = "-"

// LineYSeries generates an echart multi-line chart over years. Every series in y must have
// the same length as years.
func LineYSeries(title string, seriesName []string, years []int, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(years)
	for i, series := range seriesName {
		lineData := make([]opts.LineData, 0, len(y[i]))
		for _, v := range y[i] {
			lineData = append(lineData, opts.LineData{Value: v})
		}
		line = line.AddSeries(series, lineData)
	}
	return line
}

// LineForecast generates an echart line chart of the observed history followed by the
// projected value and its upper and lower bounds. The projection starts at the last
// observation so the lines connect.
func LineForecast(td *timedataset.TimeDataset, res *forecast.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    "Forecast",
				Subtitle: res.Kind.String(),
			},
		),
	)

	n := td.Len() + len(res.Predictions)
	years := make([]int, 0, n)
	lineDataActual := make([]opts.LineData, 0, n)
	lineDataForecast := make([]opts.LineData, 0, n)
	lineDataUpper := make([]opts.LineData, 0, n)
	lineDataLower := make([]opts.LineData, 0, n)

	lastIdx := td.Len() - 1
	for i, year := range td.Years {
		years = append(years, year)
		lineDataActual = append(lineDataActual, opts.LineData{Value: td.Values[i]})

		if i == lastIdx {
			lineDataForecast = append(lineDataForecast, opts.LineData{Value: td.Values[i]})
			lineDataUpper = append(lineDataUpper, opts.LineData{Value: td.Values[i]})
			lineDataLower = append(lineDataLower, opts.LineData{Value: td.Values[i]})
			continue
		}
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: missing})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: missing})
		lineDataLower = append(lineDataLower, opts.LineData{Value: missing})
	}

	for _, p := range res.Predictions {
		years = append(years, p.Year)
		lineDataActual = append(lineDataActual, opts.LineData{Value: missing})
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: p.Value})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: p.Upper})
		lineDataLower = append(lineDataLower, opts.LineData{Value: p.Lower})
	}

	line.SetXAxis(years).
		AddSeries("Actual", lineDataActual).
		AddSeries("Forecast", lineDataForecast).
		AddSeries("Upper", lineDataUpper).
		AddSeries("Lower", lineDataLower)
	return line
}

// LineComponents charts the individual model values blended into a composite forecast
func LineComponents(res *forecast.Result) *charts.Line {
	years := make([]int, 0, len(res.Components))
	linear := make([]float64, 0, len(res.Components))
	exponential := make([]float64, 0, len(res.Components))
	entropy := make([]float64, 0, len(res.Components))
	for _, c := range res.Components {
		years = append(years, c.Year)
		linear = append(linear, c.Linear)
		exponential = append(exponential, c.Exponential)
		entropy = append(entropy, c.Entropy)
	}
	return LineYSeries(
		"Forecast Components",
		[]string{"Linear", "Exponential", "Entropy"},
		years,
		[][]float64{linear, exponential, entropy},
	)
}

// LineBacktest charts the holdout actuals against the predictions of every available model
func LineBacktest(title string, results map[forecast.Kind]*backtest.Result) *charts.Line {
	var years []int
	var actual []float64
	names := []string{"Actual"}
	for _, kind := range forecast.Kinds() {
		res := results[kind]
		if res == nil {
			continue
		}
		if years == nil {
			for _, a := range res.Actuals {
				years = append(years, a.Year)
				actual = append(actual, a.Value)
			}
		}
		names = append(names, kind.String())
	}

	y := [][]float64{actual}
	for _, kind := range forecast.Kinds() {
		res := results[kind]
		if res == nil {
			continue
		}
		predicted := make([]float64, 0, len(res.Predictions))
		for _, p := range res.Predictions {
			predicted = append(predicted, p.Value)
		}
		y = append(y, predicted)
	}
	return LineYSeries(title, names, years, y)
}

// PlotForecast renders an html page with the forecast and, for composite forecasts, the
// component projections.
func PlotForecast(w io.Writer, td *timedataset.TimeDataset, res *forecast.Result) error {
	page := components.NewPage()
	page.AddCharts(LineForecast(td, res))
	if len(res.Components) > 0 {
		page.AddCharts(LineComponents(res))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("unable to render forecast plot, %w", err)
	}
	return nil
}

// PlotBacktest renders an html page comparing holdout predictions of every model
func PlotBacktest(w io.Writer, title string, results map[forecast.Kind]*backtest.Result) error {
	page := components.NewPage()
	page.AddCharts(LineBacktest(title, results))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("unable to render backtest plot, %w", err)
	}
	return nil
}
