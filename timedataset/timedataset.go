package timedataset

import (
	"errors"
	"fmt"
	"math"
)

// MinPoints is the fewest observations a dataset can hold and still define a trend
const MinPoints = 2

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMonotonic       = errors.New("years are not strictly increasing")
	ErrDatasetLenMismatch = errors.New("years have a different length than observations")
	ErrInsufficientPoints = fmt.Errorf("need at least %d observations", MinPoints)
	ErrNonFiniteValue     = errors.New("observation is NaN or infinite")
	ErrInvalidHorizon     = errors.New("horizon year must be after the last observed year")
	ErrIndexOutOfBounds   = errors.New("slice index out of bounds")
)

// TimeDataset represents a yearly series storing a slice of years and values.
// Both must be of the same length and years must be strictly increasing.
type TimeDataset struct {
	Years  []int     `json:"years"`
	Values []float64 `json:"values"`
}

// NewYearlyDataset returns a validated copy of the provided years and values.
func NewYearlyDataset(years []int, values []float64) (*TimeDataset, error) {
	if len(values) == 0 && len(years) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(years) != len(values) {
		return nil, fmt.Errorf(
			"years has length of %d, but values has a length of %d, %w",
			len(years), len(values), ErrDatasetLenMismatch,
		)
	}
	if len(years) < MinPoints {
		return nil, fmt.Errorf("got %d observations, %w", len(years), ErrInsufficientPoints)
	}

	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value at year %d, %w", years[i], ErrNonFiniteValue)
		}
	}

	ySeries := make([]int, len(years))
	vSeries := make([]float64, len(values))
	copy(ySeries, years)
	copy(vSeries, values)
	return &TimeDataset{
		Years:  ySeries,
		Values: vSeries,
	}, nil
}

// Copy returns a deep copy of the dataset
func (td *TimeDataset) Copy() *TimeDataset {
	ySeries := make([]int, len(td.Years))
	vSeries := make([]float64, len(td.Values))
	copy(ySeries, td.Years)
	copy(vSeries, td.Values)
	return &TimeDataset{
		Years:  ySeries,
		Values: vSeries,
	}
}

// Len returns the number of observations
func (td *TimeDataset) Len() int {
	return len(td.Years)
}

// LastYear returns the final observed year
func (td *TimeDataset) LastYear() int {
	return YearSlice(td.Years).EndYear()
}

// LastValue returns the final observed value or 0 for an empty dataset
func (td *TimeDataset) LastValue() float64 {
	if len(td.Values) == 0 {
		return 0
	}
	return td.Values[len(td.Values)-1]
}

// YearsFloat returns the years as float64 regressors
func (td *TimeDataset) YearsFloat() []float64 {
	x := make([]float64, len(td.Years))
	for i, y := range td.Years {
		x[i] = float64(y)
	}
	return x
}

// IndexAfter returns the first index whose year is strictly greater than year. If no
// such year exists the dataset length is returned.
func (td *TimeDataset) IndexAfter(year int) int {
	for i, y := range td.Years {
		if y > year {
			return i
		}
	}
	return len(td.Years)
}

// Slice returns an unvalidated copy of the observations in [start, end). Slices with
// fewer than MinPoints observations are allowed so callers can inspect holdout windows.
func (td *TimeDataset) Slice(start, end int) (*TimeDataset, error) {
	if start < 0 || end > len(td.Years) || start > end {
		return nil, fmt.Errorf("[%d, %d) of %d observations, %w", start, end, len(td.Years), ErrIndexOutOfBounds)
	}
	ySeries := make([]int, end-start)
	vSeries := make([]float64, end-start)
	copy(ySeries, td.Years[start:end])
	copy(vSeries, td.Values[start:end])
	return &TimeDataset{
		Years:  ySeries,
		Values: vSeries,
	}, nil
}

// HorizonYears returns every year after the last observation up to and including toYear
func (td *TimeDataset) HorizonYears(toYear int) ([]int, error) {
	lastYear := td.LastYear()
	if toYear <= lastYear {
		return nil, fmt.Errorf("horizon %d, last year %d, %w", toYear, lastYear, ErrInvalidHorizon)
	}
	years := make([]int, 0, toYear-lastYear)
	for y := lastYear + 1; y <= toYear; y++ {
		years = append(years, y)
	}
	return years, nil
}
