package timedataset

import (
	"math"

	"github.com/aouyang1/go-horizon/rng"
	"gonum.org/v1/gonum/floats"
)

// GenerateYears returns n years starting at start spaced by step
func GenerateYears(start, step, n int) []int {
	years := make([]int, 0, n)
	for i := 0; i < n; i++ {
		years = append(years, start+i*step)
	}
	return years
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) Scale(c float64) Series {
	floats.Scale(c, s)
	return s
}

// SetConst overwrites values for years in [start, end)
func (s Series) SetConst(years []int, val float64, start, end int) Series {
	for i := 0; i < len(s); i++ {
		if years[i] >= start && years[i] < end {
			s[i] = val
		}
	}
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateTrendY returns a straight line through (years[0], start) with the given yearly slope
func GenerateTrendY(years []int, start, slope float64) Series {
	y := make([]float64, 0, len(years))
	for _, yr := range years {
		y = append(y, start+slope*float64(yr-years[0]))
	}
	return Series(y)
}

// GenerateGrowthY returns a compounding series starting at base growing by rate per year
func GenerateGrowthY(years []int, base, rate float64) Series {
	y := make([]float64, 0, len(years))
	for _, yr := range years {
		y = append(y, base*math.Pow(1.0+rate, float64(yr-years[0])))
	}
	return Series(y)
}

// GenerateNoise returns reproducible gaussian noise with the given scale
func GenerateNoise(n int, scale float64, seed uint32) Series {
	r := rng.New(seed)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.Gaussian()*scale)
	}
	return Series(y)
}
