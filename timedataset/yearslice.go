package timedataset

import "fmt"

// YearSlice is an ordered list of observed years
type YearSlice []int

func (y YearSlice) StartYear() int {
	if len(y) < 1 {
		return 0
	}
	return y[0]
}

func (y YearSlice) EndYear() int {
	if len(y) < 1 {
		return 0
	}
	return y[len(y)-1]
}

// Window renders the covered span as "start-end", e.g. 2010-2018
func (y YearSlice) Window() string {
	return fmt.Sprintf("%d-%d", y.StartYear(), y.EndYear())
}
