package horizon

import (
	"fmt"

	"github.com/aouyang1/go-horizon/forecast"
)

// Options configures a Horizon
type Options struct {
	ForecastOptions *forecast.Options `json:"forecast_options"`
}

// NewDefaultOptions returns a default set of options
func NewDefaultOptions() *Options {
	return &Options{
		ForecastOptions: forecast.NewDefaultOptions(),
	}
}

// Validate fills in defaults and validates nested options
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	fOpt, err := o.ForecastOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid forecast options, %w", err)
	}
	return &Options{ForecastOptions: fOpt}, nil
}
