package forecast

import (
	"errors"
	"fmt"
)

const (
	DefaultLinearDecay       = 0.97
	DefaultLinearMargin      = 0.3
	DefaultExponentialDecay  = 0.94
	DefaultExponentialMargin = 0.5

	DefaultEntropyMinConfidence = 0.1
	DefaultEntropyPenaltyScale  = 200.0

	// MaxEntropySeed is the upper end of the entropy slider
	MaxEntropySeed = 100
)

var (
	ErrInvalidDecay      = errors.New("confidence decay must be in (0, 1]")
	ErrNegativeMargin    = errors.New("margin factor must be non-negative")
	ErrInvalidConfidence = errors.New("confidence must be in [0, 1]")
	ErrInvalidPenalty    = errors.New("entropy penalty scale must be positive")
)

// Options configures how confidence decays and how wide the bounds are for each model. The
// defaults reproduce the reference projections and should rarely be changed.
type Options struct {
	LinearDecay       float64 `json:"linear_decay"`
	LinearMargin      float64 `json:"linear_margin"`
	ExponentialDecay  float64 `json:"exponential_decay"`
	ExponentialMargin float64 `json:"exponential_margin"`

	// EntropyMinConfidence floors the entropy model confidence after the entropy penalty
	EntropyMinConfidence float64 `json:"entropy_min_confidence"`

	// EntropyPenaltyScale divides the entropy seed to get the confidence penalty
	EntropyPenaltyScale float64 `json:"entropy_penalty_scale"`
}

// NewDefaultOptions returns a set of default forecast options
func NewDefaultOptions() *Options {
	return &Options{
		LinearDecay:          DefaultLinearDecay,
		LinearMargin:         DefaultLinearMargin,
		ExponentialDecay:     DefaultExponentialDecay,
		ExponentialMargin:    DefaultExponentialMargin,
		EntropyMinConfidence: DefaultEntropyMinConfidence,
		EntropyPenaltyScale:  DefaultEntropyPenaltyScale,
	}
}

// Validate returns the default options if nil and otherwise checks every field is in range
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.LinearDecay <= 0 || o.LinearDecay > 1 {
		return nil, fmt.Errorf("linear decay %.3f, %w", o.LinearDecay, ErrInvalidDecay)
	}
	if o.ExponentialDecay <= 0 || o.ExponentialDecay > 1 {
		return nil, fmt.Errorf("exponential decay %.3f, %w", o.ExponentialDecay, ErrInvalidDecay)
	}
	if o.LinearMargin < 0 {
		return nil, fmt.Errorf("linear margin %.3f, %w", o.LinearMargin, ErrNegativeMargin)
	}
	if o.ExponentialMargin < 0 {
		return nil, fmt.Errorf("exponential margin %.3f, %w", o.ExponentialMargin, ErrNegativeMargin)
	}
	if o.EntropyMinConfidence < 0 || o.EntropyMinConfidence > 1 {
		return nil, fmt.Errorf("entropy minimum confidence %.3f, %w", o.EntropyMinConfidence, ErrInvalidConfidence)
	}
	if o.EntropyPenaltyScale <= 0 {
		return nil, ErrInvalidPenalty
	}
	return o, nil
}
