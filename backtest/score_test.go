package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		err       error
	}{
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{},
		},
		"mixed errors": {
			predicted: []float64{110, 90, 100},
			actual:    []float64{100, 100, 100},
			expected: &Scores{
				MAE:  20.0 / 3.0,
				RMSE: math.Sqrt(200.0 / 3.0),
				MAPE: 20.0 / 3.0,
			},
		},
		"zero actual": {
			predicted: []float64{5, 110},
			actual:    []float64{0, 100},
			expected: &Scores{
				MAE:  7.5,
				RMSE: math.Sqrt(62.5),
				MAPE: 5.0,
			},
		},
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"empty": {
			predicted: []float64{},
			actual:    []float64{},
			err:       ErrNoPoints,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			scores, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.MAE, scores.MAE, 1e-9)
			assert.InDelta(t, td.expected.RMSE, scores.RMSE, 1e-9)
			assert.InDelta(t, td.expected.MAPE, scores.MAPE, 1e-9)
		})
	}
}

func TestPctError(t *testing.T) {
	assert.Equal(t, 0.0, PctError(10, 0))
	assert.InDelta(t, 0.5, PctError(-5, -10), 1e-12)
	assert.InDelta(t, 0.1, PctError(110, 100), 1e-12)
}
