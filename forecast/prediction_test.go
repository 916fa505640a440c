package forecast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultTablePrint(t *testing.T) {
	r2 := 0.98765
	testData := map[string]struct {
		res      *Result
		prefix   string
		indent   string
		expected string
	}{
		"no predictions": {
			res: &Result{Kind: KindEntropy},
			expected: `Forecast: entropy
 Year Value Confidence Lower Upper
`,
		},
		"with prefix and indent": {
			res: &Result{
				Kind:     KindLinear,
				RSquared: &r2,
				Predictions: []Prediction{
					{Year: 2025, Value: 10, Confidence: 0.97, Upper: 10.09, Lower: 9.91},
					{Year: 2026, Value: 120.5, Confidence: 0.9409, Upper: 122.63, Lower: 118.37},
				},
			},
			prefix: "--",
			indent: "**",
			expected: `--Forecast: linear
--**R2: 0.988
 --**Year   Value Confidence   Lower   Upper
 --**2025  10.000      0.970   9.910  10.090
 --**2026 120.500      0.941 118.370 122.630
`,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.Nil(t, td.res.TablePrint(&buf, td.prefix, td.indent))
			assert.Equal(t, td.expected, buf.String())
		})
	}
}

func TestResultYears(t *testing.T) {
	res := &Result{Predictions: []Prediction{{Year: 2025}, {Year: 2026}}}
	assert.Equal(t, []int{2025, 2026}, res.Years())

	_, ok := (&Result{}).Last()
	assert.False(t, ok)
}
