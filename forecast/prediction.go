package forecast

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Prediction is a projected value for a single year along with its bounds
type Prediction struct {
	Year       int     `json:"year"`
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Upper      float64 `json:"upper"`
	Lower      float64 `json:"lower"`
}

// Result is the output of a single model projection. RSquared is only set by models fit
// directly on the series and Components only by the composite model.
type Result struct {
	Kind        Kind         `json:"model"`
	Predictions []Prediction `json:"predictions"`
	RSquared    *float64     `json:"r_squared,omitempty"`
	Components  []Components `json:"components,omitempty"`
}

// Years returns the projected years in order
func (r *Result) Years() []int {
	years := make([]int, len(r.Predictions))
	for i, p := range r.Predictions {
		years[i] = p.Year
	}
	return years
}

// Last returns the prediction at the horizon
func (r *Result) Last() (Prediction, bool) {
	if len(r.Predictions) == 0 {
		return Prediction{}, false
	}
	return r.Predictions[len(r.Predictions)-1], true
}

// TablePrint writes the predictions as an aligned table prefixing every line with prefix
// and indenting nested lines with indent.
func (r *Result) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sForecast: %s\n", prefix, indentExpand(indent, 0), r.Kind); err != nil {
		return err
	}
	if r.RSquared != nil {
		if _, err := fmt.Fprintf(w, "%s%sR2: %.3f\n", prefix, indentExpand(indent, 1), *r.RSquared); err != nil {
			return err
		}
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sYear\tValue\tConfidence\tLower\tUpper\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	for _, p := range r.Predictions {
		if _, err := fmt.Fprintf(tbl, "%s%s%d\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			prefix, indentExpand(indent, 1),
			p.Year, p.Value, p.Confidence, p.Lower, p.Upper); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}
