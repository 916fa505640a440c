package backtest

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-horizon/forecast"
	"github.com/aouyang1/go-horizon/reference"
	"github.com/goccy/go-json"
)

// Row is a flattened suite entry for the transparency report
type Row struct {
	Metric      reference.Metric `json:"metric"`
	Model       forecast.Kind    `json:"model"`
	Available   bool             `json:"available"`
	TrainWindow string           `json:"train_window,omitempty"`
	TestWindow  string           `json:"test_window,omitempty"`
	MAE         float64          `json:"mae"`
	RMSE        float64          `json:"rmse"`
	MAPE        float64          `json:"mape"`
	N           int              `json:"n"`
	Grade       Grade            `json:"grade,omitempty"`
	Quality     Quality          `json:"quality,omitempty"`
}

// NewRow flattens a single result. A nil result produces an unavailable row.
func NewRow(m reference.Metric, kind forecast.Kind, r *Result) Row {
	row := Row{
		Metric: m,
		Model:  kind,
	}
	if r == nil {
		return row
	}
	g := r.Grade()
	row.Available = true
	row.TrainWindow = r.TrainWindow
	row.TestWindow = r.TestWindow
	row.MAE = r.MAE
	row.RMSE = r.RMSE
	row.MAPE = r.MAPE
	row.N = r.N
	row.Grade = g
	row.Quality = g.Quality()
	return row
}

// FormatResults flattens the suite into rows ordered by metric then model
func FormatResults(s *Suite) []Row {
	var rows []Row
	for _, m := range reference.Metrics() {
		results, exists := s.Results[m]
		if !exists {
			continue
		}
		for _, kind := range forecast.Kinds() {
			res, exists := results[kind]
			if !exists {
				continue
			}
			rows = append(rows, NewRow(m, kind, res))
		}
	}
	return rows
}

// TablePrint writes the rows as an aligned table
func TablePrint(w io.Writer, rows []Row) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprint(tbl, "Metric\tModel\tTrain\tTest\tMAE\tRMSE\tMAPE\tN\tGrade\t\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if !r.Available {
			if _, err := fmt.Fprintf(tbl, "%s\t%s\t...\t...\t...\t...\t...\t0\tn/a\t\n", r.Metric, r.Model); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tbl, "%s\t%s\t%s\t%s\t%.3f\t%.3f\t%.2f%%\t%d\t%s (%s)\t\n",
			r.Metric, r.Model, r.TrainWindow, r.TestWindow,
			r.MAE, r.RMSE, r.MAPE, r.N, r.Grade, r.Quality); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal json, %w", err)
	}
	if _, err := w.Write(append(bytes, '\n')); err != nil {
		return err
	}
	return nil
}
