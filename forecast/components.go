package forecast

// Components stores the individual model values blended into a composite prediction. These
// are only for display.
type Components struct {
	Year        int     `json:"year"`
	Linear      float64 `json:"linear"`
	Exponential float64 `json:"exponential"`
	Entropy     float64 `json:"entropy"`
}
