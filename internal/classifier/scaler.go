package classifier

import "fmt"

// Scaler is a fitted standard scaler: per-feature mean/scale as exported
// from training.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform applies (x - mean) / scale per feature. A zero scale entry is
// treated as 1, matching how training exports constant features. A length
// mismatch is an error; the caller degrades to the raw vector.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler has %d means but %d scales", len(s.Mean), len(s.Scale))
	}
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("scaler fitted on %d features, got %d", len(s.Mean), len(x))
	}

	out := make([]float64, len(x))
	for i := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (x[i] - s.Mean[i]) / scale
	}
	return out, nil
}
