package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFeatureNameMismatch is a non-fatal diagnostic: the transform result is
// still valid, only the recorded feature names differ from the caller's.
// Predict discards it on purpose.
var ErrFeatureNameMismatch = errors.New("feature names do not match scaler")

// StandardScaler maps raw feature values to the distribution the classifier
// was trained on: (x - mean) / scale, per feature, in fixed order.
type StandardScaler struct {
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	FeatureNames []string  `json:"feature_names"`
}

// Transform normalizes vector. When the scaler carries recorded feature
// names and they differ from names, the normalized vector is returned
// together with ErrFeatureNameMismatch.
func (s *StandardScaler) Transform(vector []float64, names []string) ([]float64, error) {
	if len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler mean/scale arity mismatch: %d vs %d", len(s.Mean), len(s.Scale))
	}
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(vector))
	}

	normalized := make([]float64, len(vector))
	for i, value := range vector {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		normalized[i] = (value - s.Mean[i]) / scale
	}

	if len(s.FeatureNames) > 0 && !sameNames(s.FeatureNames, names) {
		return normalized, ErrFeatureNameMismatch
	}
	return normalized, nil
}

func (s *StandardScaler) Save(path string) error {
	if len(s.Mean) == 0 {
		return errors.New("scaler not fitted")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
