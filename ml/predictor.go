package ml

import "errors"

// PredictionResult carries the binary label and the positive-class probability.
type PredictionResult struct {
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
}

// IsDiagnostic reports whether err is a known non-fatal diagnostic from the
// scaling step. Diagnostics never change the computed values.
func IsDiagnostic(err error) bool {
	return errors.Is(err, ErrFeatureNameMismatch)
}

// Predict scales the features and classifies them. It returns nil when the
// artifacts are unavailable; the caller surfaces that as "service
// unavailable". Known non-fatal diagnostics from the transform are
// deliberately dropped without altering the result.
func Predict(f StudentFeatures, artifacts *Artifacts) *PredictionResult {
	if artifacts == nil || artifacts.Scaler == nil || artifacts.Model == nil {
		return nil
	}

	scaled, err := artifacts.Scaler.Transform(f.Vector(), FeatureNames())
	if err != nil && !IsDiagnostic(err) {
		return nil
	}

	label, proba, err := artifacts.Model.Predict(scaled)
	if err != nil {
		return nil
	}

	return &PredictionResult{Label: label, Probability: proba}
}
