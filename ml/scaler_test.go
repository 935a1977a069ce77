package ml

import (
	"errors"
	"math"
	"testing"
)

func TestStandardScalerTransform(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{50, 70, 90, 3, 3},
		Scale: []float64{10, 10, 5, 2, 1},
	}

	out, err := scaler.Transform([]float64{60, 70, 80, 5, 2}, FeatureNames())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 0, -2, 1, -1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestStandardScalerArityMismatch(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{50, 70},
		Scale: []float64{10, 10},
	}
	if _, err := scaler.Transform([]float64{1, 2, 3}, nil); err == nil {
		t.Fatal("expected error for arity mismatch")
	}
}

func TestStandardScalerZeroScale(t *testing.T) {
	scaler := &StandardScaler{
		Mean:  []float64{5},
		Scale: []float64{0},
	}
	out, err := scaler.Transform([]float64{8}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 3 {
		t.Fatalf("expected zero scale to fall back to identity, got %f", out[0])
	}
}

func TestStandardScalerNameMismatchIsDiagnostic(t *testing.T) {
	scaler := &StandardScaler{
		Mean:         []float64{50, 70, 90, 3, 3},
		Scale:        []float64{10, 10, 5, 2, 1},
		FeatureNames: []string{"a", "b", "c", "d", "e"},
	}

	out, err := scaler.Transform([]float64{60, 70, 80, 5, 2}, FeatureNames())
	if !errors.Is(err, ErrFeatureNameMismatch) {
		t.Fatalf("expected ErrFeatureNameMismatch, got %v", err)
	}
	if !IsDiagnostic(err) {
		t.Fatal("name mismatch should be classified as a diagnostic")
	}
	if out == nil {
		t.Fatal("diagnostic must not discard the transformed vector")
	}
	if out[0] != 1 {
		t.Fatalf("diagnostic must not alter values, got %f", out[0])
	}
}
