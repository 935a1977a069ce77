package ml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixtureArtifacts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	fixtures := newTestArtifacts()

	scalerPath := filepath.Join(dir, "scaler.json")
	modelPath := filepath.Join(dir, "random_forest.json")
	if err := fixtures.Scaler.Save(scalerPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fixtures.Model.Save(modelPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return scalerPath, modelPath
}

func TestLoadArtifacts(t *testing.T) {
	scalerPath, modelPath := writeFixtureArtifacts(t)

	loader := &ArtifactLoader{}
	artifacts, err := loader.Load(scalerPath, modelPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifacts.Scaler == nil || artifacts.Model == nil {
		t.Fatal("expected both artifacts to be loaded")
	}
	if artifacts.Model.TreeCount() != 5 {
		t.Fatalf("expected 5 trees, got %d", artifacts.Model.TreeCount())
	}
	if len(artifacts.Scaler.Mean) != len(FeatureNames()) {
		t.Fatalf("unexpected scaler arity: %d", len(artifacts.Scaler.Mean))
	}
}

func TestLoadArtifactsMissing(t *testing.T) {
	dir := t.TempDir()

	loader := &ArtifactLoader{}
	artifacts, err := loader.Load(filepath.Join(dir, "scaler.json"), filepath.Join(dir, "random_forest.json"))
	if !errors.Is(err, ErrMissingArtifact) {
		t.Fatalf("expected ErrMissingArtifact, got %v", err)
	}
	if artifacts != nil {
		t.Fatal("expected nil artifacts on missing files")
	}

	// Null artifacts must flow through Predict without panicking.
	result := Predict(StudentFeatures{TestScore: 50, AverageGrade: 75, Attendance: 90, Participation: 3}, artifacts)
	if result != nil {
		t.Fatalf("expected nil prediction, got %+v", result)
	}
}

func TestLoadArtifactsPartialIsTotal(t *testing.T) {
	scalerPath, _ := writeFixtureArtifacts(t)

	loader := &ArtifactLoader{}
	artifacts, err := loader.Load(scalerPath, filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrMissingArtifact) {
		t.Fatalf("expected ErrMissingArtifact, got %v", err)
	}
	if artifacts != nil {
		t.Fatal("one present file must not produce a partial load")
	}
}

func TestLoadArtifactsCorrupt(t *testing.T) {
	scalerPath, modelPath := writeFixtureArtifacts(t)
	if err := os.WriteFile(modelPath, []byte("not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader := &ArtifactLoader{}
	artifacts, err := loader.Load(scalerPath, modelPath)
	if !errors.Is(err, ErrCorruptArtifact) {
		t.Fatalf("expected ErrCorruptArtifact, got %v", err)
	}
	if artifacts != nil {
		t.Fatal("expected nil artifacts on corrupt file")
	}
}

func TestLoadArtifactsReadsOnce(t *testing.T) {
	scalerPath, modelPath := writeFixtureArtifacts(t)

	reads := 0
	original := readArtifactFile
	readArtifactFile = func(path string) ([]byte, error) {
		reads++
		return original(path)
	}
	defer func() { readArtifactFile = original }()

	loader := &ArtifactLoader{}
	first, err := loader.Load(scalerPath, modelPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reads != 2 {
		t.Fatalf("expected 2 reads after first load, got %d", reads)
	}

	second, err := loader.Load(scalerPath, modelPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reads != 2 {
		t.Fatalf("expected cached result, filesystem read count went to %d", reads)
	}
	if first != second {
		t.Fatal("expected the cached artifact pointer")
	}
}
