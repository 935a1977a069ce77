package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrMissingArtifact means one or both artifact files are absent.
	ErrMissingArtifact = errors.New("artifact file missing")
	// ErrCorruptArtifact means an artifact file exists but cannot be decoded.
	ErrCorruptArtifact = errors.New("artifact file corrupt")
)

// Artifacts bundles the fitted scaler and classifier. Both are loaded
// together or not at all; a partial load never escapes this package.
type Artifacts struct {
	Scaler *StandardScaler
	Model  *RandomForest

	ScalerPath string
	ModelPath  string
}

// readArtifactFile is swapped in tests to count filesystem reads.
var readArtifactFile = os.ReadFile

// ArtifactLoader loads the artifact pair at most once per process.
// The first result, success or failure, is cached for every later call.
type ArtifactLoader struct {
	once      sync.Once
	artifacts *Artifacts
	err       error
}

func (l *ArtifactLoader) Load(scalerPath, modelPath string) (*Artifacts, error) {
	l.once.Do(func() {
		l.artifacts, l.err = loadArtifacts(scalerPath, modelPath)
	})
	return l.artifacts, l.err
}

func loadArtifacts(scalerPath, modelPath string) (*Artifacts, error) {
	scalerRaw, err := readArtifactFile(scalerPath)
	if err != nil {
		return nil, classifyReadError(err, scalerPath, modelPath)
	}
	modelRaw, err := readArtifactFile(modelPath)
	if err != nil {
		return nil, classifyReadError(err, scalerPath, modelPath)
	}

	var scaler StandardScaler
	if err := json.Unmarshal(scalerRaw, &scaler); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArtifact, scalerPath, err)
	}
	if len(scaler.Mean) == 0 || len(scaler.Mean) != len(scaler.Scale) {
		return nil, fmt.Errorf("%w: %s: empty or inconsistent mean/scale", ErrCorruptArtifact, scalerPath)
	}

	model := &RandomForest{}
	if err := model.decode(modelRaw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArtifact, modelPath, err)
	}

	return &Artifacts{
		Scaler:     &scaler,
		Model:      model,
		ScalerPath: scalerPath,
		ModelPath:  modelPath,
	}, nil
}

func classifyReadError(err error, scalerPath, modelPath string) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: expected %s and %s", ErrMissingArtifact, scalerPath, modelPath)
	}
	return err
}
