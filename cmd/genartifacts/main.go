// Command genartifacts writes a small hand-specified scaler and forest
// artifact pair for local development and demos. It does not train
// anything; the values mirror the distribution the production artifacts
// were fitted on.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"edupredict/ml"
)

func main() {
	outDir := flag.String("out", "./data", "output directory for artifact files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	scaler := &ml.StandardScaler{
		Mean:         []float64{55, 72, 88, 3, 3},
		Scale:        []float64{18, 12, 9, 2.5, 1.2},
		FeatureNames: ml.FeatureNames(),
	}

	forest := buildForest(scaler)

	scalerPath := filepath.Join(*outDir, "scaler.json")
	modelPath := filepath.Join(*outDir, "random_forest.json")

	if err := scaler.Save(scalerPath); err != nil {
		log.Fatalf("Failed to save scaler: %v", err)
	}
	if err := forest.Save(modelPath); err != nil {
		log.Fatalf("Failed to save forest: %v", err)
	}

	log.Printf("Wrote %s and %s (%d trees)", scalerPath, modelPath, forest.TreeCount())
}

// buildForest returns five stumps, one per feature, each voting "needs
// support" on the low side of the advisory thresholds. Thresholds are
// expressed in scaled space so the forest composes with the scaler.
func buildForest(scaler *ml.StandardScaler) *ml.RandomForest {
	scaled := func(featureIdx int, raw float64) float64 {
		return (raw - scaler.Mean[featureIdx]) / scaler.Scale[featureIdx]
	}

	stump := func(featureIdx int, threshold float64, lowLabel, highLabel int) *ml.DecisionTree {
		return ml.NewDecisionTree([]ml.TreeNode{
			{FeatureIdx: featureIdx, Threshold: threshold, LeftChild: 1, RightChild: 2},
			{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: lowLabel, IsLeaf: true},
			{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: highLabel, IsLeaf: true},
		})
	}

	return ml.NewRandomForest([]*ml.DecisionTree{
		stump(0, scaled(0, 45), 1, 0),  // low test score
		stump(1, scaled(1, 70), 1, 0),  // low average grade
		stump(2, scaled(2, 85), 1, 0),  // low attendance
		stump(3, scaled(3, 5), 0, 1),   // frequently late
		stump(4, scaled(4, 2.5), 1, 0), // low participation
	})
}
