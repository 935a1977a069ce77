package ml

import (
	"encoding/json"
	"errors"
	"os"
)

// TreeNode is one node in a flattened binary decision tree. Children are
// indices into the same node slice; -1 marks no child.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// DecisionTree traverses a flat node array: values <= threshold go left.
type DecisionTree struct {
	nodes []TreeNode
}

func NewDecisionTree(nodes []TreeNode) *DecisionTree {
	return &DecisionTree{nodes: nodes}
}

func (dt *DecisionTree) Predict(features []float64) (int, error) {
	if len(dt.nodes) == 0 {
		return 0, errors.New("tree is empty")
	}
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, errors.New("feature index out of range")
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.nodes) {
			return 0, errors.New("invalid tree state")
		}
	}
}

// RandomForest is a binary {0,1} ensemble. The positive-class probability
// is the fraction of trees voting 1.
type RandomForest struct {
	trees []*DecisionTree
}

type forestFile struct {
	Trees [][]TreeNode `json:"trees"`
}

func NewRandomForest(trees []*DecisionTree) *RandomForest {
	return &RandomForest{trees: trees}
}

func (rf *RandomForest) TreeCount() int {
	return len(rf.trees)
}

// PredictProba returns the probability of class 1.
func (rf *RandomForest) PredictProba(features []float64) (float64, error) {
	if len(rf.trees) == 0 {
		return 0, errors.New("forest is empty")
	}
	positive := 0
	for _, tree := range rf.trees {
		label, err := tree.Predict(features)
		if err != nil {
			return 0, err
		}
		if label == 1 {
			positive++
		}
	}
	return float64(positive) / float64(len(rf.trees)), nil
}

// Predict returns the majority label and the positive-class probability.
func (rf *RandomForest) Predict(features []float64) (int, float64, error) {
	proba, err := rf.PredictProba(features)
	if err != nil {
		return 0, 0, err
	}
	label := 0
	if proba >= 0.5 {
		label = 1
	}
	return label, proba, nil
}

func (rf *RandomForest) Save(path string) error {
	if len(rf.trees) == 0 {
		return errors.New("forest is empty")
	}
	file := forestFile{Trees: make([][]TreeNode, len(rf.trees))}
	for i, tree := range rf.trees {
		file.Trees[i] = tree.nodes
	}
	payload, err := json.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func (rf *RandomForest) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return rf.decode(payload)
}

func (rf *RandomForest) decode(payload []byte) error {
	var file forestFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return err
	}
	if len(file.Trees) == 0 {
		return errors.New("forest has no trees")
	}
	trees := make([]*DecisionTree, len(file.Trees))
	for i, nodes := range file.Trees {
		if len(nodes) == 0 {
			return errors.New("forest contains an empty tree")
		}
		trees[i] = &DecisionTree{nodes: nodes}
	}
	rf.trees = trees
	return nil
}
