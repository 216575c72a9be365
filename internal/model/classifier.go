package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// treeNode is one node of an array-encoded decision tree. Children are
// indexes into the same tree's node slice; leaves carry the class label.
type treeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// artifact is the on-disk shape of the serialized classifier. The artifact
// declares its own feature order and the category levels it was trained
// with; the encoder follows the artifact, not the UI.
type artifact struct {
	ModelVersion      string              `json:"model_version"`
	NumClasses        int                 `json:"num_classes"`
	FeatureNames      []string            `json:"feature_names"`
	CategoricalLevels map[string][]string `json:"categorical_levels"`
	Trees             [][]treeNode        `json:"trees"`
}

// Classifier is the pre-trained performance classifier: a majority-vote
// ensemble of decision trees. It is loaded once at startup and is
// read-only afterwards, so it is safe to share across requests.
type Classifier struct {
	art artifact
}

// Load reads and validates a serialized classifier artifact. Any failure
// here is fatal to the caller: without the artifact the service cannot
// serve predictions.
func Load(path string) (*Classifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(payload, &art); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if err := validateArtifact(art); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	return &Classifier{art: art}, nil
}

// Version returns the artifact's version string.
func (c *Classifier) Version() string {
	return c.art.ModelVersion
}

// FeatureNames returns the feature order the artifact expects.
func (c *Classifier) FeatureNames() []string {
	names := make([]string, len(c.art.FeatureNames))
	copy(names, c.art.FeatureNames)
	return names
}

// Predict runs one synchronous inference on a single record and returns
// the majority class across the ensemble.
func (c *Classifier) Predict(rec StudentRecord) (PerformanceClass, error) {
	vec, err := c.encode(rec)
	if err != nil {
		return 0, err
	}

	votes := make(map[int]int, c.art.NumClasses)
	for i, tree := range c.art.Trees {
		label, err := walkTree(tree, vec)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		votes[label]++
	}

	best := 0
	bestCount := -1
	for label, count := range votes {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}
	return PerformanceClass(best), nil
}

// encode assembles the feature vector in the artifact's declared order.
// Categorical values become the index of their level as seen in training.
func (c *Classifier) encode(rec StudentRecord) ([]float64, error) {
	vec := make([]float64, len(c.art.FeatureNames))
	for i, name := range c.art.FeatureNames {
		if IsCategorical(name) {
			value, err := rec.CategoricalValue(name)
			if err != nil {
				return nil, err
			}
			idx, err := levelIndex(c.art.CategoricalLevels[name], value)
			if err != nil {
				return nil, fmt.Errorf("attribute %s: %w", name, err)
			}
			vec[i] = float64(idx)
			continue
		}

		value, err := rec.NumericValue(name)
		if err != nil {
			return nil, err
		}
		vec[i] = value
	}
	return vec, nil
}

func levelIndex(levels []string, value string) (int, error) {
	for i, level := range levels {
		if level == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown category level %q", value)
}

func walkTree(nodes []treeNode, vec []float64) (int, error) {
	idx := 0
	for range nodes {
		node := nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(vec) {
			return 0, fmt.Errorf("feature index %d out of range", node.FeatureIdx)
		}
		if vec[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(nodes) {
			return 0, errors.New("child index out of range")
		}
	}
	// A well-formed tree terminates at a leaf before visiting every node.
	return 0, errors.New("cycle detected in tree")
}

func validateArtifact(art artifact) error {
	if len(art.Trees) == 0 {
		return errors.New("artifact contains no trees")
	}
	if art.NumClasses <= 0 {
		return errors.New("num_classes must be positive")
	}
	if len(art.FeatureNames) == 0 {
		return errors.New("artifact declares no features")
	}

	known := make(map[string]bool, len(AttributeKeys))
	for _, key := range AttributeKeys {
		known[key] = true
	}
	seen := make(map[string]bool, len(art.FeatureNames))
	for _, name := range art.FeatureNames {
		if !known[name] {
			return fmt.Errorf("artifact expects unsupported feature %q", name)
		}
		if seen[name] {
			return fmt.Errorf("artifact declares feature %q twice", name)
		}
		seen[name] = true
		if IsCategorical(name) && len(art.CategoricalLevels[name]) == 0 {
			return fmt.Errorf("artifact missing category levels for %q", name)
		}
	}

	for t, tree := range art.Trees {
		if len(tree) == 0 {
			return fmt.Errorf("tree %d is empty", t)
		}
		for n, node := range tree {
			if node.IsLeaf {
				continue
			}
			if node.LeftChild < 0 || node.LeftChild >= len(tree) ||
				node.RightChild < 0 || node.RightChild >= len(tree) {
				return fmt.Errorf("tree %d node %d has out-of-range child", t, n)
			}
			if node.FeatureIdx < 0 || node.FeatureIdx >= len(art.FeatureNames) {
				return fmt.Errorf("tree %d node %d references unknown feature", t, n)
			}
		}
	}

	return nil
}
