package classifier

import (
	"errors"
	"fmt"
)

// Errors returned by forest prediction. Callers treat any prediction
// failure as a signal to switch to rule-based scoring, never as fatal.
var (
	ErrEmptyForest     = errors.New("forest has no trees")
	ErrMalformedTree   = errors.New("malformed tree structure")
	ErrVectorTooShort  = errors.New("feature vector shorter than tree expects")
	ErrNoProbabilities = errors.New("forest produced no probabilities")
)

// Tree is a single decision tree in sklearn's parallel-array export
// layout. A node is a leaf when its left child index is -1.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"` // per-node class counts
}

// Forest is a trained binary classifier: an ensemble of decision trees
// whose leaf class distributions are averaged.
type Forest struct {
	NClasses int    `json:"n_classes"`
	Trees    []Tree `json:"trees"`
}

// Validate checks structural consistency of the exported trees.
func (f *Forest) Validate() error {
	if len(f.Trees) == 0 {
		return ErrEmptyForest
	}
	if f.NClasses < 1 {
		return fmt.Errorf("%w: n_classes=%d", ErrMalformedTree, f.NClasses)
	}
	for ti, t := range f.Trees {
		n := len(t.ChildrenLeft)
		if n == 0 || len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
			return fmt.Errorf("%w: tree %d has inconsistent node arrays", ErrMalformedTree, ti)
		}
		for ni, row := range t.Value {
			if len(row) != f.NClasses {
				return fmt.Errorf("%w: tree %d node %d has %d class values, want %d",
					ErrMalformedTree, ti, ni, len(row), f.NClasses)
			}
		}
	}
	return nil
}

// PredictProba returns the averaged class-probability distribution for a
// single feature vector.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, ErrEmptyForest
	}

	probs := make([]float64, f.NClasses)
	for ti := range f.Trees {
		leaf, err := f.Trees[ti].predictDist(x)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", ti, err)
		}
		for c, p := range leaf {
			probs[c] += p
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs, nil
}

// predictDist walks the tree and returns the normalized class
// distribution at the reached leaf.
func (t *Tree) predictDist(x []float64) ([]float64, error) {
	node := 0
	for steps := 0; steps <= len(t.ChildrenLeft); steps++ {
		if node < 0 || node >= len(t.ChildrenLeft) {
			return nil, fmt.Errorf("%w: node index %d out of range", ErrMalformedTree, node)
		}
		if t.ChildrenLeft[node] == -1 {
			return normalize(t.Value[node])
		}
		feat := t.Feature[node]
		if feat < 0 || feat >= len(x) {
			return nil, fmt.Errorf("%w: feature index %d, vector length %d", ErrVectorTooShort, feat, len(x))
		}
		if x[feat] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return nil, fmt.Errorf("%w: cycle detected", ErrMalformedTree)
}

func normalize(counts []float64) ([]float64, error) {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return nil, ErrNoProbabilities
	}
	dist := make([]float64, len(counts))
	for i, c := range counts {
		dist[i] = c / total
	}
	return dist, nil
}
