package ml

import (
	"errors"
	"math/rand"
	"sort"
)

// RegressionTree is a CART-style regression tree splitting on variance
// reduction. Leaves predict the mean target of their samples.
type RegressionTree struct {
	MaxDepth        int // 0 => no depth limit
	MinSamplesSplit int
	MaxFeatures     int // 0 => consider all features at each split
	RandomState     int64

	Root *TreeNode
}

// TreeNode is one node of a fitted tree. Fields are exported so the whole
// tree round-trips through gob.
type TreeNode struct {
	Leaf      bool
	Feature   int
	Threshold float64 // x[Feature] <= Threshold goes left
	Left      *TreeNode
	Right     *TreeNode
	Value     float64 // leaf prediction (mean of samples)
	Samples   int
}

// Fit trains the tree on the rows of X selected by idx. Index-based sampling
// lets the forest bootstrap without copying the data.
func (t *RegressionTree) Fit(X [][]float64, y []float64, idx []int) error {
	if len(X) == 0 || len(idx) == 0 {
		return errors.New("ml: regression tree fit on empty sample")
	}
	if len(y) != len(X) {
		return errors.New("ml: X and y length mismatch")
	}
	rnd := rand.New(rand.NewSource(t.RandomState))
	t.Root = t.buildNode(X, y, idx, 0, rnd)
	return nil
}

// PredictRow returns the prediction for a single feature vector.
func (t *RegressionTree) PredictRow(x []float64) (float64, error) {
	if t.Root == nil {
		return 0, errors.New("ml: regression tree not fitted")
	}
	node := t.Root
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value, nil
}

func (t *RegressionTree) buildNode(X [][]float64, y []float64, idx []int, depth int, rnd *rand.Rand) *TreeNode {
	n := len(idx)
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	mean := sum / float64(n)

	minSplit := t.MinSamplesSplit
	if minSplit < 2 {
		minSplit = 2
	}
	if n < minSplit || (t.MaxDepth > 0 && depth >= t.MaxDepth) {
		return &TreeNode{Leaf: true, Value: mean, Samples: n}
	}

	feature, threshold, ok := t.bestSplit(X, y, idx, rnd)
	if !ok {
		return &TreeNode{Leaf: true, Value: mean, Samples: n}
	}

	left := make([]int, 0, n)
	right := make([]int, 0, n)
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &TreeNode{Leaf: true, Value: mean, Samples: n}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      t.buildNode(X, y, left, depth+1, rnd),
		Right:     t.buildNode(X, y, right, depth+1, rnd),
		Samples:   n,
	}
}

// bestSplit scans candidate features for the threshold minimizing the summed
// squared error of the two children. Features are subsampled when
// MaxFeatures is set, which is what decorrelates forest trees.
func (t *RegressionTree) bestSplit(X [][]float64, y []float64, idx []int, rnd *rand.Rand) (int, float64, bool) {
	p := len(X[idx[0]])
	features := make([]int, p)
	for j := range features {
		features[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(a, b int) { features[a], features[b] = features[b], features[a] })
		features = features[:t.MaxFeatures]
	}

	n := len(idx)
	sorted := make([]int, n)

	var totalSum, totalSq float64
	for _, i := range idx {
		totalSum += y[i]
		totalSq += y[i] * y[i]
	}
	parentSSE := totalSq - totalSum*totalSum/float64(n)

	bestFeature, bestThreshold := -1, 0.0
	bestSSE := parentSSE

	for _, j := range features {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool { return X[sorted[a]][j] < X[sorted[b]][j] })

		var leftSum, leftSq float64
		for k := 0; k < n-1; k++ {
			i := sorted[k]
			leftSum += y[i]
			leftSq += y[i] * y[i]

			// Only split where the feature value actually changes.
			if X[i][j] == X[sorted[k+1]][j] {
				continue
			}

			nl := float64(k + 1)
			nr := float64(n - k - 1)
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = j
				bestThreshold = (X[i][j] + X[sorted[k+1]][j]) / 2
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}
