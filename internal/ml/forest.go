package ml

import (
	"errors"
	"math/rand"
	"sync"
)

// RandomForestRegressor averages an ensemble of regression trees fit on
// bootstrap samples. Trees are built in parallel; each tree derives its own
// seed from RandomState so a given configuration is reproducible.
type RandomForestRegressor struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // 0 => all features at every split
	Bootstrap       bool
	RandomState     int64

	Trees []*RegressionTree
}

// ForestOption is functional config for RandomForestRegressor.
type ForestOption func(*RandomForestRegressor)

func WithNEstimators(n int) ForestOption {
	return func(rf *RandomForestRegressor) { rf.NEstimators = n }
}

func WithMaxDepth(d int) ForestOption {
	return func(rf *RandomForestRegressor) { rf.MaxDepth = d }
}

func WithMaxFeatures(k int) ForestOption {
	return func(rf *RandomForestRegressor) { rf.MaxFeatures = k }
}

func WithRandomState(seed int64) ForestOption {
	return func(rf *RandomForestRegressor) { rf.RandomState = seed }
}

// NewRandomForestRegressor initializes the forest with the defaults the
// serving model is trained with.
func NewRandomForestRegressor(opts ...ForestOption) *RandomForestRegressor {
	rf := &RandomForestRegressor{
		NEstimators:     100,
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MaxFeatures:     0,
		Bootstrap:       true,
		RandomState:     42,
	}
	for _, o := range opts {
		o(rf)
	}
	return rf
}

// Fit trains the forest. Each tree gets a unique derived seed and a
// bootstrap index sample so no training data is copied per tree.
func (rf *RandomForestRegressor) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("ml: random forest fit on empty X")
	}
	if len(y) != len(X) {
		return errors.New("ml: X and y length mismatch")
	}
	n := len(X)

	rf.Trees = make([]*RegressionTree, rf.NEstimators)
	var wg sync.WaitGroup
	errCh := make(chan error, rf.NEstimators)

	for i := 0; i < rf.NEstimators; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			// Per-tree rand source avoids contention across goroutines.
			treeRand := rand.New(rand.NewSource(rf.RandomState + int64(idx)))

			sampleIndices := make([]int, n)
			for j := 0; j < n; j++ {
				if rf.Bootstrap {
					sampleIndices[j] = treeRand.Intn(n)
				} else {
					sampleIndices[j] = j
				}
			}

			tree := &RegressionTree{
				MaxDepth:        rf.MaxDepth,
				MinSamplesSplit: rf.MinSamplesSplit,
				MaxFeatures:     rf.MaxFeatures,
				RandomState:     rf.RandomState + int64(idx),
			}
			if err := tree.Fit(X, y, sampleIndices); err != nil {
				errCh <- err
				return
			}
			rf.Trees[idx] = tree
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// PredictRow returns the mean prediction across all trees.
func (rf *RandomForestRegressor) PredictRow(x []float64) (float64, error) {
	if len(rf.Trees) == 0 {
		return 0, errors.New("ml: random forest not fitted")
	}
	sum := 0.0
	for _, tree := range rf.Trees {
		v, err := tree.PredictRow(x)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(rf.Trees)), nil
}

// Score returns the R-squared of the forest on (X, y). Informational only:
// the training job logs it, nothing gates on it.
func (rf *RandomForestRegressor) Score(X [][]float64, y []float64) (float64, error) {
	if len(X) == 0 || len(y) != len(X) {
		return 0, errors.New("ml: score needs matching non-empty X and y")
	}
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var ssRes, ssTot float64
	for i := range X {
		pred, err := rf.PredictRow(X[i])
		if err != nil {
			return 0, err
		}
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - mean) * (y[i] - mean)
	}
	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}
