package ml

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ForestConfig tunes the ensemble. Defaults mirror a 100-tree forest with
// sqrt(d) feature sampling.
type ForestConfig struct {
	NumTrees int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

func DefaultForestConfig() ForestConfig {
	return ForestConfig{NumTrees: 100, MaxDepth: 12, MinLeaf: 2, Seed: 42}
}

// Forest is a bagged ensemble of CART trees over encoded features.
type Forest struct {
	Trees      []Tree
	NumClasses int
}

// TrainForest fits the ensemble on encoded rows. Each tree sees a
// bootstrap sample and a fresh feature subset per split. Training is
// deterministic for a fixed seed. ctx is checked between trees so callers
// can abandon a long training run early.
func TrainForest(ctx context.Context, x [][]float64, y []int, numClasses int, cfg ForestConfig) (*Forest, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	numFeatures := len(x[0])
	sub := int(math.Sqrt(float64(numFeatures)))
	if sub < 1 {
		sub = 1
	}
	tcfg := treeConfig{
		maxDepth:    cfg.MaxDepth,
		minLeaf:     cfg.MinLeaf,
		featureSub:  sub,
		numClasses:  numClasses,
		numFeatures: numFeatures,
	}

	f := &Forest{NumClasses: numClasses}
	for i := 0; i < cfg.NumTrees; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		samples := make([]int, len(x))
		for j := range samples {
			samples[j] = rng.Intn(len(x))
		}
		f.Trees = append(f.Trees, *fitTree(x, y, samples, tcfg, rng))
	}
	return f, nil
}

// PredictProba averages the normalized leaf distributions of all trees.
// The result sums to 1.
func (f *Forest) PredictProba(x []float64) []float64 {
	probs := make([]float64, f.NumClasses)
	for i := range f.Trees {
		counts := f.Trees[i].classCounts(x)
		if total := floats.Sum(counts); total > 0 {
			for c, v := range counts {
				probs[c] += v / total
			}
		}
	}
	if total := floats.Sum(probs); total > 0 {
		floats.Scale(1/total, probs)
	}
	return probs
}

// Predict returns the arg-max class index and its probability.
func (f *Forest) Predict(x []float64) (int, float64) {
	probs := f.PredictProba(x)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best, probs[best]
}
