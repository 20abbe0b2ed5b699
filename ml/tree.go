package ml

import (
	"math"
	"math/rand"
	"sort"
)

// TreeNode is one node of a fitted CART tree. Leaves carry the class
// distribution of the training samples that reached them.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      int32
	Right     int32
	Counts    []float64 // nil for internal nodes
}

// Tree is one decision tree of the forest.
type Tree struct {
	Nodes []TreeNode
}

type treeConfig struct {
	maxDepth    int
	minLeaf     int
	featureSub  int // features sampled per split
	numClasses  int
	numFeatures int
}

// fitTree grows a CART tree on the given sample indices. Splits minimize
// gini impurity over a random feature subset.
func fitTree(x [][]float64, y []int, samples []int, cfg treeConfig, rng *rand.Rand) *Tree {
	t := &Tree{}
	t.grow(x, y, samples, 0, cfg, rng)
	return t
}

func (t *Tree) grow(x [][]float64, y []int, samples []int, depth int, cfg treeConfig, rng *rand.Rand) int32 {
	counts := make([]float64, cfg.numClasses)
	for _, s := range samples {
		counts[y[s]]++
	}

	idx := int32(len(t.Nodes))
	t.Nodes = append(t.Nodes, TreeNode{})

	if depth >= cfg.maxDepth || len(samples) < 2*cfg.minLeaf || isPure(counts) {
		t.Nodes[idx] = TreeNode{Counts: counts}
		return idx
	}

	feature, threshold, ok := bestSplit(x, y, samples, cfg, rng)
	if !ok {
		t.Nodes[idx] = TreeNode{Counts: counts}
		return idx
	}

	var left, right []int
	for _, s := range samples {
		if x[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) < cfg.minLeaf || len(right) < cfg.minLeaf {
		t.Nodes[idx] = TreeNode{Counts: counts}
		return idx
	}

	l := t.grow(x, y, left, depth+1, cfg, rng)
	r := t.grow(x, y, right, depth+1, cfg, rng)
	t.Nodes[idx] = TreeNode{Feature: feature, Threshold: threshold, Left: l, Right: r}
	return idx
}

func isPure(counts []float64) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// bestSplit scans a random feature subset for the threshold with the
// lowest weighted gini impurity. Candidate thresholds are midpoints
// between consecutive distinct values.
func bestSplit(x [][]float64, y []int, samples []int, cfg treeConfig, rng *rand.Rand) (int, float64, bool) {
	features := rng.Perm(cfg.numFeatures)[:cfg.featureSub]

	bestGini := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	total := make([]float64, cfg.numClasses)
	for _, s := range samples {
		total[y[s]]++
	}
	n := float64(len(samples))

	type pair struct {
		v float64
		c int
	}
	for _, f := range features {
		pairs := make([]pair, len(samples))
		for i, s := range samples {
			pairs[i] = pair{x[s][f], y[s]}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

		leftCounts := make([]float64, cfg.numClasses)
		rightCounts := append([]float64(nil), total...)
		for i := 0; i < len(pairs)-1; i++ {
			leftCounts[pairs[i].c]++
			rightCounts[pairs[i].c]--
			if pairs[i].v == pairs[i+1].v {
				continue
			}
			nl := float64(i + 1)
			nr := n - nl
			g := nl/n*gini(leftCounts, nl) + nr/n*gini(rightCounts, nr)
			if g < bestGini {
				bestGini = g
				bestFeature = f
				bestThreshold = (pairs[i].v + pairs[i+1].v) / 2
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

func gini(counts []float64, n float64) float64 {
	g := 1.0
	for _, c := range counts {
		p := c / n
		g -= p * p
	}
	return g
}

// classCounts walks the tree and returns the leaf distribution for x.
func (t *Tree) classCounts(x []float64) []float64 {
	i := int32(0)
	for {
		node := t.Nodes[i]
		if node.Counts != nil {
			return node.Counts
		}
		if x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}
