package models

import (
	"errors"
	"math"
	"math/rand"
)

var ErrEmptyTrainingSet = errors.New("models: empty training set")

type DTNode struct {
	Feature   int
	Threshold float64
	Left      *DTNode
	Right     *DTNode
	IsLeaf    bool
	ProbaLeaf float64
}

type DecisionTree struct {
	MaxDepth           int
	MinSamplesSplit    int
	MaxThresholdsPerFe int
	MaxFeatures        int
	Seed               int64
	Root               *DTNode
	Gains              []float64

	rng *rand.Rand
}

func NewDecisionTree() *DecisionTree {
	return &DecisionTree{MaxDepth: 6, MinSamplesSplit: 20, MaxThresholdsPerFe: 64, Seed: 1}
}

func (dt *DecisionTree) Name() string { return "Decision Tree" }

func (dt *DecisionTree) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return ErrEmptyTrainingSet
	}
	if dt.rng == nil {
		dt.rng = rand.New(rand.NewSource(dt.Seed))
	}
	dt.Gains = make([]float64, len(X[0]))
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	dt.Root = dt.build(X, y, idx, 0)
	return nil
}

func (dt *DecisionTree) Predict(X [][]float64) []int { return threshold(dt.PredictProba(X)) }

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = dt.predictProbaOne(X[i])
	}
	return out
}

// Importances is the normalised total impurity decrease contributed by each feature.
func (dt *DecisionTree) Importances() []float64 { return normalize(dt.Gains) }

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
	n := dt.Root
	if n == nil {
		return 0.5
	}
	for !n.IsLeaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
		if n == nil {
			return 0.5
		}
	}
	return n.ProbaLeaf
}

func (dt *DecisionTree) build(X [][]float64, y []int, idx []int, depth int) *DTNode {
	node := &DTNode{}
	p := classProba(y, idx)
	if len(idx) < dt.MinSamplesSplit || depth >= dt.MaxDepth || p == 0 || p == 1 {
		node.IsLeaf = true
		node.ProbaLeaf = p
		return node
	}

	bestFeature := -1
	bestThr := 0.0
	bestImp := math.MaxFloat64
	var leftBest, rightBest []int

	for _, f := range dt.pickFeatures(len(X[0])) {
		for _, thr := range dt.candidateThresholds(X, idx, f) {
			l, r := splitIdx(X, idx, f, thr)
			if len(l) == 0 || len(r) == 0 {
				continue
			}
			if imp := giniImpurity(y, l, r); imp < bestImp {
				bestImp = imp
				bestFeature = f
				bestThr = thr
				leftBest, rightBest = l, r
			}
		}
	}

	if bestFeature == -1 {
		node.IsLeaf = true
		node.ProbaLeaf = p
		return node
	}
	// weighted decrease: n * (gini(parent) - weighted gini(children))
	dt.Gains[bestFeature] += float64(len(idx)) * (p*(1-p) - bestImp)

	node.Feature = bestFeature
	node.Threshold = bestThr
	node.Left = dt.build(X, y, leftBest, depth+1)
	node.Right = dt.build(X, y, rightBest, depth+1)
	return node
}

func classProba(y []int, idx []int) float64 {
	if len(idx) == 0 {
		return 0.5
	}
	sum := 0
	for _, i := range idx {
		sum += y[i]
	}
	return float64(sum) / float64(len(idx))
}

func splitIdx(X [][]float64, idx []int, f int, thr float64) ([]int, []int) {
	l := make([]int, 0, len(idx))
	r := make([]int, 0, len(idx))
	for _, i := range idx {
		if X[i][f] <= thr {
			l = append(l, i)
		} else {
			r = append(r, i)
		}
	}
	return l, r
}

func giniImpurity(y []int, lIdx, rIdx []int) float64 {
	g := func(ids []int) float64 {
		if len(ids) == 0 {
			return 0
		}
		p := classProba(y, ids)
		return p * (1 - p)
	}
	wl := float64(len(lIdx))
	wr := float64(len(rIdx))
	n := wl + wr
	return (wl/n)*g(lIdx) + (wr/n)*g(rIdx)
}

func (dt *DecisionTree) candidateThresholds(X [][]float64, idx []int, f int) []float64 {
	values := make([]float64, len(idx))
	for j, i := range idx {
		values[j] = X[i][f]
	}
	dt.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	m := len(values)
	if dt.MaxThresholdsPerFe > 0 && dt.MaxThresholdsPerFe < m {
		m = dt.MaxThresholdsPerFe
	}
	return values[:m]
}

func (dt *DecisionTree) pickFeatures(nFeats int) []int {
	idx := make([]int, nFeats)
	for i := range idx {
		idx[i] = i
	}
	if dt.MaxFeatures <= 0 || dt.MaxFeatures >= nFeats {
		return idx
	}
	dt.rng.Shuffle(nFeats, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx[:dt.MaxFeatures]
}
