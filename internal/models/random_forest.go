package models

import (
	"math"
	"math/rand"
)

type RandomForest struct {
	NEstimators        int
	MaxDepth           int
	MinSamples         int
	MaxThresholdsPerFe int
	MaxFeatures        int
	Seed               int64
	Trees              []*DecisionTree
}

func NewRandomForest() *RandomForest {
	return &RandomForest{NEstimators: 30, MaxDepth: 6, MinSamples: 20, MaxThresholdsPerFe: 32, Seed: 1}
}

func (rf *RandomForest) Name() string { return "Random Forest" }

func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return ErrEmptyTrainingSet
	}
	if rf.NEstimators <= 0 {
		rf.NEstimators = 30
	}
	n := len(X)
	nFeats := len(X[0])
	maxFeatures := rf.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Max(1, math.Sqrt(float64(nFeats))))
	}
	rng := rand.New(rand.NewSource(rf.Seed))
	rf.Trees = make([]*DecisionTree, 0, rf.NEstimators)
	for k := 0; k < rf.NEstimators; k++ {
		Xb := make([][]float64, n)
		yb := make([]int, n)
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			Xb[i], yb[i] = X[j], y[j]
		}
		dt := NewDecisionTree()
		dt.MaxDepth = rf.MaxDepth
		dt.MinSamplesSplit = rf.MinSamples
		dt.MaxThresholdsPerFe = rf.MaxThresholdsPerFe
		dt.MaxFeatures = maxFeatures
		dt.Seed = rng.Int63()
		if err := dt.Fit(Xb, yb); err != nil {
			return err
		}
		rf.Trees = append(rf.Trees, dt)
	}
	return nil
}

func (rf *RandomForest) Predict(X [][]float64) []int { return threshold(rf.PredictProba(X)) }

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	n := len(X)
	out := make([]float64, n)
	if len(rf.Trees) == 0 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for _, dt := range rf.Trees {
		p := dt.PredictProba(X)
		for i := 0; i < n; i++ {
			out[i] += p[i]
		}
	}
	m := float64(len(rf.Trees))
	for i := 0; i < n; i++ {
		out[i] /= m
	}
	return out
}

// Importances averages the per-tree importances.
func (rf *RandomForest) Importances() []float64 {
	if len(rf.Trees) == 0 {
		return nil
	}
	sum := make([]float64, len(rf.Trees[0].Gains))
	for _, dt := range rf.Trees {
		for i, v := range dt.Importances() {
			sum[i] += v
		}
	}
	return normalize(sum)
}
