package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable returns rows whose label depends only on feature 1.
func separable(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		X[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
		if X[i][1] > 0.6 {
			y[i] = 1
		}
	}
	return X, y
}

func accuracyOf(m Model, X [][]float64, y []int) float64 {
	p := m.Predict(X)
	ok := 0
	for i := range y {
		if p[i] == y[i] {
			ok++
		}
	}
	return float64(ok) / float64(len(y))
}

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func TestModelsLearnSeparableData(t *testing.T) {
	X, y := separable(600, 1)
	Xt, yt := separable(200, 2)

	rf := NewRandomForest()
	rf.NEstimators = 15
	gb := NewGradientBoosting()
	gb.NEstimators = 40
	gb.LearningRate = 0.3

	for _, m := range []Model{rf, gb, NewDecisionTree()} {
		t.Run(m.Name(), func(t *testing.T) {
			require.NoError(t, m.Fit(X, y))
			assert.Greater(t, accuracyOf(m, Xt, yt), 0.9)

			imp := m.Importances()
			require.Len(t, imp, 3)
			sum := 0.0
			for _, v := range imp {
				assert.GreaterOrEqual(t, v, 0.0)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
			assert.Equal(t, 1, argmax(imp))

			for _, p := range m.PredictProba(Xt) {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
			}
		})
	}
}

func TestRandomForestDeterministicBySeed(t *testing.T) {
	X, y := separable(300, 5)
	fit := func(seed int64) []float64 {
		rf := NewRandomForest()
		rf.NEstimators = 5
		rf.Seed = seed
		require.NoError(t, rf.Fit(X, y))
		return rf.PredictProba(X)
	}
	assert.Equal(t, fit(9), fit(9))
}

func TestEmptyTrainingSet(t *testing.T) {
	for _, m := range []Model{NewRandomForest(), NewGradientBoosting(), NewDecisionTree()} {
		assert.ErrorIs(t, m.Fit(nil, nil), ErrEmptyTrainingSet, m.Name())
	}
}

func TestUnfittedModels(t *testing.T) {
	X := [][]float64{{0, 0, 0}}
	assert.Equal(t, []float64{0.5}, NewRandomForest().PredictProba(X))
	assert.Equal(t, []float64{0.5}, NewDecisionTree().PredictProba(X))
	assert.Nil(t, NewRandomForest().Importances())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0.25, 0.75}, normalize([]float64{1, 3}))
	assert.Equal(t, []float64{0, 0}, normalize([]float64{0, 0}))
}
