// Package artifacts produces a demo set of dashboard inputs: it trains a
// random forest and a boosted ensemble on synthetic trial participants and
// records their importances, holdout accuracy and holdout predictions.
package artifacts

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"dropoutdash/internal/data"
	"dropoutdash/internal/models"
)

type Options struct {
	N         int
	Seed      int64
	TestFrac  float64
	Trees     int
	MaxDepth  int
	Rounds    int
	Rate      float64
	MinSample int
	Labels    data.Labels
}

func DefaultOptions() Options {
	return Options{
		N:         5000,
		Seed:      42,
		TestFrac:  0.2,
		Trees:     30,
		MaxDepth:  6,
		Rounds:    80,
		Rate:      0.1,
		MinSample: 20,
		Labels:    data.Labels{Negative: data.DefaultNegative, Positive: data.DefaultPositive},
	}
}

// Build trains both models and returns the tables the dashboard reads.
func Build(o Options, logger *zap.Logger) (*data.Tables, error) {
	if o.N < 10 {
		return nil, fmt.Errorf("need at least 10 participants, got %d", o.N)
	}
	if o.TestFrac <= 0 || o.TestFrac >= 1 {
		return nil, fmt.Errorf("test fraction %v must be in (0, 1)", o.TestFrac)
	}
	if o.Labels.IsZero() {
		o.Labels = DefaultOptions().Labels
	}

	people := data.GenerateParticipants(o.N, o.Seed)
	rng := rand.New(rand.NewSource(o.Seed))
	rng.Shuffle(len(people), func(i, j int) { people[i], people[j] = people[j], people[i] })

	split := int(float64(len(people)) * (1 - o.TestFrac))
	Xtrain, ytrain := matrix(people[:split])
	Xtest, ytest := matrix(people[split:])

	pos := 0
	for _, v := range ytrain {
		pos += v
	}
	logger.Info("training demo models",
		zap.Int("train", len(Xtrain)), zap.Int("test", len(Xtest)), zap.Int("train_dropouts", pos))

	rf := models.NewRandomForest()
	rf.NEstimators = o.Trees
	rf.MaxDepth = o.MaxDepth
	rf.MinSamples = o.MinSample
	rf.Seed = o.Seed

	gb := models.NewGradientBoosting()
	gb.NEstimators = o.Rounds
	gb.LearningRate = o.Rate
	gb.MinSamples = o.MinSample

	t := &data.Tables{Labels: o.Labels}
	preds := make([][]int, 2)
	for i, m := range []models.Model{rf, gb} {
		if err := m.Fit(Xtrain, ytrain); err != nil {
			return nil, fmt.Errorf("fit %s: %w", m.Name(), err)
		}
		preds[i] = m.Predict(Xtest)
		acc := accuracy(ytest, preds[i])
		logger.Info("holdout accuracy", zap.String("model", m.Name()), zap.Float64("accuracy", acc))
		t.Performance = append(t.Performance, data.ModelPerformance{Model: displayName(i), Accuracy: acc})
	}
	t.RFImportance = importanceRows(rf.Importances())
	t.XGBImportance = importanceRows(gb.Importances())

	label := func(v int) string {
		if v == 1 {
			return o.Labels.Positive
		}
		return o.Labels.Negative
	}
	t.Predictions = make([]data.Prediction, len(ytest))
	for i := range ytest {
		t.Predictions[i] = data.Prediction{
			Actual:       label(ytest[i]),
			RandomForest: label(preds[0][i]),
			XGBoost:      label(preds[1][i]),
		}
	}
	return t, nil
}

// Names match the confusion-matrix dropdown so the summary can pair them.
func displayName(i int) string {
	if i == 0 {
		return "Random Forest"
	}
	return "XGBoost"
}

func importanceRows(imp []float64) []data.FeatureImportance {
	out := make([]data.FeatureImportance, len(imp))
	for i, v := range imp {
		out[i] = data.FeatureImportance{Feature: data.ParticipantFeatures[i], Importance: v}
	}
	return out
}

func matrix(ps []data.Participant) ([][]float64, []int) {
	X := make([][]float64, len(ps))
	y := make([]int, len(ps))
	for i, p := range ps {
		X[i] = p.Vector()
		y[i] = p.Dropout
	}
	return X, y
}

func accuracy(y, p []int) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if y[i] == p[i] {
			c++
		}
	}
	return float64(c) / float64(len(y))
}
