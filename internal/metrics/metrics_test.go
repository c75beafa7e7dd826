package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropoutdash/internal/data"
)

var labels = data.Labels{Negative: "No", Positive: "Dropout"}

var sample = []data.Prediction{
	{Actual: "No", RandomForest: "No", XGBoost: "No"},
	{Actual: "Dropout", RandomForest: "Dropout", XGBoost: "No"},
	{Actual: "Dropout", RandomForest: "Dropout", XGBoost: "Dropout"},
}

func TestDeriveExample(t *testing.T) {
	rf, err := Derive(sample, data.ColActual, data.ColRandomForest, labels)
	require.NoError(t, err)
	assert.Equal(t, ConfusionMatrix{{1, 0}, {0, 2}}, rf)

	xgb, err := Derive(sample, data.ColActual, data.ColXGBoost, labels)
	require.NoError(t, err)
	assert.Equal(t, ConfusionMatrix{{1, 0}, {1, 1}}, xgb)
}

func TestDeriveConservesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pick := func() string { return labels.Slice()[rng.Intn(2)] }
	for n := 0; n < 50; n++ {
		preds := make([]data.Prediction, n)
		for i := range preds {
			preds[i] = data.Prediction{Actual: pick(), RandomForest: pick(), XGBoost: pick()}
		}
		for _, col := range []string{data.ColRandomForest, data.ColXGBoost} {
			cm, err := Derive(preds, data.ColActual, col, labels)
			require.NoError(t, err)
			assert.Equal(t, n, cm.Total())

			actualPos := 0
			for _, p := range preds {
				if p.Actual == labels.Positive {
					actualPos++
				}
			}
			assert.Equal(t, actualPos, cm.TP()+cm.FN(), "row totals follow the actual column")
		}
	}
}

func TestDeriveErrors(t *testing.T) {
	_, err := Derive(sample, data.ColActual, "Logistic Prediction", labels)
	assert.ErrorContains(t, err, "unknown column")

	_, err = Derive(sample, data.ColActual, data.ColRandomForest, data.Labels{Negative: "0", Positive: "1"})
	assert.ErrorContains(t, err, "not an outcome label")
}

func TestScores(t *testing.T) {
	cm := ConfusionMatrix{{50, 10}, {5, 35}}
	s := cm.Scores()
	assert.Equal(t, 100, s.Total)
	assert.InDelta(t, 0.85, s.Accuracy, 1e-9)
	assert.InDelta(t, 35.0/45.0, s.Precision, 1e-9)
	assert.InDelta(t, 35.0/40.0, s.Recall, 1e-9)
	assert.InDelta(t, 2*s.Precision*s.Recall/(s.Precision+s.Recall), s.F1, 1e-9)
	assert.Equal(t, [][]int{{50, 10}, {5, 35}}, s.Matrix)

	var zero ConfusionMatrix
	assert.Zero(t, zero.Accuracy())
	assert.Zero(t, zero.F1())
}

func TestCountPairs(t *testing.T) {
	got, err := CountPairs(sample, data.ColActual, data.ColRandomForest)
	require.NoError(t, err)
	assert.Equal(t, []GroupCount{
		{Actual: "No", Predicted: "No", Count: 1},
		{Actual: "Dropout", Predicted: "Dropout", Count: 2},
	}, got)

	got, err = CountPairs(sample, data.ColActual, data.ColXGBoost)
	require.NoError(t, err)
	assert.Equal(t, []GroupCount{
		{Actual: "No", Predicted: "No", Count: 1},
		{Actual: "Dropout", Predicted: "No", Count: 1},
		{Actual: "Dropout", Predicted: "Dropout", Count: 1},
	}, got)

	_, err = CountPairs(sample, data.ColActual, "nope")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 0.25, s.Mean, 1e-9)
	assert.InDelta(t, 0.25, s.Median, 1e-9)
	assert.InDelta(t, 0.1, s.Min, 1e-9)
	assert.InDelta(t, 0.4, s.Max, 1e-9)
	assert.Greater(t, s.StdDev, 0.0)

	empty, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, empty)
}
