package charts

import (
	"bytes"
	"encoding/json"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropoutdash/internal/data"
	"dropoutdash/internal/metrics"
)

func TestFeatureImportanceKeepsInputOrder(t *testing.T) {
	c := FeatureImportance("Random Forest", []data.FeatureImportance{
		{Feature: "Missed Visits", Importance: 0.2}, {Feature: "Age", Importance: 0.5}, {Feature: "Distance", Importance: 0.3},
	})
	assert.Equal(t, "Random Forest - Feature Importance", c.Title)
	assert.True(t, c.Horizontal)
	assert.Equal(t, []string{"Missed Visits", "Age", "Distance"}, c.Categories)
	assert.Equal(t, []float64{0.2, 0.5, 0.3}, c.Series[0].Values)

	f := c.Figure()
	require.Len(t, f.Data, 1)
	assert.Equal(t, "h", f.Data[0].Orientation)
	assert.Equal(t, c.Categories, f.Data[0].Y)
	assert.Equal(t, []float64{0.2, 0.5, 0.3}, f.Data[0].X)
}

func TestPerformanceOneTracePerModel(t *testing.T) {
	c := Performance([]data.ModelPerformance{{Model: "Random Forest", Accuracy: 0.9}, {Model: "XGBoost", Accuracy: 0.85}})
	f := c.Figure()
	require.Len(t, f.Data, 2)
	assert.Equal(t, "Random Forest", f.Data[0].Name)
	assert.Equal(t, []float64{0.85}, f.Data[1].Y)
	assert.Equal(t, "Model Accuracy", f.Layout.Title.Text)
}

func TestPredictionCountsLayout(t *testing.T) {
	c := PredictionCounts(data.ColXGBoost, []metrics.GroupCount{
		{Actual: "No", Predicted: "No", Count: 4},
		{Actual: "Dropout", Predicted: "No", Count: 1},
		{Actual: "Dropout", Predicted: "Dropout", Count: 3},
	})
	assert.Equal(t, KindGroupedBar, c.Kind)
	assert.Equal(t, []string{"No", "Dropout"}, c.Categories)
	assert.Equal(t, []Series{
		{Name: "No", Values: []float64{4, 1}},
		{Name: "Dropout", Values: []float64{0, 3}},
	}, c.Series)

	f := c.Figure()
	assert.Equal(t, "group", f.Layout.BarMode)
	assert.Equal(t, data.ColXGBoost, f.Layout.Legend.Title.Text)
}

func TestConfusionMatrixFigure(t *testing.T) {
	c := ConfusionMatrix("XGBoost", metrics.ConfusionMatrix{{1, 0}, {1, 1}})
	assert.Equal(t, "XGBoost Confusion Matrix", c.Title)

	f := c.Figure()
	require.Len(t, f.Data, 1)
	assert.Equal(t, "heatmap", f.Data[0].Type)
	assert.Equal(t, [][]int{{1, 0}, {1, 1}}, f.Data[0].Z)
	assert.Equal(t, "Viridis", f.Data[0].ColorScale)
	require.Len(t, f.Layout.Annotations, 4)
	assert.Equal(t, Annotation{X: "Predicted No Dropout", Y: "Actual Dropout", Text: "1", Font: &Font{Color: "black"}},
		f.Layout.Annotations[2])

	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title":{"text":"XGBoost Confusion Matrix"}`)
	assert.Contains(t, string(raw), `"autorange":"reversed"`)
}

func TestRenderPNG(t *testing.T) {
	tests := []Chart{
		FeatureImportance("XGBoost", []data.FeatureImportance{{Feature: "Age", Importance: 0.5}, {Feature: "Distance", Importance: 0.5}}),
		Performance([]data.ModelPerformance{{Model: "Random Forest", Accuracy: 0.9}, {Model: "XGBoost", Accuracy: 0.85}}),
		PredictionCounts(data.ColRandomForest, []metrics.GroupCount{
			{Actual: "No", Predicted: "No", Count: 1}, {Actual: "Dropout", Predicted: "Dropout", Count: 2},
		}),
		ConfusionMatrix("Random Forest", metrics.ConfusionMatrix{{1, 0}, {0, 2}}),
		ConfusionMatrix("Random Forest", metrics.ConfusionMatrix{}),
	}
	for _, c := range tests {
		t.Run(c.Title, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, c, "png"))
			_, err := png.Decode(&buf)
			assert.NoError(t, err)
		})
	}
}

func TestRenderEmptyBars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FeatureImportance("XGBoost", nil), "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, Chart{Kind: "pie"}, "png"))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := Performance([]data.ModelPerformance{{Model: "Random Forest", Accuracy: 0.9}})
	require.NoError(t, Save(filepath.Join(dir, "nested", "perf.svg"), c))
	assert.FileExists(t, filepath.Join(dir, "nested", "perf.svg"))
	assert.Error(t, Save(filepath.Join(dir, "perf"), c))
}
