package charts

import (
	"dropoutdash/internal/data"
	"dropoutdash/internal/metrics"
)

// Graph ids of the dashboard page.
const (
	GraphPerformance       = "model-performance"
	GraphFeatureImportance = "feature-importance"
	GraphPredictions       = "dropout-predictions"
	GraphConfusion         = "confusion-matrix"
)

// FeatureImportance draws rows as horizontal bars in the order given.
func FeatureImportance(modelName string, rows []data.FeatureImportance) Chart {
	cats := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Feature
		vals[i] = r.Importance
	}
	return Chart{
		ID:         GraphFeatureImportance,
		Kind:       KindBar,
		Title:      modelName + " - Feature Importance",
		XTitle:     data.ColImportance,
		YTitle:     data.ColFeature,
		Horizontal: true,
		Categories: cats,
		Series:     []Series{{Name: data.ColImportance, Values: vals}},
	}
}

func Performance(rows []data.ModelPerformance) Chart {
	cats := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Model
		vals[i] = r.Accuracy
	}
	return Chart{
		ID:              GraphPerformance,
		Kind:            KindBar,
		Title:           "Model Accuracy",
		XTitle:          data.ColModel,
		YTitle:          data.ColAccuracy,
		ColorByCategory: true,
		LegendTitle:     data.ColModel,
		Categories:      cats,
		Series:          []Series{{Name: data.ColAccuracy, Values: vals}},
	}
}

// PredictionCounts lays grouped counts out with the actual value on the x axis
// and one series per predicted value. Both keep first-seen order.
func PredictionCounts(predictedCol string, groups []metrics.GroupCount) Chart {
	var cats, names []string
	catIdx := map[string]int{}
	nameIdx := map[string]int{}
	for _, g := range groups {
		if _, ok := catIdx[g.Actual]; !ok {
			catIdx[g.Actual] = len(cats)
			cats = append(cats, g.Actual)
		}
		if _, ok := nameIdx[g.Predicted]; !ok {
			nameIdx[g.Predicted] = len(names)
			names = append(names, g.Predicted)
		}
	}
	series := make([]Series, len(names))
	for i, n := range names {
		series[i] = Series{Name: n, Values: make([]float64, len(cats))}
	}
	for _, g := range groups {
		series[nameIdx[g.Predicted]].Values[catIdx[g.Actual]] += float64(g.Count)
	}
	return Chart{
		ID:          GraphPredictions,
		Kind:        KindGroupedBar,
		Title:       "Actual vs Predicted Dropouts",
		XTitle:      data.ColActual,
		YTitle:      "Count",
		LegendTitle: predictedCol,
		Categories:  cats,
		Series:      series,
	}
}

func ConfusionMatrix(modelName string, cm metrics.ConfusionMatrix) Chart {
	return Chart{
		ID:     GraphConfusion,
		Kind:   KindHeatmap,
		Title:  modelName + " Confusion Matrix",
		XTitle: "Predicted",
		YTitle: "Actual",
		Heatmap: &Heatmap{
			Z:             cm.Rows(),
			XLabels:       []string{"Predicted No Dropout", "Predicted Dropout"},
			YLabels:       []string{"Actual No Dropout", "Actual Dropout"},
			ColorScale:    "Viridis",
			ColorBarTitle: "Count",
		},
	}
}
