package data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// File names the dashboard looks for by default.
const (
	FileRFImportance  = "rf_feature_importance.csv"
	FileXGBImportance = "xgb_feature_importance.csv"
	FilePerformance   = "model_performance.csv"
	FilePredictions   = "dropout_predictions.csv"
)

// PathsIn returns the default file locations inside dir.
func PathsIn(dir string) Paths {
	return Paths{
		RFImportance:  filepath.Join(dir, FileRFImportance),
		XGBImportance: filepath.Join(dir, FileXGBImportance),
		Performance:   filepath.Join(dir, FilePerformance),
		Predictions:   filepath.Join(dir, FilePredictions),
	}
}

// WriteTables writes t as the four CSV files inside dir.
func WriteTables(dir string, t *Tables) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	p := PathsIn(dir)

	imp := func(rows []FeatureImportance) [][]string {
		out := [][]string{{ColFeature, ColImportance}}
		for _, r := range rows {
			out = append(out, []string{r.Feature, strconv.FormatFloat(r.Importance, 'f', 6, 64)})
		}
		return out
	}
	if err := writeCSV(p.RFImportance, imp(t.RFImportance)); err != nil {
		return err
	}
	if err := writeCSV(p.XGBImportance, imp(t.XGBImportance)); err != nil {
		return err
	}

	perf := [][]string{{ColModel, ColAccuracy}}
	for _, r := range t.Performance {
		perf = append(perf, []string{r.Model, strconv.FormatFloat(r.Accuracy, 'f', 6, 64)})
	}
	if err := writeCSV(p.Performance, perf); err != nil {
		return err
	}

	preds := [][]string{{ColActual, ColRandomForest, ColXGBoost}}
	for _, r := range t.Predictions {
		preds = append(preds, []string{r.Actual, r.RandomForest, r.XGBoost})
	}
	return writeCSV(p.Predictions, preds)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
