package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func writeFixture(t *testing.T, predictions string) Paths {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, FileRFImportance, "Feature,Importance\nMissed Visits,0.4\nAge,0.35\nDistance,0.25\n")
	writeFile(t, dir, FileXGBImportance, "Feature,Importance\nAge,0.1\nMissed Visits,0.9\n")
	writeFile(t, dir, FilePerformance, "Model,Accuracy\nRandom Forest,0.91\nXGBoost,0.88\n")
	writeFile(t, dir, FilePredictions, predictions)
	return PathsIn(dir)
}

const samplePredictions = "Actual Dropout,Random Forest Prediction,XGBoost Prediction\n" +
	"No,No,No\n" +
	"Dropout,Dropout,No\n" +
	"Dropout,Dropout,Dropout\n"

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables(writeFixture(t, samplePredictions), Labels{})
	require.NoError(t, err)

	assert.Equal(t, []FeatureImportance{
		{"Missed Visits", 0.4}, {"Age", 0.35}, {"Distance", 0.25},
	}, tables.RFImportance)
	assert.Equal(t, []FeatureImportance{{"Age", 0.1}, {"Missed Visits", 0.9}}, tables.XGBImportance)
	assert.Equal(t, []ModelPerformance{{"Random Forest", 0.91}, {"XGBoost", 0.88}}, tables.Performance)
	assert.Equal(t, []Prediction{
		{"No", "No", "No"},
		{"Dropout", "Dropout", "No"},
		{"Dropout", "Dropout", "Dropout"},
	}, tables.Predictions)
	assert.Equal(t, Labels{Negative: "No", Positive: "Dropout"}, tables.Labels)
}

func TestLoadTablesColumnOrderAndExtras(t *testing.T) {
	preds := "\ufeffid, XGBoost Prediction ,Actual Dropout,Random Forest Prediction\n" +
		"1,1,0,0\n" +
		"2,0,1,1\n"
	tables, err := LoadTables(writeFixture(t, preds), Labels{})
	require.NoError(t, err)
	assert.Equal(t, []Prediction{{"0", "0", "1"}, {"1", "1", "0"}}, tables.Predictions)
	assert.Equal(t, Labels{Negative: "0", Positive: "1"}, tables.Labels)
}

func TestLoadTablesMissingActualColumn(t *testing.T) {
	preds := "Random Forest Prediction,XGBoost Prediction\nNo,No\n"
	_, err := LoadTables(writeFixture(t, preds), Labels{})
	require.Error(t, err)

	var dle *DataLoadError
	require.True(t, errors.As(err, &dle))
	assert.Equal(t, ColActual, dle.Column)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadTablesErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, p Paths)
		column string
	}{
		{
			name:   "missing file",
			mutate: func(t *testing.T, p Paths) { require.NoError(t, os.Remove(p.Performance)) },
		},
		{
			name: "bad number",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.RFImportance), FileRFImportance, "Feature,Importance\nAge,high\n")
			},
			column: ColImportance,
		},
		{
			name: "empty file",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.XGBImportance), FileXGBImportance, "")
			},
		},
		{
			name: "missing accuracy column",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.Performance), FilePerformance, "Model,Score\nRF,1\n")
			},
			column: ColAccuracy,
		},
		{
			name: "three outcome values",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.Predictions), FilePredictions,
					"Actual Dropout,Random Forest Prediction,XGBoost Prediction\nNo,Yes,Maybe\n")
			},
		},
		{
			name: "empty outcome value",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.Predictions), FilePredictions,
					"Actual Dropout,Random Forest Prediction,XGBoost Prediction\nNo,,No\n")
			},
			column: ColRandomForest,
		},
		{
			name: "header only predictions",
			mutate: func(t *testing.T, p Paths) {
				writeFile(t, filepath.Dir(p.Predictions), FilePredictions,
					"Actual Dropout,Random Forest Prediction,XGBoost Prediction\n")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFixture(t, samplePredictions)
			tt.mutate(t, p)
			_, err := LoadTables(p, Labels{})
			var dle *DataLoadError
			require.True(t, errors.As(err, &dle), "got %v", err)
			assert.Equal(t, tt.column, dle.Column)
		})
	}
}

func TestLoadTablesConfiguredLabels(t *testing.T) {
	p := writeFixture(t, samplePredictions)

	tables, err := LoadTables(p, Labels{Negative: "No", Positive: "Dropout"})
	require.NoError(t, err)
	assert.Equal(t, "Dropout", tables.Labels.Positive)

	_, err = LoadTables(p, Labels{Negative: "0", Positive: "1"})
	var dle *DataLoadError
	require.True(t, errors.As(err, &dle))
	assert.Equal(t, 2, dle.Row)
}

func TestConfiguredLabelErrorReportsFileLine(t *testing.T) {
	preds := "Actual Dropout,Random Forest Prediction,XGBoost Prediction\n" +
		"No,No,No\n" +
		"\n" +
		"\"Dropout\",\"Dropout\",\"No\"\n" +
		"\n" +
		"No,No,No\n" +
		"No,Maybe,No\n"
	_, err := LoadTables(writeFixture(t, preds), Labels{Negative: "No", Positive: "Dropout"})
	var dle *DataLoadError
	require.True(t, errors.As(err, &dle), "got %v", err)
	assert.Equal(t, 7, dle.Row)
	assert.Equal(t, ColRandomForest, dle.Column)
}

func TestDataLoadErrorMessage(t *testing.T) {
	err := &DataLoadError{Path: "p.csv", Column: "Accuracy", Row: 3, Err: errors.New("bad")}
	assert.Equal(t, `load p.csv row 3 column "Accuracy": bad`, err.Error())
}

func TestWriteTablesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &Tables{
		RFImportance:  []FeatureImportance{{"Age", 0.5}, {"Missed Visits", 0.5}},
		XGBImportance: []FeatureImportance{{"Age", 0.25}, {"Missed Visits", 0.75}},
		Performance:   []ModelPerformance{{"Random Forest", 0.8}, {"XGBoost", 0.75}},
		Predictions:   []Prediction{{"No", "No", "Dropout"}, {"Dropout", "Dropout", "Dropout"}},
		Labels:        Labels{Negative: "No", Positive: "Dropout"},
	}
	require.NoError(t, WriteTables(dir, in))

	out, err := LoadTables(PathsIn(dir), Labels{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
