package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DataLoadError reports an input file that is missing, unreadable, malformed
// or lacks an expected column. The dashboard must not start after one.
type DataLoadError struct {
	Path   string
	Column string
	Row    int
	Err    error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	b.WriteString("load ")
	b.WriteString(e.Path)
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DataLoadError) Unwrap() error { return e.Err }

var ErrMissingColumn = errors.New("missing column")

// Paths locates the four input files.
type Paths struct {
	RFImportance  string
	XGBImportance string
	Performance   string
	Predictions   string
}

// LoadTables reads the four files in order. When labels is zero the outcome
// literals are inferred from the predictions file.
func LoadTables(p Paths, labels Labels) (*Tables, error) {
	rf, err := LoadImportance(p.RFImportance)
	if err != nil {
		return nil, err
	}
	xgb, err := LoadImportance(p.XGBImportance)
	if err != nil {
		return nil, err
	}
	perf, err := LoadPerformance(p.Performance)
	if err != nil {
		return nil, err
	}
	preds, lines, err := loadPredictions(p.Predictions)
	if err != nil {
		return nil, err
	}
	labels, err = resolveLabels(p.Predictions, preds, lines, labels)
	if err != nil {
		return nil, err
	}
	return &Tables{
		RFImportance:  rf,
		XGBImportance: xgb,
		Performance:   perf,
		Predictions:   preds,
		Labels:        labels,
	}, nil
}

func LoadImportance(path string) ([]FeatureImportance, error) {
	t, err := readTable(path, ColFeature, ColImportance)
	if err != nil {
		return nil, err
	}
	out := make([]FeatureImportance, 0, len(t.rows))
	for i, row := range t.rows {
		v, err := t.float(i, ColImportance)
		if err != nil {
			return nil, err
		}
		out = append(out, FeatureImportance{Feature: row[t.col[ColFeature]], Importance: v})
	}
	return out, nil
}

func LoadPerformance(path string) ([]ModelPerformance, error) {
	t, err := readTable(path, ColModel, ColAccuracy)
	if err != nil {
		return nil, err
	}
	out := make([]ModelPerformance, 0, len(t.rows))
	for i, row := range t.rows {
		v, err := t.float(i, ColAccuracy)
		if err != nil {
			return nil, err
		}
		out = append(out, ModelPerformance{Model: row[t.col[ColModel]], Accuracy: v})
	}
	return out, nil
}

func LoadPredictions(path string) ([]Prediction, error) {
	preds, _, err := loadPredictions(path)
	return preds, err
}

// loadPredictions also returns the file line each record started on.
func loadPredictions(path string) ([]Prediction, []int, error) {
	t, err := readTable(path, ColActual, ColRandomForest, ColXGBoost)
	if err != nil {
		return nil, nil, err
	}
	if len(t.rows) == 0 {
		return nil, nil, &DataLoadError{Path: path, Err: errors.New("no prediction records")}
	}
	out := make([]Prediction, 0, len(t.rows))
	for i, row := range t.rows {
		p := Prediction{
			Actual:       strings.TrimSpace(row[t.col[ColActual]]),
			RandomForest: strings.TrimSpace(row[t.col[ColRandomForest]]),
			XGBoost:      strings.TrimSpace(row[t.col[ColXGBoost]]),
		}
		for _, c := range []string{ColActual, ColRandomForest, ColXGBoost} {
			if v, _ := p.Column(c); v == "" {
				return nil, nil, &DataLoadError{Path: path, Column: c, Row: t.lines[i], Err: errors.New("empty value")}
			}
		}
		out = append(out, p)
	}
	return out, t.lines, nil
}

func resolveLabels(path string, preds []Prediction, lines []int, labels Labels) (Labels, error) {
	values := make([]string, 0, len(preds)*3)
	for _, p := range preds {
		values = append(values, p.Actual, p.RandomForest, p.XGBoost)
	}
	if labels.IsZero() {
		l, err := InferLabels(values)
		if err != nil {
			return Labels{}, &DataLoadError{Path: path, Err: err}
		}
		return l, nil
	}
	for i, p := range preds {
		for _, c := range []string{ColActual, ColRandomForest, ColXGBoost} {
			v, _ := p.Column(c)
			if _, ok := labels.Index(v); !ok {
				return Labels{}, &DataLoadError{
					Path: path, Column: c, Row: lines[i],
					Err: fmt.Errorf("value %q is neither %q nor %q", v, labels.Negative, labels.Positive),
				}
			}
		}
	}
	return labels, nil
}

type table struct {
	path  string
	col   map[string]int
	rows  [][]string
	lines []int
}

func (t *table) float(i int, name string) (float64, error) {
	raw := strings.TrimSpace(t.rows[i][t.col[name]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &DataLoadError{Path: t.path, Column: name, Row: t.lines[i], Err: err}
	}
	return v, nil
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	hdr, err := r.Read()
	if err == io.EOF {
		return nil, &DataLoadError{Path: path, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}

	t := &table{path: path, col: map[string]int{}}
	for i, h := range hdr {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := t.col[h]; !dup {
			t.col[h] = i
		}
	}
	for _, name := range required {
		if _, ok := t.col[name]; !ok {
			return nil, &DataLoadError{Path: path, Column: name, Err: ErrMissingColumn}
		}
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Path: path, Err: err}
		}
		line, _ := r.FieldPos(0)
		for _, name := range required {
			if t.col[name] >= len(rec) {
				return nil, &DataLoadError{Path: path, Column: name, Row: line, Err: errors.New("short row")}
			}
		}
		t.rows = append(t.rows, rec)
		t.lines = append(t.lines, line)
	}
	return t, nil
}
