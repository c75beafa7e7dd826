package metrics

import (
	"fmt"

	"dropoutdash/internal/data"
)

// ConfusionMatrix counts (actual, predicted) pairs. Rows are actual values,
// columns predicted values, both ordered [negative, positive].
type ConfusionMatrix [2][2]int

// Derive cross-tabulates two columns of the prediction records.
func Derive(preds []data.Prediction, actualCol, predictedCol string, labels data.Labels) (ConfusionMatrix, error) {
	var cm ConfusionMatrix
	for i, p := range preds {
		a, ok := p.Column(actualCol)
		if !ok {
			return cm, fmt.Errorf("unknown column %q", actualCol)
		}
		b, ok := p.Column(predictedCol)
		if !ok {
			return cm, fmt.Errorf("unknown column %q", predictedCol)
		}
		r, ok := labels.Index(a)
		if !ok {
			return cm, fmt.Errorf("record %d: %s value %q is not an outcome label", i, actualCol, a)
		}
		c, ok := labels.Index(b)
		if !ok {
			return cm, fmt.Errorf("record %d: %s value %q is not an outcome label", i, predictedCol, b)
		}
		cm[r][c]++
	}
	return cm, nil
}

func (cm ConfusionMatrix) TN() int { return cm[0][0] }
func (cm ConfusionMatrix) FP() int { return cm[0][1] }
func (cm ConfusionMatrix) FN() int { return cm[1][0] }
func (cm ConfusionMatrix) TP() int { return cm[1][1] }

func (cm ConfusionMatrix) Total() int { return cm.TN() + cm.FP() + cm.FN() + cm.TP() }

// Rows returns the matrix as nested slices for JSON and chart consumers.
func (cm ConfusionMatrix) Rows() [][]int {
	return [][]int{{cm[0][0], cm[0][1]}, {cm[1][0], cm[1][1]}}
}

func (cm ConfusionMatrix) Accuracy() float64 {
	if cm.Total() == 0 {
		return 0
	}
	return float64(cm.TP()+cm.TN()) / float64(cm.Total())
}

func (cm ConfusionMatrix) Precision() float64 {
	if cm.TP()+cm.FP() == 0 {
		return 0
	}
	return float64(cm.TP()) / float64(cm.TP()+cm.FP())
}

func (cm ConfusionMatrix) Recall() float64 {
	if cm.TP()+cm.FN() == 0 {
		return 0
	}
	return float64(cm.TP()) / float64(cm.TP()+cm.FN())
}

func (cm ConfusionMatrix) F1() float64 {
	p, r := cm.Precision(), cm.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Scores bundles the derived scores for JSON output.
type Scores struct {
	Matrix    [][]int `json:"matrix"`
	Total     int     `json:"total"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

func (cm ConfusionMatrix) Scores() Scores {
	return Scores{
		Matrix:    cm.Rows(),
		Total:     cm.Total(),
		Accuracy:  cm.Accuracy(),
		Precision: cm.Precision(),
		Recall:    cm.Recall(),
		F1:        cm.F1(),
	}
}
