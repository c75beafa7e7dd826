package metrics

import (
	"fmt"

	"dropoutdash/internal/data"
)

// GroupCount is one row of a (actual, predicted) group-by with its size.
type GroupCount struct {
	Actual    string `json:"actual"`
	Predicted string `json:"predicted"`
	Count     int    `json:"count"`
}

// CountPairs groups records by (actualCol, predictedCol) and counts each group.
// Groups appear in the order their key was first seen.
func CountPairs(preds []data.Prediction, actualCol, predictedCol string) ([]GroupCount, error) {
	type key struct{ a, p string }
	pos := map[key]int{}
	var out []GroupCount
	for _, rec := range preds {
		a, ok := rec.Column(actualCol)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", actualCol)
		}
		p, ok := rec.Column(predictedCol)
		if !ok {
			return nil, fmt.Errorf("unknown column %q", predictedCol)
		}
		k := key{a, p}
		if i, seen := pos[k]; seen {
			out[i].Count++
			continue
		}
		pos[k] = len(out)
		out = append(out, GroupCount{Actual: a, Predicted: p, Count: 1})
	}
	return out, nil
}
