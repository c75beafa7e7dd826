package dashboard

import (
	"dropoutdash/internal/data"
	"dropoutdash/internal/metrics"
)

type ModelSummary struct {
	Model            string          `json:"model"`
	ReportedAccuracy *float64        `json:"reported_accuracy,omitempty"`
	Confusion        metrics.Scores  `json:"confusion"`
	Importance       metrics.Summary `json:"importance"`
}

type Summary struct {
	Records int            `json:"records"`
	Labels  data.Labels    `json:"labels"`
	Models  []ModelSummary `json:"models"`
}

// Summary reports the derived scores next to the accuracy read from the
// performance file, when that file names the model.
func (c *Controller) Summary() (Summary, error) {
	out := Summary{Records: len(c.tables.Predictions), Labels: c.tables.Labels}
	models := []struct {
		name string
		cm   metrics.ConfusionMatrix
		imp  []data.FeatureImportance
	}{
		{ModelRandomForest, c.rfCM, c.tables.RFImportance},
		{ModelXGBoost, c.xgbCM, c.tables.XGBImportance},
	}
	for _, m := range models {
		vals := make([]float64, len(m.imp))
		for i, r := range m.imp {
			vals[i] = r.Importance
		}
		s, err := metrics.Summarize(vals)
		if err != nil {
			return Summary{}, err
		}
		ms := ModelSummary{Model: m.name, Confusion: m.cm.Scores(), Importance: s}
		for _, p := range c.tables.Performance {
			if p.Model == m.name {
				acc := p.Accuracy
				ms.ReportedAccuracy = &acc
				break
			}
		}
		out.Models = append(out.Models, ms)
	}
	return out, nil
}
