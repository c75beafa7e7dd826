package data

// Column names of the prediction file. The two prediction columns double as
// the option values of the predictions dropdown.
const (
	ColActual       = "Actual Dropout"
	ColRandomForest = "Random Forest Prediction"
	ColXGBoost      = "XGBoost Prediction"
)

const (
	ColFeature    = "Feature"
	ColImportance = "Importance"
	ColModel      = "Model"
	ColAccuracy   = "Accuracy"
)

// Default literals written by the generator for the binary outcome.
const (
	DefaultNegative = "No"
	DefaultPositive = "Dropout"
)

type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

type ModelPerformance struct {
	Model    string  `json:"model"`
	Accuracy float64 `json:"accuracy"`
}

type Prediction struct {
	Actual       string `json:"actual_dropout"`
	RandomForest string `json:"random_forest_prediction"`
	XGBoost      string `json:"xgboost_prediction"`
}

// Column returns the value stored under one of the prediction file's column names.
func (p Prediction) Column(name string) (string, bool) {
	switch name {
	case ColActual:
		return p.Actual, true
	case ColRandomForest:
		return p.RandomForest, true
	case ColXGBoost:
		return p.XGBoost, true
	}
	return "", false
}

// Tables holds everything read at startup. Nothing mutates it afterwards.
type Tables struct {
	RFImportance  []FeatureImportance
	XGBImportance []FeatureImportance
	Performance   []ModelPerformance
	Predictions   []Prediction
	Labels        Labels
}
