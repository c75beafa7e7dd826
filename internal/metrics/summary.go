package metrics

import (
	"github.com/montanaflynn/stats"
)

// Summary describes a column of numbers, e.g. the importances of one model.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize returns the zero Summary for an empty input.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, nil
	}
	data := stats.Float64Data(values)
	s := Summary{Count: len(values)}
	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	return s, nil
}
