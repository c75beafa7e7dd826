package data

import (
	"fmt"
	"sort"
	"strings"
)

// Labels names the two literal values of the binary outcome. Negative is the
// "No Dropout" class and always comes first in matrices and charts.
type Labels struct {
	Negative string `json:"negative"`
	Positive string `json:"positive"`
}

// Index maps a literal to its row/column position: 0 for Negative, 1 for Positive.
func (l Labels) Index(v string) (int, bool) {
	switch v {
	case l.Negative:
		return 0, true
	case l.Positive:
		return 1, true
	}
	return -1, false
}

func (l Labels) Slice() []string { return []string{l.Negative, l.Positive} }

func (l Labels) IsZero() bool { return l.Negative == "" && l.Positive == "" }

var knownNegative = map[string]bool{
	"0": true, "no": true, "false": true, "n": true, "no dropout": true, "negative": true, "retained": true,
}

var knownPositive = map[string]bool{
	"1": true, "yes": true, "true": true, "y": true, "dropout": true, "positive": true, "withdrawn": true,
}

// InferLabels picks the Negative/Positive literals out of the distinct values
// seen in a predictions file. Recognised vocabulary wins, otherwise the values
// are ordered ascending.
func InferLabels(values []string) (Labels, error) {
	seen := map[string]bool{}
	distinct := make([]string, 0, 2)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	switch len(distinct) {
	case 0:
		return Labels{Negative: DefaultNegative, Positive: DefaultPositive}, nil
	case 1:
		v := distinct[0]
		if knownPositive[strings.ToLower(v)] {
			return Labels{Negative: DefaultNegative, Positive: v}, nil
		}
		return Labels{Negative: v, Positive: DefaultPositive}, nil
	case 2:
	default:
		return Labels{}, fmt.Errorf("expected two distinct outcome values, found %d: %s", len(distinct), strings.Join(distinct, ", "))
	}

	a, b := distinct[0], distinct[1]
	switch {
	case knownNegative[strings.ToLower(a)]:
		return Labels{Negative: a, Positive: b}, nil
	case knownNegative[strings.ToLower(b)]:
		return Labels{Negative: b, Positive: a}, nil
	case knownPositive[strings.ToLower(a)]:
		return Labels{Negative: b, Positive: a}, nil
	case knownPositive[strings.ToLower(b)]:
		return Labels{Negative: a, Positive: b}, nil
	}
	sort.Strings(distinct)
	return Labels{Negative: distinct[0], Positive: distinct[1]}, nil
}
