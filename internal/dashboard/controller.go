// Package dashboard maps dropdown selections to charts. A Controller is built
// once from loaded tables; every handler is a pure function of its input and
// safe for concurrent use.
package dashboard

import (
	"fmt"
	"strings"

	"dropoutdash/internal/charts"
	"dropoutdash/internal/data"
	"dropoutdash/internal/metrics"
)

// Dropdown ids.
const (
	DropdownFeatureModel    = "model-dropdown"
	DropdownPredictionModel = "prediction-model-dropdown"
	DropdownConfusionModel  = "confusion-matrix-dropdown"
)

// Option values.
const (
	FeatureRF  = "rf"
	FeatureXGB = "xgb"

	ModelRandomForest = "Random Forest"
	ModelXGBoost      = "XGBoost"
)

// UnknownSelectionError reports a dropdown id or value outside its fixed option set.
type UnknownSelectionError struct {
	Dropdown string
	Value    string
	Allowed  []string
}

func (e *UnknownSelectionError) Error() string {
	if e.Allowed == nil {
		return fmt.Sprintf("unknown dropdown %q", e.Dropdown)
	}
	return fmt.Sprintf("%s: unknown selection %q (allowed: %s)", e.Dropdown, e.Value, strings.Join(e.Allowed, ", "))
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Handler produces the chart for one dropdown value.
type Handler func(value string) (charts.Chart, error)

// Binding ties a dropdown to the graph it drives.
type Binding struct {
	Dropdown string   `json:"dropdown"`
	Graph    string   `json:"graph"`
	Options  []Option `json:"options"`
	Default  string   `json:"default"`
	Handler  Handler  `json:"-"`
}

func (b Binding) values() []string {
	out := make([]string, len(b.Options))
	for i, o := range b.Options {
		out[i] = o.Value
	}
	return out
}

type Controller struct {
	tables      *data.Tables
	performance charts.Chart
	rfCM        metrics.ConfusionMatrix
	xgbCM       metrics.ConfusionMatrix
	rfCMChart   charts.Chart
	xgbCMChart  charts.Chart
	bindings    []Binding
	byDropdown  map[string]int
}

// NewController derives both confusion matrices and registers the bindings.
func NewController(t *data.Tables) (*Controller, error) {
	rf, err := metrics.Derive(t.Predictions, data.ColActual, data.ColRandomForest, t.Labels)
	if err != nil {
		return nil, fmt.Errorf("random forest confusion matrix: %w", err)
	}
	xgb, err := metrics.Derive(t.Predictions, data.ColActual, data.ColXGBoost, t.Labels)
	if err != nil {
		return nil, fmt.Errorf("xgboost confusion matrix: %w", err)
	}
	c := &Controller{
		tables:      t,
		performance: charts.Performance(t.Performance),
		rfCM:        rf,
		xgbCM:       xgb,
		rfCMChart:   charts.ConfusionMatrix(ModelRandomForest, rf),
		xgbCMChart:  charts.ConfusionMatrix(ModelXGBoost, xgb),
	}
	c.register(Binding{
		Dropdown: DropdownFeatureModel,
		Graph:    charts.GraphFeatureImportance,
		Options:  []Option{{ModelRandomForest, FeatureRF}, {ModelXGBoost, FeatureXGB}},
		Default:  FeatureRF,
		Handler:  c.OnFeatureModelSelected,
	})
	c.register(Binding{
		Dropdown: DropdownPredictionModel,
		Graph:    charts.GraphPredictions,
		Options:  []Option{{ModelRandomForest, data.ColRandomForest}, {ModelXGBoost, data.ColXGBoost}},
		Default:  data.ColRandomForest,
		Handler:  c.OnPredictionModelSelected,
	})
	c.register(Binding{
		Dropdown: DropdownConfusionModel,
		Graph:    charts.GraphConfusion,
		Options:  []Option{{ModelRandomForest, ModelRandomForest}, {ModelXGBoost, ModelXGBoost}},
		Default:  ModelRandomForest,
		Handler:  c.OnConfusionModelSelected,
	})
	return c, nil
}

func (c *Controller) register(b Binding) {
	if c.byDropdown == nil {
		c.byDropdown = map[string]int{}
	}
	c.byDropdown[b.Dropdown] = len(c.bindings)
	c.bindings = append(c.bindings, b)
}

// Bindings returns the registered bindings in page order.
func (c *Controller) Bindings() []Binding {
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

func (c *Controller) Binding(dropdown string) (Binding, bool) {
	i, ok := c.byDropdown[dropdown]
	if !ok {
		return Binding{}, false
	}
	return c.bindings[i], true
}

// Dispatch runs the handler registered for dropdown.
func (c *Controller) Dispatch(dropdown, value string) (Binding, charts.Chart, error) {
	b, ok := c.Binding(dropdown)
	if !ok {
		return Binding{}, charts.Chart{}, &UnknownSelectionError{Dropdown: dropdown, Value: value}
	}
	ch, err := b.Handler(value)
	return b, ch, err
}

// Performance is the static accuracy chart.
func (c *Controller) Performance() charts.Chart { return c.performance }

func (c *Controller) OnFeatureModelSelected(value string) (charts.Chart, error) {
	switch value {
	case FeatureRF:
		return charts.FeatureImportance(ModelRandomForest, c.tables.RFImportance), nil
	case FeatureXGB:
		return charts.FeatureImportance(ModelXGBoost, c.tables.XGBImportance), nil
	}
	return charts.Chart{}, c.unknown(DropdownFeatureModel, value)
}

func (c *Controller) OnPredictionModelSelected(value string) (charts.Chart, error) {
	switch value {
	case data.ColRandomForest, data.ColXGBoost:
	default:
		return charts.Chart{}, c.unknown(DropdownPredictionModel, value)
	}
	groups, err := metrics.CountPairs(c.tables.Predictions, data.ColActual, value)
	if err != nil {
		return charts.Chart{}, err
	}
	return charts.PredictionCounts(value, groups), nil
}

func (c *Controller) OnConfusionModelSelected(value string) (charts.Chart, error) {
	switch value {
	case ModelRandomForest:
		return c.rfCMChart, nil
	case ModelXGBoost:
		return c.xgbCMChart, nil
	}
	return charts.Chart{}, c.unknown(DropdownConfusionModel, value)
}

// ConfusionMatrix returns the matrix derived at construction for a model name.
func (c *Controller) ConfusionMatrix(model string) (metrics.ConfusionMatrix, error) {
	switch model {
	case ModelRandomForest:
		return c.rfCM, nil
	case ModelXGBoost:
		return c.xgbCM, nil
	}
	return metrics.ConfusionMatrix{}, c.unknown(DropdownConfusionModel, model)
}

func (c *Controller) unknown(dropdown, value string) error {
	e := &UnknownSelectionError{Dropdown: dropdown, Value: value, Allowed: []string{}}
	if b, ok := c.Binding(dropdown); ok {
		e.Allowed = b.values()
	}
	return e
}
