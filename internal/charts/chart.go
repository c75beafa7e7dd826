// Package charts holds declarative chart descriptions for the dashboard. A
// Chart is encoded as a Plotly figure for the browser and can be rendered to
// an image with gonum/plot for exports.
package charts

type Kind string

const (
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
	KindHeatmap    Kind = "heatmap"
)

type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Heatmap carries an integer grid. Z[0] is the top row.
type Heatmap struct {
	Z             [][]int  `json:"z"`
	XLabels       []string `json:"x_labels"`
	YLabels       []string `json:"y_labels"`
	ColorScale    string   `json:"color_scale"`
	ColorBarTitle string   `json:"color_bar_title"`
}

// Chart is immutable once built; handlers hand out the same value repeatedly.
type Chart struct {
	ID         string `json:"id"`
	Kind       Kind   `json:"kind"`
	Title      string `json:"title"`
	XTitle     string `json:"x_title"`
	YTitle     string `json:"y_title"`
	Horizontal bool   `json:"horizontal,omitempty"`
	// ColorByCategory gives every bar of a single-series chart its own trace.
	ColorByCategory bool     `json:"color_by_category,omitempty"`
	LegendTitle     string   `json:"legend_title,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Series          []Series `json:"series,omitempty"`
	Heatmap         *Heatmap `json:"heatmap,omitempty"`
}
