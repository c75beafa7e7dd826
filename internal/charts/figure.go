package charts

import "strconv"

// Figure mirrors the subset of Plotly's figure schema the page uses.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Text struct {
	Text string `json:"text"`
}

type Trace struct {
	Type        string    `json:"type"`
	Name        string    `json:"name,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	X           any       `json:"x,omitempty"`
	Y           any       `json:"y,omitempty"`
	Z           [][]int   `json:"z,omitempty"`
	ColorScale  string    `json:"colorscale,omitempty"`
	ColorBar    *ColorBar `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title Text `json:"title"`
}

type Axis struct {
	Title     Text   `json:"title"`
	AutoRange string `json:"autorange,omitempty"`
}

type Legend struct {
	Title Text `json:"title"`
}

type Annotation struct {
	X         string `json:"x"`
	Y         string `json:"y"`
	Text      string `json:"text"`
	ShowArrow bool   `json:"showarrow"`
	Font      *Font  `json:"font,omitempty"`
}

type Font struct {
	Color string `json:"color"`
}

type Layout struct {
	Title       Text         `json:"title"`
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	BarMode     string       `json:"barmode,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (c Chart) Figure() Figure {
	f := Figure{
		Data: []Trace{},
		Layout: Layout{
			Title: Text{c.Title},
			XAxis: Axis{Title: Text{c.XTitle}},
			YAxis: Axis{Title: Text{c.YTitle}},
		},
	}
	if c.LegendTitle != "" {
		f.Layout.Legend = &Legend{Title: Text{c.LegendTitle}}
	}

	switch c.Kind {
	case KindHeatmap:
		if c.Heatmap == nil {
			break
		}
		h := c.Heatmap
		f.Data = append(f.Data, Trace{
			Type:       "heatmap",
			X:          h.XLabels,
			Y:          h.YLabels,
			Z:          h.Z,
			ColorScale: h.ColorScale,
			ColorBar:   &ColorBar{Title: Text{h.ColorBarTitle}},
		})
		f.Layout.YAxis.AutoRange = "reversed"
		max := 0
		for _, row := range h.Z {
			for _, v := range row {
				if v > max {
					max = v
				}
			}
		}
		for r, row := range h.Z {
			for col, v := range row {
				color := "white"
				if max > 0 && v*2 > max {
					color = "black"
				}
				f.Layout.Annotations = append(f.Layout.Annotations, Annotation{
					X: h.XLabels[col], Y: h.YLabels[r], Text: strconv.Itoa(v), Font: &Font{Color: color},
				})
			}
		}

	case KindGroupedBar:
		f.Layout.BarMode = "group"
		for _, s := range c.Series {
			f.Data = append(f.Data, Trace{Type: "bar", Name: s.Name, X: c.Categories, Y: s.Values})
		}

	default:
		for _, s := range c.Series {
			switch {
			case c.Horizontal:
				f.Data = append(f.Data, Trace{Type: "bar", Name: s.Name, Orientation: "h", X: s.Values, Y: c.Categories})
			case c.ColorByCategory:
				for i, cat := range c.Categories {
					f.Data = append(f.Data, Trace{Type: "bar", Name: cat, X: []string{cat}, Y: []float64{s.Values[i]}})
				}
			default:
				f.Data = append(f.Data, Trace{Type: "bar", Name: s.Name, X: c.Categories, Y: s.Values})
			}
		}
	}
	return f
}
