package charts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	imgWidth  = 8 * vg.Inch
	imgHeight = 5 * vg.Inch
	barWidth  = vg.Length(18)
)

// Render writes c as an image. format is any gonum/plot format ("png", "svg", ...).
func Render(w io.Writer, c Chart, format string) error {
	p, err := c.plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imgWidth, imgHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders c to path, picking the format from the extension.
func Save(path string, c Chart) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("charts: %s has no file extension", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Render(f, c, format); err != nil {
		return err
	}
	return f.Close()
}

func (c Chart) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XTitle
	p.Y.Label.Text = c.YTitle

	switch c.Kind {
	case KindHeatmap:
		return p, c.addHeatmap(p)
	case KindBar, KindGroupedBar:
		return p, c.addBars(p)
	}
	return nil, fmt.Errorf("charts: unknown kind %q", c.Kind)
}

func (c Chart) addBars(p *plot.Plot) error {
	if len(c.Categories) == 0 || len(c.Series) == 0 {
		return nil
	}
	n := len(c.Series)
	for i, s := range c.Series {
		if len(s.Values) != len(c.Categories) {
			return fmt.Errorf("charts: series %q has %d values for %d categories", s.Name, len(s.Values), len(c.Categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Horizontal = c.Horizontal
		if n > 1 {
			bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
			p.Legend.Add(s.Name, bars)
		}
		p.Add(bars)
	}
	if n > 1 {
		p.Legend.Top = true
	}
	if c.Horizontal {
		p.NominalY(c.Categories...)
		p.X.Min = 0
	} else {
		p.NominalX(c.Categories...)
		p.Y.Min = 0
	}
	return nil
}

// grid adapts a heatmap so that Z[0] is drawn at the top.
type grid struct{ z [][]int }

func (g grid) Dims() (c, r int)   { return len(g.z[0]), len(g.z) }
func (g grid) Z(c, r int) float64 { return float64(g.z[len(g.z)-1-r][c]) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

func (c Chart) addHeatmap(p *plot.Plot) error {
	h := c.Heatmap
	if h == nil || len(h.Z) == 0 || len(h.Z[0]) == 0 {
		return errors.New("charts: heatmap without data")
	}
	g := grid{z: h.Z}
	hm := plotter.NewHeatMap(g, palette.Heat(12, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	cols, rows := g.Dims()
	var lbl plotter.XYLabels
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			lbl.XYs = append(lbl.XYs, plotter.XY{X: g.X(col), Y: g.Y(r)})
			lbl.Labels = append(lbl.Labels, strconv.Itoa(int(g.Z(col, r))))
		}
	}
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return err
	}
	p.Add(labels)

	ylabels := make([]string, len(h.YLabels))
	for i, l := range h.YLabels {
		ylabels[len(h.YLabels)-1-i] = l
	}
	p.NominalX(h.XLabels...)
	p.NominalY(ylabels...)
	return nil
}
