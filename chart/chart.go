package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/engine"
)

// ============================================================================
// CHART EMITTER — PNG artifacts via gonum/plot
// ============================================================================
// Two independent, best-effort render operations: a bar chart of the
// full grouped distribution and a line chart of monthly sums with point
// markers. Existing files at the output path are overwritten. Render
// failures are returned for logging — callers continue the pipeline.
// ============================================================================

var (
	barColor  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	lineColor = color.RGBA{R: 79, G: 70, B: 229, A: 255}
)

// Bar renders a bar chart of grouped sums: one bar per group in the
// given (already sorted) order. The full set is rendered, not a top-N
// slice.
func Bar(path, title, xLabel, yLabel string, groups []engine.Group) error {
	if len(groups) == 0 {
		return fmt.Errorf("bar chart: no groups to render")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(groups))
	labels := make([]string, len(groups))
	for i, g := range groups {
		values[i] = g.Value
		labels[i] = g.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	return nil
}

// Line renders a line chart of a monthly series with a marker at each
// point, months on the X axis in chronological order.
func Line(path, title, yLabel string, series []engine.MonthSum) error {
	if len(series) == 0 {
		return fmt.Errorf("line chart: no data points to render")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = yLabel

	points := make(plotter.XYs, len(series))
	labels := make([]string, len(series))
	for i, m := range series {
		points[i].X = float64(i)
		points[i].Y = m.Value
		labels[i] = m.Month.Format("Jan 2006")
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return fmt.Errorf("line chart: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	scatter.GlyphStyle.Color = lineColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, scatter)
	p.Add(plotter.NewGrid())
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("line chart: %w", err)
	}
	return nil
}
