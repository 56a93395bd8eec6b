// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/danielhkuo/pulse-compare/compare"
)

// Format is an output image format
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var (
	ErrUnknownFormat = errors.New("unknown chart format")
	ErrNoRegions     = errors.New("no regions to chart")
)

// Axis limits of the two charts
const (
	ComparisonMin = 0.0
	ComparisonMax = 100.0
	AdvantageMin  = -60.0
	AdvantageMax  = 60.0
)

const (
	Width     = 10 * vg.Inch
	minHeight = 6 * vg.Inch
	rowHeight = vg.Length(26)
	barWidth  = vg.Length(9)
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatPNG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Height grows the canvas with the number of regions
func Height(regions int) vg.Length {
	h := vg.Length(regions)*rowHeight + 2*vg.Inch
	if h < minHeight {
		return minHeight
	}
	return h
}

// Comparison draws both candidates' support as grouped horizontal bars.
func Comparison(series compare.ComparisonSeries, palette compare.Palette) (*plot.Plot, error) {
	if len(series.Points) == 0 {
		return nil, ErrNoRegions
	}

	colorA, err := parseColor(palette.A)
	if err != nil {
		return nil, err
	}
	colorB, err := parseColor(palette.B)
	if err != nil {
		return nil, err
	}

	n := len(series.Points)
	regions := make([]string, n)
	valuesA := make(plotter.Values, n)
	valuesB := make(plotter.Values, n)
	labelsA := make([]string, n)
	labelsB := make([]string, n)
	for i, pt := range series.Points {
		regions[i] = pt.Region
		valuesA[i], valuesB[i] = pt.ValueA, pt.ValueB
		labelsA[i], labelsB[i] = pt.LabelA, pt.LabelB
	}

	p := plot.New()
	p.Title.Text = "Regional Support Comparison"
	p.X.Label.Text = "Support Percentage (%)"
	p.Y.Label.Text = "Region"
	p.Legend.Top = true

	barsA, err := horizontalBars(valuesA, colorA, barWidth/2)
	if err != nil {
		return nil, err
	}
	barsB, err := horizontalBars(valuesB, colorB, -barWidth/2)
	if err != nil {
		return nil, err
	}
	p.Add(barsA, barsB)
	p.Legend.Add(series.A, barsA)
	p.Legend.Add(series.B, barsB)

	for _, side := range []struct {
		values plotter.Values
		labels []string
		offset vg.Length
	}{
		{valuesA, labelsA, barWidth / 2},
		{valuesB, labelsB, -barWidth / 2},
	} {
		lbl, err := valueLabels(side.values, side.labels, side.offset)
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}

	p.NominalY(regions...)
	p.X.Min, p.X.Max = ComparisonMin, ComparisonMax
	return p, nil
}

// Advantage draws the signed difference per region as diverging bars,
// colored by the favored candidate, with a zero line.
func Advantage(series compare.AdvantageSeries) (*plot.Plot, error) {
	if len(series.Points) == 0 {
		return nil, ErrNoRegions
	}

	n := len(series.Points)
	regions := make([]string, n)
	diffs := make(plotter.Values, n)
	labels := make([]string, n)

	// One bar chart per color; other rows hold zero-length bars
	var order []string
	byColor := make(map[string]plotter.Values)
	for i, pt := range series.Points {
		regions[i] = pt.Region
		diffs[i] = pt.Difference
		labels[i] = pt.Label

		vals, ok := byColor[pt.Color]
		if !ok {
			vals = make(plotter.Values, n)
			byColor[pt.Color] = vals
			order = append(order, pt.Color)
		}
		vals[i] = pt.Difference
	}

	p := plot.New()
	p.Title.Text = "Regional Advantage Map"
	p.X.Label.Text = "Advantage (%)"
	p.Y.Label.Text = "Region"

	for _, hex := range order {
		c, err := parseColor(hex)
		if err != nil {
			return nil, err
		}
		bars, err := horizontalBars(byColor[hex], c, 0)
		if err != nil {
			return nil, err
		}
		p.Add(bars)
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -0.5}, {X: 0, Y: float64(n) - 0.5}})
	if err != nil {
		return nil, fmt.Errorf("zero line: %w", err)
	}
	zero.Color = color.Black
	zero.Width = vg.Points(2)
	p.Add(zero)

	lbl, err := valueLabels(diffs, labels, 0)
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	p.NominalY(regions...)
	p.X.Min, p.X.Max = AdvantageMin, AdvantageMax
	return p, nil
}

// Render writes p in format f sized for the given number of regions.
func Render(w io.Writer, p *plot.Plot, regions int, f Format) error {
	wt, err := p.WriterTo(Width, Height(regions), string(f))
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", f, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", f, err)
	}
	return nil
}

func horizontalBars(values plotter.Values, c color.Color, offset vg.Length) (*plotter.BarChart, error) {
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = c
	bars.LineStyle.Width = 0
	bars.Offset = offset
	return bars, nil
}

// valueLabels places one text label just past the end of each bar.
// Labels of negative bars are right aligned so they sit left of the bar.
func valueLabels(values plotter.Values, labels []string, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: v, Y: float64(i)}
	}

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	lbl.Offset = vg.Point{Y: offset}
	for i, v := range values {
		lbl.TextStyle[i].YAlign = draw.YCenter
		lbl.TextStyle[i].Font.Size = vg.Points(8)
		if v < 0 {
			lbl.TextStyle[i].XAlign = draw.XRight
		}
	}
	return lbl, nil
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
