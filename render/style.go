package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed presentation of the filtering strategy comparison.
const (
	FigureInches = 7.0
	FigureDPI    = 100.0

	// MarkerGray is the red, green and blue level of every marker, in [0, 1].
	MarkerGray = 0.5

	// MarkerPoints is the marker diameter in typographic points.
	MarkerPoints = 5.0

	YMin      = -0.5
	YMax      = 14.5
	YTickStep = 2.0

	// The categorical axis puts category i at x=i with half a category of
	// margin on either side.
	XMin = -0.5
	XMax = 1.5

	// CategoryWidth is the fraction of a category's slot the swarm may
	// spread into.
	CategoryWidth = 0.8

	FontPoints = 10.0

	XLabel = "Filtering strategy"
)

// LabelSegment is a run of label text in a single face.
type LabelSegment struct {
	Text   string
	Italic bool
}

// YLabel reads "Candidate de novo variants" with "de novo" in italics.
var YLabel = []LabelSegment{
	{Text: "Candidate "},
	{Text: "de novo", Italic: true},
	{Text: " variants"},
}

// TickLabels describe the two filtering strategies, one slice of lines per
// category. They replace whatever the input columns are called.
var TickLabels = [2][]string{
	{
		"0.2 <= AB < 0.8",
		"& GQ >= 5",
	},
	{
		"gnomAD popmax AF < 0.001",
		"& PASS in gnomAD",
		"& topMed AF < 0.01",
	},
}

// Style gathers everything about the figure that does not depend on the data.
type Style struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64

	MarkerGray   float64
	MarkerPoints float64

	YMin, YMax float64
	YTickStep  float64
	XMin, XMax float64

	CategoryWidth float64

	FontPoints float64
	XLabel     string
	YLabel     []LabelSegment
	TickLabels [2][]string

	// Padding is the space around the plotting area, in pixels. The axis
	// ticks and labels are drawn inside it.
	Padding chart.Box

	TickLength   int // pixels
	TickLabelGap int // pixels between a tick and its label
	AxisLabelGap int // pixels between tick labels and the axis label
}

// DefaultStyle is the published figure.
var DefaultStyle = Style{
	WidthInches:  FigureInches,
	HeightInches: FigureInches,
	DPI:          FigureDPI,

	MarkerGray:   MarkerGray,
	MarkerPoints: MarkerPoints,

	YMin:      YMin,
	YMax:      YMax,
	YTickStep: YTickStep,
	XMin:      XMin,
	XMax:      XMax,

	CategoryWidth: CategoryWidth,

	FontPoints: FontPoints,
	XLabel:     XLabel,
	YLabel:     YLabel,
	TickLabels: TickLabels,

	Padding: chart.Box{Top: 20, Left: 80, Right: 20, Bottom: 120},

	TickLength:   5,
	TickLabelGap: 4,
	AxisLabelGap: 8,
}

// WidthPx and HeightPx are the size of the rendered image.
func (s Style) WidthPx() int  { return int(math.Round(s.WidthInches * s.DPI)) }
func (s Style) HeightPx() int { return int(math.Round(s.HeightInches * s.DPI)) }

// MarkerDiameterPx converts the marker size from points to pixels.
func (s Style) MarkerDiameterPx() float64 {
	return s.MarkerPoints * s.DPI / 72
}

// MarkerColor is the opaque gray every marker is drawn in.
func (s Style) MarkerColor() drawing.Color {
	level := uint8(math.Round(s.MarkerGray * 255))
	return drawing.Color{R: level, G: level, B: level, A: 255}
}

// YTicks lists the y values that get a tick: multiples of YTickStep within
// the display range.
func (s Style) YTicks() []float64 {
	if s.YTickStep <= 0 {
		return nil
	}
	var out []float64
	for y := math.Ceil(s.YMin/s.YTickStep) * s.YTickStep; y <= s.YMax; y += s.YTickStep {
		out = append(out, y)
	}
	return out
}

// plotBox is the plotting area inside the padding. go-chart arrives at the
// same box because every axis it would draw itself is hidden.
func (s Style) plotBox() chart.Box {
	return chart.Box{
		Top:    s.Padding.Top,
		Left:   s.Padding.Left,
		Right:  s.WidthPx() - s.Padding.Right,
		Bottom: s.HeightPx() - s.Padding.Bottom,
	}
}
