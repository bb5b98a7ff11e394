// Package render draws the swarm comparison of the two filtering strategies
// with go-chart.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/carbocation/denovoplot/swarm"
	"github.com/carbocation/denovoplot/table"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// Category is one filtering strategy on the x axis.
type Category struct {
	// Variable is the input column the values came from.
	Variable string

	// Label is the tick label, one entry per line.
	Label []string

	// Values holds every count, missing values included.
	Values []float64
}

// Figure is a fully described chart. It is an explicit handle: nothing about
// the chart lives in package state.
type Figure struct {
	Style      Style
	Categories []Category

	fonts Fonts
}

// New lays out the long-form table as a two-category figure, one category
// per variable in the given order. Variables without records get an empty
// category. The tick labels come from style, not from the variable names.
func New(variables []string, long table.Long, style Style) (*Figure, error) {
	if len(variables) != len(style.TickLabels) {
		return nil, fmt.Errorf("expected %d filtering strategies, found %d: %v", len(style.TickLabels), len(variables), variables)
	}

	known := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		if _, dup := known[v]; dup {
			return nil, fmt.Errorf("filtering strategy %q is listed twice", v)
		}
		known[v] = struct{}{}
	}
	for _, v := range long.Variables() {
		if _, ok := known[v]; !ok {
			return nil, fmt.Errorf("records for %q do not belong to any of %v", v, variables)
		}
	}

	f, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	fig := &Figure{Style: style, fonts: f}
	for i, v := range variables {
		fig.Categories = append(fig.Categories, Category{
			Variable: v,
			Label:    style.TickLabels[i],
			Values:   long.Values(v),
		})
	}

	return fig, nil
}

// visible reports whether y is drawn: present and inside the y display range.
func (f *Figure) visible(y float64) bool {
	return !math.IsNaN(y) && y >= f.Style.YMin && y <= f.Style.YMax
}

// Hidden counts the present values that fall outside the y display range.
func (f *Figure) Hidden() int {
	n := 0
	for _, c := range f.Categories {
		for _, y := range c.Values {
			if !math.IsNaN(y) && !f.visible(y) {
				n++
			}
		}
	}
	return n
}

// Point is a marker position in data coordinates.
type Point struct {
	X, Y float64
}

// Points returns the markers of category i after the swarm layout, including
// those that fall outside the display range, and how many of them had to be
// squeezed in at the edge of the category.
func (f *Figure) Points(i int) ([]Point, int) {
	s := f.Style
	box := s.plotBox()

	pxPerY := float64(box.Height()) / (s.YMax - s.YMin)
	pxPerX := float64(box.Width()) / (s.XMax - s.XMin)

	var ys []float64
	for _, y := range f.Categories[i].Values {
		if math.IsNaN(y) {
			continue
		}
		ys = append(ys, y)
	}

	scaled := make([]float64, len(ys))
	for j, y := range ys {
		scaled[j] = (y - s.YMin) * pxPerY
	}

	offsets := swarm.Layout(scaled, s.MarkerDiameterPx())
	offsets, squeezed := swarm.Clamp(offsets, s.CategoryWidth/2*pxPerX)

	out := make([]Point, len(ys))
	for j, y := range ys {
		out[j] = Point{X: float64(i) + offsets[j]/pxPerX, Y: y}
	}

	return out, squeezed
}

// Squeezed counts the markers, over all categories, that did not fit within
// the category width.
func (f *Figure) Squeezed() int {
	n := 0
	for i := range f.Categories {
		_, sq := f.Points(i)
		n += sq
	}
	return n
}

// Chart assembles the go-chart chart. Its own axes are hidden; the spines,
// ticks and labels are drawn by elements so that the bottom and left spines
// are the only frame.
func (f *Figure) Chart() chart.Chart {
	s := f.Style

	var series []chart.Series
	for i, c := range f.Categories {
		points, _ := f.Points(i)

		var xs, ys []float64
		for _, p := range points {
			if !f.visible(p.Y) {
				continue
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		if len(xs) == 0 {
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name: c.Variable,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    s.MarkerDiameterPx() / 2,
				DotColor:    s.MarkerColor(),
			},
			XValues: xs,
			YValues: ys,
		})
	}

	if len(series) == 0 {
		// go-chart refuses to render without a visible series. This one has
		// neither a line nor dots, so it draws nothing.
		series = append(series, chart.ContinuousSeries{
			Name: "empty",
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    chart.Disabled,
			},
			XValues: []float64{s.XMin, s.XMax},
			YValues: []float64{s.YMin, s.YMax},
		})
	}

	return chart.Chart{
		Width:  s.WidthPx(),
		Height: s.HeightPx(),
		DPI:    s.DPI,
		Font:   f.fonts.Regular,
		Background: chart.Style{
			Padding:     s.Padding,
			FillColor:   white,
			StrokeColor: white,
		},
		Canvas: chart.Style{
			FillColor:   white,
			StrokeColor: white,
		},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: s.XMin, Max: s.XMax},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: s.YMin, Max: s.YMax},
		},
		Series: series,
		Elements: []chart.Renderable{
			f.drawSpines,
			f.drawYTicks,
			f.drawXTicks,
			f.drawAxisLabels,
		},
	}
}

// WritePNG renders the figure as a PNG image.
func (f *Figure) WritePNG(w io.Writer) error {
	graph := f.Chart()
	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// PNG renders the figure into memory.
func (f *Figure) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image renders the figure and decodes it for display.
func (f *Figure) Image() (image.Image, error) {
	b, err := f.PNG()
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, pfx.Err(err)
	}
	return img, nil
}
