package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	white = drawing.ColorWhite
	black = drawing.ColorBlack
)

const spineWidth = 1.0

// px and py map data coordinates into the plotting area.
func (f *Figure) px(box chart.Box, x float64) int {
	s := f.Style
	return box.Left + int(math.Round((x-s.XMin)/(s.XMax-s.XMin)*float64(box.Width())))
}

func (f *Figure) py(box chart.Box, y float64) int {
	s := f.Style
	return box.Bottom - int(math.Round((y-s.YMin)/(s.YMax-s.YMin)*float64(box.Height())))
}

func (f *Figure) metrics() metrics {
	return metrics{points: f.Style.FontPoints, dpi: f.Style.DPI}
}

func (f *Figure) textStyle(r chart.Renderer, italic bool) {
	r.SetFont(f.fonts.Pick(italic))
	r.SetFontSize(f.Style.FontPoints)
	r.SetFontColor(black)
}

// drawSpines draws the left and bottom axis lines only.
func (f *Figure) drawSpines(r chart.Renderer, box chart.Box, _ chart.Style) {
	r.SetStrokeColor(black)
	r.SetStrokeWidth(spineWidth)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Left, box.Bottom)
	r.LineTo(box.Right, box.Bottom)
	r.Stroke()
}

func (f *Figure) drawYTicks(r chart.Renderer, box chart.Box, _ chart.Style) {
	s := f.Style
	m := f.metrics()
	ascent := m.ascent(f.fonts.Regular)

	r.SetStrokeColor(black)
	r.SetStrokeWidth(spineWidth)
	for _, y := range s.YTicks() {
		r.MoveTo(box.Left-s.TickLength, f.py(box, y))
		r.LineTo(box.Left, f.py(box, y))
	}
	r.Stroke()

	f.textStyle(r, false)
	for _, y := range s.YTicks() {
		label := tickLabel(y)
		w := m.width(f.fonts.Regular, label)
		r.Text(label, box.Left-s.TickLength-s.TickLabelGap-w, f.py(box, y)+ascent/2)
	}
}

func (f *Figure) drawXTicks(r chart.Renderer, box chart.Box, _ chart.Style) {
	s := f.Style
	m := f.metrics()
	ascent := m.ascent(f.fonts.Regular)
	line := m.lineHeight(f.fonts.Regular)

	r.SetStrokeColor(black)
	r.SetStrokeWidth(spineWidth)
	for i := range f.Categories {
		x := f.px(box, float64(i))
		r.MoveTo(x, box.Bottom)
		r.LineTo(x, box.Bottom+s.TickLength)
	}
	r.Stroke()

	f.textStyle(r, false)
	top := box.Bottom + s.TickLength + s.TickLabelGap + ascent
	for i, c := range f.Categories {
		x := f.px(box, float64(i))
		for j, text := range c.Label {
			w := m.width(f.fonts.Regular, text)
			r.Text(text, x-w/2, top+j*line)
		}
	}
}

func tickLabel(y float64) string {
	return strconv.FormatFloat(y, 'f', -1, 64)
}

// yLabelWidth is the widest y tick label, which the y axis label must clear.
func (f *Figure) yLabelWidth() int {
	m := f.metrics()
	widest := 0
	for _, y := range f.Style.YTicks() {
		w := m.width(f.fonts.Regular, tickLabel(y))
		if w > widest {
			widest = w
		}
	}
	return widest
}

func (f *Figure) drawAxisLabels(r chart.Renderer, box chart.Box, _ chart.Style) {
	s := f.Style
	m := f.metrics()
	ascent := m.ascent(f.fonts.Regular)
	line := m.lineHeight(f.fonts.Regular)

	lines := 0
	for _, c := range f.Categories {
		if len(c.Label) > lines {
			lines = len(c.Label)
		}
	}

	// x label, centred under the tick labels.
	f.textStyle(r, false)
	w := m.width(f.fonts.Regular, s.XLabel)
	baseline := box.Bottom + s.TickLength + s.TickLabelGap + ascent + (lines-1)*line + s.AxisLabelGap + line
	r.Text(s.XLabel, box.Left+(box.Width()-w)/2, baseline)

	// y label, reading upwards and centred on the plotting area. Each run is
	// drawn on its own since the italic run needs a different font.
	total := 0
	for _, seg := range s.YLabel {
		total += m.width(f.fonts.Pick(seg.Italic), seg.Text)
	}

	x := box.Left - s.TickLength - s.TickLabelGap - f.yLabelWidth() - s.AxisLabelGap
	y := box.Top + (box.Height()+total)/2
	for _, seg := range s.YLabel {
		f.textStyle(r, seg.Italic)
		r.SetTextRotation(3 * math.Pi / 2)
		r.Text(seg.Text, x, y)
		r.ClearTextRotation()
		y -= m.width(f.fonts.Pick(seg.Italic), seg.Text)
	}
}
