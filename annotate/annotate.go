// Package annotate adds panel labels ("a", "b", ... or "1", "2", ...) to
// go-chart panels in multi-panel figures.
package annotate

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Location selects the corner a panel label is anchored to.
type Location int

const (
	UpperLeft Location = iota
	UpperRight
)

const (
	defaultFontSize = 16.0
	edgePad         = 8
	boxPad          = 4
)

type options struct {
	loc        Location
	numbers    bool
	background bool
	fontSize   float64
	fontColor  drawing.Color
}

// Option adjusts panel label rendering.
type Option func(*options)

// WithLocation anchors the label to the given corner. Default is UpperLeft.
func WithLocation(loc Location) Option {
	return func(o *options) { o.loc = loc }
}

// WithNumbers renders integer labels as digits instead of converting them to
// letters.
func WithNumbers() Option {
	return func(o *options) { o.numbers = true }
}

// WithoutBackground drops the translucent white box behind the label.
func WithoutBackground() Option {
	return func(o *options) { o.background = false }
}

// WithFontSize overrides the label font size.
func WithFontSize(size float64) Option {
	return func(o *options) { o.fontSize = size }
}

// WithFontColor overrides the label font color.
func WithFontColor(c drawing.Color) Option {
	return func(o *options) { o.fontColor = c }
}

// Letter converts a 1-based panel index to its lowercase letter label,
// extending past "z" to "aa", "ab", and so on. Indexes below 1 yield "".
func Letter(index int) string {
	var out []byte
	for index > 0 {
		index--
		out = append([]byte{byte('a' + index%26)}, out...)
		index /= 26
	}
	return string(out)
}

// UpperLetter is Letter with uppercase output.
func UpperLetter(index int) string {
	var out []byte
	for index > 0 {
		index--
		out = append([]byte{byte('A' + index%26)}, out...)
		index /= 26
	}
	return string(out)
}

// PanelNumber returns a renderable that draws the label near the chosen
// corner of the canvas box. Integer labels are converted to letters unless
// WithNumbers is given; any other label type is rendered via fmt.Sprint.
func PanelNumber(label any, opts ...Option) chart.Renderable {
	o := options{
		loc:        UpperLeft,
		background: true,
		fontSize:   defaultFontSize,
		fontColor:  drawing.ColorBlack,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var text string
	switch v := label.(type) {
	case int:
		if o.numbers {
			text = fmt.Sprintf("%d", v)
		} else {
			text = Letter(v)
		}
	default:
		text = fmt.Sprint(label)
	}

	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		if chartDefaults.Font != nil {
			r.SetFont(chartDefaults.Font)
		}
		r.SetFontSize(o.fontSize)
		r.SetFontColor(o.fontColor)
		tb := r.MeasureText(text)

		var x int
		switch o.loc {
		case UpperRight:
			x = cb.Right - tb.Width() - edgePad
		default:
			x = cb.Left + edgePad
		}
		y := cb.Top + tb.Height() + edgePad

		if o.background {
			fillRect(r, x-boxPad, y-tb.Height()-boxPad, x+tb.Width()+boxPad, y+boxPad,
				drawing.ColorWhite.WithAlpha(204))
			// Fill resets the path; restate the font state before drawing.
			r.SetFontSize(o.fontSize)
			r.SetFontColor(o.fontColor)
		}
		r.Text(text, x, y)
	}
}

// AddPanelNumber appends a panel label to the chart. It only adds a drawing
// element; series, axes, ranges and title are left untouched.
func AddPanelNumber(c *chart.Chart, label any, opts ...Option) {
	c.Elements = append(c.Elements, PanelNumber(label, opts...))
}

func fillRect(r chart.Renderer, left, top, right, bottom int, fill drawing.Color) {
	r.SetFillColor(fill)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.Close()
	r.Fill()
}
