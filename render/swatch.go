package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bsslab/plotkit/palette"
	"github.com/bsslab/plotkit/style"
)

// Swatch builds a chart displaying one labeled band per palette color, in
// palette order.
func Swatch(p *palette.Palette, sheet *style.Sheet) (*chart.Chart, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("swatch: empty palette")
	}
	if sheet == nil {
		sheet = style.Default()
	}

	c := &chart.Chart{
		Title:  p.Name(),
		Series: []chart.Series{invisibleSpan(float64(p.Len()))},
	}
	if err := sheet.Apply(c); err != nil {
		return nil, err
	}
	hideAxes(c)

	colors := p.Colors()
	fontColor := sheet.TextColor()
	c.Elements = append(c.Elements, func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		if chartDefaults.Font != nil {
			r.SetFont(chartDefaults.Font)
		}
		band := float64(cb.Width()) / float64(len(colors))
		labelTop := cb.Bottom - 24
		for i, col := range colors {
			left := cb.Left + int(float64(i)*band)
			right := cb.Left + int(float64(i+1)*band)
			fillBox(r, left, cb.Top, right, labelTop, col.Value)

			r.SetFontColor(fontColor)
			r.SetFontSize(sheet.FontSize)
			tb := r.MeasureText(col.Name)
			x := left + (right-left-tb.Width())/2
			r.Text(col.Name, x, cb.Bottom-6)
		}
	})
	return c, nil
}

// Ramp builds a chart previewing a colormap as a horizontal band, sampled
// once per pixel column.
func Ramp(cm *palette.Colormap, sheet *style.Sheet) (*chart.Chart, error) {
	if cm == nil {
		return nil, fmt.Errorf("ramp: nil colormap")
	}
	if sheet == nil {
		sheet = style.Default()
	}

	c := &chart.Chart{
		Title:  cm.Name(),
		Series: []chart.Series{invisibleSpan(1)},
	}
	if err := sheet.Apply(c); err != nil {
		return nil, err
	}
	hideAxes(c)

	c.Elements = append(c.Elements, func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		width := cb.Width()
		if width <= 1 {
			return
		}
		for x := 0; x < width; x++ {
			t := float64(x) / float64(width-1)
			fillBox(r, cb.Left+x, cb.Top, cb.Left+x+1, cb.Bottom, cm.At(t))
		}
	})
	return c, nil
}

// invisibleSpan pins the chart ranges without drawing anything; go-chart
// requires at least one series to render.
func invisibleSpan(xmax float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{0, xmax},
		YValues: []float64{0, 1},
		Style: chart.Style{
			StrokeColor: chart.ColorTransparent,
		},
	}
}

func hideAxes(c *chart.Chart) {
	c.XAxis.Style.Hidden = true
	c.YAxis.Style.Hidden = true
	c.YAxisSecondary.Style.Hidden = true
	c.XAxis.GridMajorStyle.Hidden = true
	c.YAxis.GridMajorStyle.Hidden = true
}

func fillBox(r chart.Renderer, left, top, right, bottom int, fill drawing.Color) {
	r.SetFillColor(fill)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.Close()
	r.Fill()
}
