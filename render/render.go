// Package render draws palettes and colormaps with go-chart and saves charts
// according to a style sheet's export settings.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bsslab/plotkit/style"
)

// Provider maps a style sheet save format to a go-chart renderer provider.
func Provider(format string) (chart.RendererProvider, error) {
	switch format {
	case "png":
		return chart.PNG, nil
	case "svg":
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("unsupported save format %q (want png or svg)", format)
	}
}

// Save renders the chart to w using the sheet's save format, DPI and
// transparency. A nil sheet falls back to the default style.
func Save(c *chart.Chart, w io.Writer, sheet *style.Sheet) error {
	if sheet == nil {
		sheet = style.Default()
	}
	rp, err := Provider(sheet.Save.Format)
	if err != nil {
		return err
	}
	c.DPI = sheet.Save.DPI
	if sheet.Save.Transparent {
		c.Background.FillColor = drawing.ColorTransparent
		c.Canvas.FillColor = drawing.ColorTransparent
	}
	return c.Render(rp, w)
}

// SaveFile renders the chart to a file, creating or truncating it.
func SaveFile(c *chart.Chart, path string, sheet *style.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	if err := Save(c, f, sheet); err != nil {
		f.Close()
		return fmt.Errorf("save %q: %w", path, err)
	}
	return f.Close()
}
