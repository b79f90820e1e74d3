// Package style holds the declarative style sheet governing figure
// aesthetics: fonts, color cycle, grid, spines, figure size and export
// settings. A Sheet is applied explicitly to each chart rather than through
// process-global state, so concurrent plotting sessions with different
// sheets stay independent.
package style

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"github.com/bsslab/plotkit/palette"
)

// EnvStyle names the environment variable consulted when Load is called with
// an empty path.
const EnvStyle = "PLOTKIT_STYLE"

// SaveConfig holds figure export settings.
type SaveConfig struct {
	Format      string  `yaml:"format"`
	DPI         float64 `yaml:"dpi"`
	Transparent bool    `yaml:"transparent"`
}

// Spines controls which axis lines are drawn. go-chart draws the bottom
// spine as the x axis, the left spine as the y axis and the right spine as
// the secondary y axis; there is no top spine, so Top is accepted for
// symmetry with matplotlib-style sheets and otherwise ignored.
type Spines struct {
	Left   bool `yaml:"left"`
	Bottom bool `yaml:"bottom"`
	Top    bool `yaml:"top"`
	Right  bool `yaml:"right"`
}

// Sheet is a declarative style sheet. Colors are hex strings.
type Sheet struct {
	FontPath     string     `yaml:"font_path"`
	FontSize     float64    `yaml:"font_size"`
	FontColor    string     `yaml:"font_color"`
	ColorCycle   []string   `yaml:"color_cycle"`
	Grid         bool       `yaml:"grid"`
	Background   string     `yaml:"background"`
	Canvas       string     `yaml:"canvas"`
	AxisColor    string     `yaml:"axis_color"`
	Spines       Spines     `yaml:"spines"`
	FigureWidth  int        `yaml:"figure_width"`
	FigureHeight int        `yaml:"figure_height"`
	Save         SaveConfig `yaml:"save"`

	font *truetype.Font
}

// Default returns the house style: Wong color cycle, hidden top/right
// spines, no grid, white background, PNG export at 300 DPI.
func Default() *Sheet {
	return &Sheet{
		FontSize:     12,
		FontColor:    "#222222",
		ColorCycle:   palette.Wong.Hexes(),
		Grid:         false,
		Background:   "#ffffff",
		Canvas:       "#ffffff",
		AxisColor:    "#222222",
		Spines:       Spines{Left: true, Bottom: true},
		FigureWidth:  800,
		FigureHeight: 400,
		Save: SaveConfig{
			Format: "png",
			DPI:    300,
		},
	}
}

// Load reads a style sheet from a YAML file, with file values layered over
// the defaults. An empty path falls back to the PLOTKIT_STYLE environment
// variable, and failing that, to the default sheet. A named file that does
// not exist is an error.
func Load(path string) (*Sheet, error) {
	if path == "" {
		path = os.Getenv(EnvStyle)
	}
	sheet := Default()
	if path == "" {
		return sheet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style sheet %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, sheet); err != nil {
		return nil, fmt.Errorf("style sheet %q: %w", path, err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, fmt.Errorf("style sheet %q: %w", path, err)
	}
	return sheet, nil
}

// Validate checks that the sheet describes a renderable configuration.
func (s *Sheet) Validate() error {
	switch s.Save.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("unsupported save format %q (want png or svg)", s.Save.Format)
	}
	if s.Save.DPI <= 0 {
		return fmt.Errorf("save dpi must be positive, got %v", s.Save.DPI)
	}
	if s.FigureWidth <= 0 || s.FigureHeight <= 0 {
		return fmt.Errorf("figure size must be positive, got %dx%d", s.FigureWidth, s.FigureHeight)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", s.FontSize)
	}
	if len(s.ColorCycle) == 0 {
		return fmt.Errorf("color cycle must not be empty")
	}
	for _, hex := range append([]string{s.FontColor, s.Background, s.Canvas, s.AxisColor}, s.ColorCycle...) {
		if _, err := palette.ParseHex(hex); err != nil {
			return err
		}
	}
	return nil
}

// Font returns the sheet's font, loading it from FontPath on first use, or
// the go-chart default when no path is set.
func (s *Sheet) Font() (*truetype.Font, error) {
	if s.font != nil {
		return s.font, nil
	}
	if s.FontPath == "" {
		f, err := chart.GetDefaultFont()
		if err != nil {
			return nil, fmt.Errorf("default font: %w", err)
		}
		s.font = f
		return f, nil
	}
	data, err := os.ReadFile(s.FontPath)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", s.FontPath, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", s.FontPath, err)
	}
	s.font = f
	return f, nil
}

// Apply configures a chart according to the sheet: figure size, DPI, fonts,
// background and canvas fill, spines, grid, and the series color cycle (the
// sheet doubles as the chart's ColorPalette). It mutates only the chart it
// is given.
func (s *Sheet) Apply(c *chart.Chart) error {
	if err := s.Validate(); err != nil {
		return err
	}
	font, err := s.Font()
	if err != nil {
		return err
	}

	c.Width = s.FigureWidth
	c.Height = s.FigureHeight
	c.DPI = s.Save.DPI
	c.Font = font
	c.ColorPalette = s

	background := s.BackgroundColor()
	canvas := s.CanvasColor()
	if s.Save.Transparent {
		background = drawing.ColorTransparent
		canvas = drawing.ColorTransparent
	}
	c.Background.FillColor = background
	c.Canvas.FillColor = canvas

	axis := chart.Style{
		StrokeColor: s.AxisStrokeColor(),
		StrokeWidth: 1.0,
		FontSize:    s.FontSize,
		FontColor:   s.TextColor(),
		Font:        font,
	}

	c.XAxis.Style = axis
	c.XAxis.Style.Hidden = !s.Spines.Bottom
	c.YAxis.Style = axis
	c.YAxis.Style.Hidden = !s.Spines.Left
	c.YAxisSecondary.Style = axis
	c.YAxisSecondary.Style.Hidden = !s.Spines.Right

	c.TitleStyle.FontColor = s.TextColor()
	c.TitleStyle.FontSize = s.FontSize + 2
	c.TitleStyle.Font = font

	grid := chart.Style{
		Hidden:      !s.Grid,
		StrokeColor: drawing.Color{R: 224, G: 224, B: 224, A: 255},
		StrokeWidth: 1.0,
	}
	c.XAxis.GridMajorStyle = grid
	c.YAxis.GridMajorStyle = grid

	return nil
}

func (s *Sheet) hex(v string) drawing.Color {
	c, err := palette.ParseHex(v)
	if err != nil {
		return drawing.ColorBlack
	}
	return c
}

// The Sheet doubles as a chart.ColorPalette so that series colors follow the
// sheet's color cycle.

func (s *Sheet) BackgroundColor() drawing.Color       { return s.hex(s.Background) }
func (s *Sheet) BackgroundStrokeColor() drawing.Color { return drawing.ColorTransparent }
func (s *Sheet) CanvasColor() drawing.Color           { return s.hex(s.Canvas) }
func (s *Sheet) CanvasStrokeColor() drawing.Color     { return drawing.ColorTransparent }
func (s *Sheet) AxisStrokeColor() drawing.Color       { return s.hex(s.AxisColor) }
func (s *Sheet) TextColor() drawing.Color             { return s.hex(s.FontColor) }

// GetSeriesColor returns the index-th color of the cycle, wrapping around
// when the cycle is exhausted.
func (s *Sheet) GetSeriesColor(index int) drawing.Color {
	if len(s.ColorCycle) == 0 {
		return drawing.ColorBlack
	}
	return s.hex(s.ColorCycle[index%len(s.ColorCycle)])
}
