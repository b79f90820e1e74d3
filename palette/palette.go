// Package palette provides colorblind-safe color palettes and continuous
// colormaps for use with go-chart. Palettes are ordered sets of named colors,
// fixed at construction; colormaps are deterministic functions from a
// normalized scalar in [0, 1] to a color.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color is a single named palette entry.
type Color struct {
	Name  string
	Value drawing.Color
}

// RGB builds an opaque named color from 0-255 channel values.
func RGB(name string, r, g, b uint8) Color {
	return Color{Name: name, Value: drawing.Color{R: r, G: g, B: b, A: 255}}
}

// Hex builds a named color from a hex string ("#rrggbb", "#rgb" or
// "#rrggbbaa"; the leading '#' is optional).
func Hex(name, hex string) (Color, error) {
	v, err := ParseHex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", name, err)
	}
	return Color{Name: name, Value: v}, nil
}

// Hex returns the color as "#rrggbb". Alpha, if any, is not encoded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Value.R, c.Value.G, c.Value.B)
}

// RGB returns the 0-255 channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.Value.R, c.Value.G, c.Value.B
}

// ParseHex parses "#rrggbb", "#rgb" or "#rrggbbaa" into a drawing.Color.
func ParseHex(hex string) (drawing.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	switch len(s) {
	case 3:
		// Expand each nibble: #abc -> #aabbcc.
		return drawing.Color{
			R: uint8(v>>8&0xf) * 17,
			G: uint8(v>>4&0xf) * 17,
			B: uint8(v&0xf) * 17,
			A: 255,
		}, nil
	case 6:
		return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		return drawing.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return drawing.Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
}

// Palette is an ordered sequence of uniquely named colors. It is immutable
// after construction; accessors return copies.
type Palette struct {
	name      string
	reference string
	colors    []Color
	index     map[string]int
}

// New builds a palette from one or more named colors. It rejects an empty
// color list and duplicate names.
func New(name string, colors ...Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q: no colors provided", name)
	}
	p := &Palette{
		name:   name,
		colors: make([]Color, len(colors)),
		index:  make(map[string]int, len(colors)),
	}
	copy(p.colors, colors)
	for i, c := range p.colors {
		if c.Name == "" {
			p.colors[i].Name = fmt.Sprintf("color_%d", i+1)
			c = p.colors[i]
		}
		if _, dup := p.index[c.Name]; dup {
			return nil, fmt.Errorf("palette %q: duplicate color name %q", name, c.Name)
		}
		p.index[c.Name] = i
	}
	return p, nil
}

func mustNew(name string, colors ...Color) *Palette {
	p, err := New(name, colors...)
	if err != nil {
		panic(err)
	}
	return p
}

func mustHex(name, hex string) Color {
	c, err := Hex(name, hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// Reference returns the bibliographic citation for the palette, if any.
func (p *Palette) Reference() string { return p.reference }

// Len returns the number of colors in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the i-th color in palette order.
func (p *Palette) At(i int) Color { return p.colors[i] }

// Lookup returns the color with the given name.
func (p *Palette) Lookup(name string) (Color, bool) {
	i, ok := p.index[name]
	if !ok {
		return Color{}, false
	}
	return p.colors[i], true
}

// Names returns the color names in palette order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.colors))
	for i, c := range p.colors {
		names[i] = c.Name
	}
	return names
}

// Colors returns a copy of the colors in palette order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Hexes returns the "#rrggbb" representation of every color in order.
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.Hex()
	}
	return out
}

// Values returns the drawing.Color values in palette order.
func (p *Palette) Values() []drawing.Color {
	out := make([]drawing.Color, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.Value
	}
	return out
}

// Wong is the eight-color colorblind-safe palette from Wong, B.
// "Points of view: Color blindness", Nature Methods 8, 441 (2011),
// doi:10.1038/nmeth.1618. It avoids red/green contrast and remains
// distinguishable under the common color-vision deficiencies.
var Wong = func() *Palette {
	p := mustNew("wong",
		RGB("black", 0, 0, 0),
		RGB("orange", 230, 159, 0),
		RGB("sky blue", 86, 180, 233),
		RGB("bluish green", 0, 158, 115),
		RGB("yellow", 240, 228, 66),
		RGB("blue", 0, 114, 178),
		RGB("vermillion", 213, 94, 0),
		RGB("reddish purple", 204, 121, 167),
	)
	p.reference = "Wong, B. Points of view: Color blindness. Nature Methods 8, 441 (2011). doi:10.1038/nmeth.1618"
	return p
}()

// NPG is the nine-color Nature Publishing Group palette from the ggsci
// collection (Xiao, N., 2018, https://CRAN.R-project.org/package=ggsci).
// The colors carry a 70% alpha, matching the published values.
var NPG = func() *Palette {
	p := mustNew("npg",
		mustHex("red", "#E64B35B2"),
		mustHex("blue", "#4DBBD5B2"),
		mustHex("green", "#00A087B2"),
		mustHex("dark blue", "#3C5488B2"),
		mustHex("peach", "#F39B7FB2"),
		mustHex("lavender", "#8491B4B2"),
		mustHex("teal", "#91D1C2B2"),
		mustHex("crimson", "#DC0000B2"),
		mustHex("brown", "#7E6148B2"),
	)
	p.reference = "Xiao, N. ggsci: Scientific Journal and Sci-Fi Themed Color Palettes for ggplot2 (2018). https://CRAN.R-project.org/package=ggsci"
	return p
}()
