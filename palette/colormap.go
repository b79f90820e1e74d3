package palette

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DivergingMidpoint is the default neutral color at the center of a
// diverging colormap.
var DivergingMidpoint = drawing.Color{R: 247, G: 247, B: 247, A: 255}

// Colormap maps a normalized scalar in [0, 1] to a color. Inputs outside the
// interval are clamped. A colormap is immutable once built; sampling it is a
// pure function of its stops, so the interpolation carries no perceptual
// guarantee beyond linear per-channel blending between adjacent stops.
type Colormap struct {
	name   string
	stops  []drawing.Color
	listed bool
}

// Name returns the colormap name.
func (m *Colormap) Name() string { return m.name }

// At samples the colormap at t. t is clamped to [0, 1].
func (m *Colormap) At(t float64) drawing.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	n := len(m.stops)
	if m.listed {
		i := int(t * float64(n))
		if i >= n {
			i = n - 1
		}
		return m.stops[i]
	}
	pos, frac := math.Modf(t * float64(n-1))
	i := int(pos)
	if i >= n-1 {
		return m.stops[n-1]
	}
	return lerp(m.stops[i], m.stops[i+1], frac)
}

// lerp linearly interpolates each sRGB channel, alpha included.
func lerp(a, b drawing.Color, t float64) drawing.Color {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return drawing.Color{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: ch(a.A, b.A),
	}
}

// Sequential builds a single-hue colormap fading from base to end, so that
// At(0) is the base color and At(1) is the endpoint.
func Sequential(base Color, end drawing.Color) *Colormap {
	return &Colormap{
		name:  fmt.Sprintf("%s_sequential", base.Name),
		stops: []drawing.Color{base.Value, end},
	}
}

// Diverging builds a two-hue colormap running low → mid → high, with the
// neutral midpoint at exactly At(0.5). The two halves are independent linear
// interpolations.
func Diverging(low, high Color, mid drawing.Color) *Colormap {
	return &Colormap{
		name:  fmt.Sprintf("%s:%s", low.Name, high.Name),
		stops: []drawing.Color{low.Value, mid, high.Value},
	}
}

// Gradient builds a multi-stop colormap with the given colors evenly spaced
// over [0, 1]. At least two stops are required.
func Gradient(name string, colors ...drawing.Color) (*Colormap, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least 2 stops, got %d", name, len(colors))
	}
	stops := make([]drawing.Color, len(colors))
	copy(stops, colors)
	return &Colormap{name: name, stops: stops}, nil
}

// Listed builds a discrete colormap: [0, 1] is split into len(colors) equal
// bins, each mapping to one color with no interpolation.
func Listed(name string, colors ...drawing.Color) (*Colormap, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("colormap %q: no colors provided", name)
	}
	stops := make([]drawing.Color, len(colors))
	copy(stops, colors)
	return &Colormap{name: name, stops: stops, listed: true}, nil
}

// SequentialColormaps builds one sequential colormap per palette color,
// keyed by color name, each fading from the color to end. An empty palette
// is an error, never a silently empty map.
func (p *Palette) SequentialColormaps(end drawing.Color) (map[string]*Colormap, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette %q: cannot build colormaps from an empty palette", p.name)
	}
	maps := make(map[string]*Colormap, p.Len())
	for _, c := range p.colors {
		maps[c.Name] = Sequential(c, end)
	}
	return maps, nil
}

// SequentialColormapsToWhite is SequentialColormaps with a white endpoint,
// the conventional choice for print figures.
func (p *Palette) SequentialColormapsToWhite() (map[string]*Colormap, error) {
	return p.SequentialColormaps(drawing.ColorWhite)
}

// DivergingColormaps builds a diverging colormap for every unordered pair of
// distinct palette colors, keyed "low:high" in palette order, all meeting at
// mid. Palettes with fewer than two colors are an error.
func (p *Palette) DivergingColormaps(mid drawing.Color) (map[string]*Colormap, error) {
	if p.Len() < 2 {
		return nil, fmt.Errorf("palette %q: diverging colormaps need at least 2 colors, got %d", p.name, p.Len())
	}
	maps := make(map[string]*Colormap)
	for i := 0; i < len(p.colors); i++ {
		for j := i + 1; j < len(p.colors); j++ {
			m := Diverging(p.colors[i], p.colors[j], mid)
			maps[m.Name()] = m
		}
	}
	return maps, nil
}

// Colormap builds a single gradient running through every palette color in
// order. Palettes with fewer than two colors are an error.
func (p *Palette) Colormap() (*Colormap, error) {
	if p.Len() < 2 {
		return nil, fmt.Errorf("palette %q: gradient needs at least 2 colors, got %d", p.name, p.Len())
	}
	return Gradient(p.name, p.Values()...)
}

// ListedColormap builds a discrete colormap over the palette colors in order.
func (p *Palette) ListedColormap() (*Colormap, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette %q: cannot build colormaps from an empty palette", p.name)
	}
	return Listed(p.name, p.Values()...)
}
