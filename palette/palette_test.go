package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		colors  []Color
		wantErr bool
	}{
		{
			name:   "two colors",
			colors: []Color{RGB("black", 0, 0, 0), RGB("orange", 230, 159, 0)},
		},
		{
			name:    "no colors",
			colors:  nil,
			wantErr: true,
		},
		{
			name:    "duplicate names",
			colors:  []Color{RGB("black", 0, 0, 0), RGB("black", 1, 1, 1)},
			wantErr: true,
		},
		{
			name:   "unnamed colors get positional names",
			colors: []Color{{Value: drawing.ColorRed}, {Value: drawing.ColorBlue}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New("test", tt.colors...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.colors), p.Len())
		})
	}
}

func TestNewGeneratedNames(t *testing.T) {
	p, err := New("anon", Color{Value: drawing.ColorRed}, Color{Value: drawing.ColorBlue})
	require.NoError(t, err)
	require.Equal(t, []string{"color_1", "color_2"}, p.Names())
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    drawing.Color
		wantErr bool
	}{
		{name: "six digit", hex: "#e69f00", want: drawing.Color{R: 230, G: 159, B: 0, A: 255}},
		{name: "no hash", hex: "e69f00", want: drawing.Color{R: 230, G: 159, B: 0, A: 255}},
		{name: "three digit", hex: "#fff", want: drawing.Color{R: 255, G: 255, B: 255, A: 255}},
		{name: "eight digit with alpha", hex: "#E64B35B2", want: drawing.Color{R: 230, G: 75, B: 53, A: 178}},
		{name: "garbage", hex: "#zzzzzz", wantErr: true},
		{name: "wrong length", hex: "#12345", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c, err := Hex("orange", "#e69f00")
	require.NoError(t, err)
	require.Equal(t, "#e69f00", c.Hex())

	r, g, b := c.RGB()
	require.Equal(t, uint8(230), r)
	require.Equal(t, uint8(159), g)
	require.Equal(t, uint8(0), b)
}

func TestWong(t *testing.T) {
	require.Equal(t, 8, Wong.Len())
	require.Equal(t, []string{
		"black", "orange", "sky blue", "bluish green",
		"yellow", "blue", "vermillion", "reddish purple",
	}, Wong.Names())

	orange, ok := Wong.Lookup("orange")
	require.True(t, ok)
	require.Equal(t, drawing.Color{R: 230, G: 159, B: 0, A: 255}, orange.Value)

	black, ok := Wong.Lookup("black")
	require.True(t, ok)
	require.Equal(t, drawing.Color{R: 0, G: 0, B: 0, A: 255}, black.Value)

	require.Contains(t, Wong.Reference(), "10.1038/nmeth.1618")
}

func TestNPG(t *testing.T) {
	require.Equal(t, 9, NPG.Len())
	red, ok := NPG.Lookup("red")
	require.True(t, ok)
	require.Equal(t, drawing.Color{R: 230, G: 75, B: 53, A: 178}, red.Value)
}

func TestLookupMissing(t *testing.T) {
	_, ok := Wong.Lookup("mauve")
	require.False(t, ok)
}

func TestAccessorsCopy(t *testing.T) {
	colors := Wong.Colors()
	colors[0] = RGB("hijacked", 1, 2, 3)
	require.Equal(t, "black", Wong.At(0).Name)

	hexes := Wong.Hexes()
	hexes[1] = "#000000"
	orange, _ := Wong.Lookup("orange")
	require.Equal(t, "#e69f00", orange.Hex())
}
