package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bsslab/plotkit/palette"
	"github.com/bsslab/plotkit/style"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestChart() *chart.Chart {
	return &chart.Chart{
		Width:  400,
		Height: 300,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{1, 2, 3},
				YValues: []float64{1, 4, 9},
			},
		},
	}
}

func TestSavePNG(t *testing.T) {
	sheet := style.Default()
	c := newTestChart()

	var buf bytes.Buffer
	require.NoError(t, Save(c, &buf, sheet))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature), "output is not a PNG")
	require.Equal(t, sheet.Save.DPI, c.DPI)
}

func TestSaveSVG(t *testing.T) {
	sheet := style.Default()
	sheet.Save.Format = "svg"

	var buf bytes.Buffer
	require.NoError(t, Save(newTestChart(), &buf, sheet))
	require.Contains(t, buf.String(), "<svg")
}

func TestSaveUnsupportedFormat(t *testing.T) {
	sheet := style.Default()
	sheet.Save.Format = "pdf"

	err := Save(newTestChart(), &bytes.Buffer{}, sheet)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pdf")
}

func TestSaveNilSheetUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(newTestChart(), &buf, nil))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestSaveTransparent(t *testing.T) {
	sheet := style.Default()
	sheet.Save.Transparent = true
	c := newTestChart()

	var buf bytes.Buffer
	require.NoError(t, Save(c, &buf, sheet))
	require.Equal(t, drawing.ColorTransparent, c.Background.FillColor)
	require.Equal(t, drawing.ColorTransparent, c.Canvas.FillColor)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.png")
	require.NoError(t, SaveFile(newTestChart(), path, style.Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngSignature))
}

func TestSwatch(t *testing.T) {
	c, err := Swatch(palette.Wong, style.Default())
	require.NoError(t, err)
	require.Equal(t, "wong", c.Title)

	var buf bytes.Buffer
	require.NoError(t, Save(c, &buf, style.Default()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestSwatchEmptyPalette(t *testing.T) {
	_, err := Swatch(nil, style.Default())
	require.Error(t, err)

	var empty palette.Palette
	_, err = Swatch(&empty, style.Default())
	require.Error(t, err)
}

func TestRamp(t *testing.T) {
	orange, ok := palette.Wong.Lookup("orange")
	require.True(t, ok)
	cm := palette.Sequential(orange, drawing.ColorWhite)

	c, err := Ramp(cm, style.Default())
	require.NoError(t, err)
	require.Equal(t, "orange_sequential", c.Title)

	var buf bytes.Buffer
	require.NoError(t, Save(c, &buf, style.Default()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestRampNilColormap(t *testing.T) {
	_, err := Ramp(nil, style.Default())
	require.Error(t, err)
}
