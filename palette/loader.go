package palette

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Scientific colormap tables (Crameri, F., Shephard, G.E. & Heron, P.J.
// "The misuse of colour in science communication", Nature Communications 11,
// 5444 (2020)) are distributed as plain text files with one row per stop,
// three whitespace-separated floats in [0, 1].

// discreteVariant matches the reduced 10/25/50-level and HEX variants that
// ship alongside the full-resolution tables.
var discreteVariant = regexp.MustCompile(`(10|25|50|HEX)`)

// ParseColormapTable reads a scientific colormap table and builds a gradient
// colormap with the given name. Blank lines are skipped; a malformed row is
// an error naming the line.
func ParseColormapTable(name string, r io.Reader) (*Colormap, error) {
	var colors []drawing.Color
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("colormap %q line %d: expected 3 values, got %d", name, line, len(fields))
		}
		var ch [3]uint8
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || v < 0 || v > 1 {
				return nil, fmt.Errorf("colormap %q line %d: invalid channel value %q", name, line, field)
			}
			ch[i] = uint8(v*255 + 0.5)
		}
		colors = append(colors, drawing.Color{R: ch[0], G: ch[1], B: ch[2], A: 255})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("colormap %q: %w", name, err)
	}
	return Gradient(name, colors...)
}

// LoadColormapFile reads one colormap table from fsys. The colormap is named
// after the file stem.
func LoadColormapFile(fsys fs.FS, name string) (*Colormap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))
	return ParseColormapTable(stem, f)
}

// LoadColormapDir loads every full-resolution .txt colormap table directly
// under dir, keyed by file stem. Reduced discrete variants (10/25/50-level
// and HEX files) are skipped.
func LoadColormapDir(fsys fs.FS, dir string) (map[string]*Colormap, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	maps := make(map[string]*Colormap)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" || discreteVariant.MatchString(entry.Name()) {
			continue
		}
		m, err := LoadColormapFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		maps[m.Name()] = m
	}
	return maps, nil
}
