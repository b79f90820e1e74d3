package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Entry is the serialized form of one palette color.
type Entry struct {
	Name string   `json:"name" yaml:"name"`
	Hex  string   `json:"hex" yaml:"hex"`
	RGB  [3]uint8 `json:"rgb" yaml:"rgb,flow"`
}

// Entries returns the palette colors in serialized form, in palette order.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, len(p.colors))
	for i, c := range p.colors {
		r, g, b := c.RGB()
		entries[i] = Entry{Name: c.Name, Hex: c.Hex(), RGB: [3]uint8{r, g, b}}
	}
	return entries
}

// JSON returns the palette as an indented JSON array, in palette order.
func (p *Palette) JSON() ([]byte, error) {
	return json.MarshalIndent(p.Entries(), "", "  ")
}

// YAML returns the palette as a YAML document, in palette order.
func (p *Palette) YAML() ([]byte, error) {
	return yaml.Marshal(p.Entries())
}

// CSS returns the palette as CSS custom properties on :root. Color names are
// lowercased with spaces replaced by hyphens.
func (p *Palette) CSS() string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, c := range p.colors {
		prop := strings.ReplaceAll(strings.ToLower(c.Name), " ", "-")
		fmt.Fprintf(&sb, "  --%s: %s;\n", prop, c.Hex())
	}
	sb.WriteString("}\n")
	return sb.String()
}

// WriteXLSX writes the palette to an Excel workbook at path: one row per
// color with its name, hex code, channel values, and a swatch cell filled
// with the color.
func (p *Palette) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Palette"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx export: %w", err)
	}
	header := []any{"Name", "Hex", "R", "G", "B", "Swatch"}
	for col, v := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}

	for i, c := range p.colors {
		row := i + 2
		r, g, b := c.RGB()
		values := []any{c.Name, c.Hex(), int(r), int(g), int(b)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx export: %w", err)
			}
		}

		fill := strings.TrimPrefix(c.Hex(), "#")
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		})
		if err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
		swatch, _ := excelize.CoordinatesToCellName(6, row)
		if err := f.SetCellStyle(sheet, swatch, swatch, styleID); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx export: %w", err)
	}
	return nil
}
