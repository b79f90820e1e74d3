package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bsslab/plotkit/palette"
	"github.com/bsslab/plotkit/render"
	"github.com/bsslab/plotkit/style"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := newApp(logger)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(logger *slog.Logger) *cli.App {
	styleFlag := &cli.StringFlag{
		Name:  "style",
		Usage: "path to a YAML style sheet (defaults to the house style)",
	}
	paletteFlag := &cli.StringFlag{
		Name:  "palette",
		Value: "wong",
		Usage: "palette name (wong or npg)",
	}

	return &cli.App{
		Name:  "plotkit",
		Usage: "colorblind-safe palettes, colormaps and figure styles",
		Commands: []*cli.Command{
			{
				Name:  "swatch",
				Usage: "render a palette swatch image",
				Flags: []cli.Flag{
					styleFlag,
					paletteFlag,
					&cli.StringFlag{Name: "out", Value: "palette.png", Usage: "output file"},
				},
				Action: func(c *cli.Context) error {
					sheet, err := style.Load(c.String("style"))
					if err != nil {
						return err
					}
					p, err := paletteByName(c.String("palette"))
					if err != nil {
						return err
					}
					swatch, err := render.Swatch(p, sheet)
					if err != nil {
						return err
					}
					out := c.String("out")
					if err := render.SaveFile(swatch, out, sheet); err != nil {
						return err
					}
					logger.Info("wrote swatch", "palette", p.Name(), "out", out)
					return nil
				},
			},
			{
				Name:  "ramp",
				Usage: "render a colormap ramp preview",
				Flags: []cli.Flag{
					styleFlag,
					paletteFlag,
					&cli.StringFlag{Name: "color", Usage: "palette color for a sequential ramp to white"},
					&cli.StringFlag{Name: "pair", Usage: "two palette colors \"low,high\" for a diverging ramp"},
					&cli.StringFlag{Name: "out", Value: "ramp.png", Usage: "output file"},
				},
				Action: func(c *cli.Context) error {
					sheet, err := style.Load(c.String("style"))
					if err != nil {
						return err
					}
					p, err := paletteByName(c.String("palette"))
					if err != nil {
						return err
					}
					cm, err := rampColormap(p, c.String("color"), c.String("pair"))
					if err != nil {
						return err
					}
					ramp, err := render.Ramp(cm, sheet)
					if err != nil {
						return err
					}
					out := c.String("out")
					if err := render.SaveFile(ramp, out, sheet); err != nil {
						return err
					}
					logger.Info("wrote ramp", "colormap", cm.Name(), "out", out)
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "export a palette as json, yaml, css or xlsx",
				Flags: []cli.Flag{
					paletteFlag,
					&cli.StringFlag{Name: "format", Value: "json", Usage: "json, yaml, css or xlsx"},
					&cli.StringFlag{Name: "out", Usage: "output file (stdout for text formats if empty)"},
				},
				Action: func(c *cli.Context) error {
					p, err := paletteByName(c.String("palette"))
					if err != nil {
						return err
					}
					return exportPalette(p, c.String("format"), c.String("out"))
				},
			},
		},
	}
}

func paletteByName(name string) (*palette.Palette, error) {
	switch strings.ToLower(name) {
	case "wong", "":
		return palette.Wong, nil
	case "npg":
		return palette.NPG, nil
	default:
		return nil, fmt.Errorf("unknown palette %q (want wong or npg)", name)
	}
}

func rampColormap(p *palette.Palette, color, pair string) (*palette.Colormap, error) {
	switch {
	case color != "" && pair != "":
		return nil, fmt.Errorf("use either --color or --pair, not both")
	case color != "":
		c, ok := p.Lookup(color)
		if !ok {
			return nil, fmt.Errorf("palette %q has no color %q", p.Name(), color)
		}
		return palette.Sequential(c, drawing.ColorWhite), nil
	case pair != "":
		names := strings.Split(pair, ",")
		if len(names) != 2 {
			return nil, fmt.Errorf("--pair wants two comma-separated color names, got %q", pair)
		}
		low, ok := p.Lookup(strings.TrimSpace(names[0]))
		if !ok {
			return nil, fmt.Errorf("palette %q has no color %q", p.Name(), names[0])
		}
		high, ok := p.Lookup(strings.TrimSpace(names[1]))
		if !ok {
			return nil, fmt.Errorf("palette %q has no color %q", p.Name(), names[1])
		}
		return palette.Diverging(low, high, palette.DivergingMidpoint), nil
	default:
		return p.Colormap()
	}
}

func exportPalette(p *palette.Palette, format, out string) error {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case "json":
		data, err = p.JSON()
	case "yaml":
		data, err = p.YAML()
	case "css":
		data = []byte(p.CSS())
	case "xlsx":
		if out == "" {
			out = p.Name() + ".xlsx"
		}
		return p.WriteXLSX(out)
	default:
		return fmt.Errorf("unknown export format %q (want json, yaml, css or xlsx)", format)
	}
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
