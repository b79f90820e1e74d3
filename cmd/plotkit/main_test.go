package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bsslab/plotkit/palette"
	"github.com/bsslab/plotkit/style"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPaletteByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "wong", want: "wong"},
		{name: "npg", want: "npg"},
		{name: "NPG", want: "npg"},
		{name: "", want: "wong"},
		{name: "viridis", wantErr: true},
	}

	for _, tt := range tests {
		p, err := paletteByName(tt.name)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, p.Name())
	}
}

func TestRampColormap(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		pair     string
		wantName string
		wantErr  bool
	}{
		{name: "sequential", color: "orange", wantName: "orange_sequential"},
		{name: "diverging", pair: "blue,vermillion", wantName: "blue:vermillion"},
		{name: "diverging with spaces", pair: "blue, vermillion", wantName: "blue:vermillion"},
		{name: "whole palette gradient", wantName: "wong"},
		{name: "both flags", color: "orange", pair: "blue,vermillion", wantErr: true},
		{name: "unknown color", color: "mauve", wantErr: true},
		{name: "bad pair", pair: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := rampColormap(palette.Wong, tt.color, tt.pair)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantName, cm.Name())
		})
	}
}

func TestAppCommands(t *testing.T) {
	app := newApp(testLogger())
	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	require.ElementsMatch(t, []string{"swatch", "ramp", "export"}, names)
}

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wong.css")
	app := newApp(testLogger())

	err := app.Run([]string{"plotkit", "export", "--format", "css", "--out", out})
	require.NoError(t, err)
	require.FileExists(t, out)
}

func TestSwatchCommand(t *testing.T) {
	t.Setenv(style.EnvStyle, "")
	out := filepath.Join(t.TempDir(), "wong.png")
	app := newApp(testLogger())

	err := app.Run([]string{"plotkit", "swatch", "--out", out})
	require.NoError(t, err)
	require.FileExists(t, out)
}
