// Package config loads and saves the demo binaries' settings as TOML,
// using the project's own hand-rolled toml package rather than an external
// codec: marshal a plain struct, write it, read it back with Unmarshal.
package config

import (
	"fmt"
	"os"

	"github.com/lixenwraith/region/terminal"
	"github.com/lixenwraith/region/toml"
)

// Backend selects which rendering engine a demo binary drives.
type Backend string

const (
	// BackendTcell renders through gdamore/tcell/v2 (cmd/regionview).
	BackendTcell Backend = "tcell"
	// BackendTerminal renders through the project's own raw-mode terminal
	// package (cmd/regiongen).
	BackendTerminal Backend = "terminal"
)

// Shape controls the grid a demo binary generates and displays.
type Shape struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Braiding    float64 `toml:"braiding"`
	OpenBorders bool    `toml:"open_borders"`
	Seed        int64   `toml:"seed"`
}

// Color is an RGB triple stored as plain ints rather than terminal.RGB's
// uint8 fields: the project's toml decoder only converts numeric TOML
// values into the signed integer and float kinds, not into Uint8, so a
// struct field typed uint8 silently stays zero after Unmarshal.
type Color struct {
	R int `toml:"r"`
	G int `toml:"g"`
	B int `toml:"b"`
}

// RGB converts c to the type termview and terminal.Flush expect.
func (c Color) RGB() terminal.RGB {
	return terminal.RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
}

// Palette names the colors a demo binary paints region membership with.
type Palette struct {
	Fill       Color `toml:"fill"`
	Background Color `toml:"background"`
	Path       Color `toml:"path"`
}

// Config is the top-level settings document for both demo binaries.
type Config struct {
	Backend      Backend `toml:"backend"`
	AudioEnabled bool    `toml:"audio_enabled"`
	Shape        Shape   `toml:"shape"`
	Palette      Palette `toml:"palette"`
}

// Default returns the settings a demo binary starts with absent a config
// file on disk.
func Default() Config {
	return Config{
		Backend:      BackendTcell,
		AudioEnabled: true,
		Shape: Shape{
			Width:    61,
			Height:   31,
			Braiding: 0.2,
		},
		Palette: Palette{
			Fill:       Color{R: 0x4a, G: 0xc9, B: 0x6e},
			Background: Color{R: 0x10, G: 0x10, B: 0x18},
			Path:       Color{R: 0xe0, G: 0xc0, B: 0x40},
		},
	}
}

// Load reads and decodes the TOML config at path. A missing file is not an
// error: it returns Default() so a demo binary can run with no config file
// present at all.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save encodes cfg as TOML and writes it to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
