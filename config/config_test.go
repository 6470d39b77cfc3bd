package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("Load() on missing file = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	want := Config{
		Backend:      BackendTerminal,
		AudioEnabled: false,
		Shape: Shape{
			Width:       41,
			Height:      21,
			Braiding:    0.6,
			OpenBorders: true,
			Seed:        1234,
		},
		Palette: Palette{
			Fill:       Color{R: 10, G: 20, B: 30},
			Background: Color{R: 1, G: 2, B: 3},
			Path:       Color{R: 200, G: 100, B: 50},
		},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot=%+v\nwant=%+v", got, want)
	}
}

func TestColorRGBConversion(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0}
	rgb := c.RGB()
	if rgb.R != 255 || rgb.G != 128 || rgb.B != 0 {
		t.Errorf("RGB() = %+v, want {255 128 0}", rgb)
	}
}
