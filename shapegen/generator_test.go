package shapegen

import (
	"testing"

	"github.com/lixenwraith/region/region"
)

func TestGenerateRoundsToOdd(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantH, wantW int
	}{
		{"already odd", Config{Width: 9, Height: 7, Seed: 1}, 7, 9},
		{"even rounds down", Config{Width: 10, Height: 8, Seed: 1}, 7, 9},
		{"tiny clamps to 3", Config{Width: 1, Height: 1, Seed: 1}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Generate(tt.cfg)
			if len(s.Grid) != tt.wantH {
				t.Errorf("grid height = %d, want %d", len(s.Grid), tt.wantH)
			}
			if len(s.Grid[0]) != tt.wantW {
				t.Errorf("grid width = %d, want %d", len(s.Grid[0]), tt.wantW)
			}
		})
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	cfg := Config{Width: 21, Height: 15, Braiding: 0.3, Seed: 42}
	a := Generate(cfg)
	b := Generate(cfg)

	for y := range a.Grid {
		for x := range a.Grid[y] {
			if a.Grid[y][x] != b.Grid[y][x] {
				t.Fatalf("same seed produced different grids at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateEntryAndExitAreOpen(t *testing.T) {
	s := Generate(Config{Width: 25, Height: 25, Braiding: 0.5, Seed: 7})
	if s.Grid[s.Entry.Y][s.Entry.X] != Open {
		t.Error("entry cell is not open")
	}
	if s.Grid[s.Exit.Y][s.Exit.X] != Open {
		t.Error("exit cell is not open")
	}
}

func TestGeneratePathConnectsEntryToExit(t *testing.T) {
	s := Generate(Config{Width: 25, Height: 25, Braiding: 0.2, Seed: 3})
	if len(s.Path) == 0 {
		t.Fatal("no path found between entry and exit")
	}
	if s.Path[0] != s.Entry {
		t.Errorf("path starts at %+v, want entry %+v", s.Path[0], s.Entry)
	}
	if last := s.Path[len(s.Path)-1]; last != s.Exit {
		t.Errorf("path ends at %+v, want exit %+v", last, s.Exit)
	}
	for i := 1; i < len(s.Path); i++ {
		dx := s.Path[i].X - s.Path[i-1].X
		dy := s.Path[i].Y - s.Path[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("path step %d is not orthogonally adjacent: %+v -> %+v", i, s.Path[i-1], s.Path[i])
		}
	}
}

func TestOpenBordersCarvesOuterRing(t *testing.T) {
	s := Generate(Config{Width: 15, Height: 15, OpenBorders: true, Seed: 5})
	rows, cols := len(s.Grid), len(s.Grid[0])
	for x := 0; x < cols; x++ {
		if s.Grid[0][x] != Open || s.Grid[rows-1][x] != Open {
			t.Fatalf("top/bottom border not fully open at x=%d", x)
		}
	}
	for y := 0; y < rows; y++ {
		if s.Grid[y][0] != Open || s.Grid[y][cols-1] != Open {
			t.Fatalf("left/right border not fully open at y=%d", y)
		}
	}
}

func TestToRegionCoversExactlyOpenCells(t *testing.T) {
	s := Generate(Config{Width: 17, Height: 13, Braiding: 0.4, Seed: 11})
	r := s.ToRegion(Open)

	for y, row := range s.Grid {
		for x, cellState := range row {
			want := cellState == Open
			if got := r.Contains(region.Point{Y: y, X: x}); got != want {
				t.Errorf("Contains((%d,%d)) = %v, want %v (grid cell open=%v)", y, x, got, want, cellState)
			}
		}
	}
}

func TestToRegionOpenAndBlockedPartitionTheGrid(t *testing.T) {
	s := Generate(Config{Width: 15, Height: 15, Braiding: 0.5, Seed: 99})
	open := s.ToRegion(Open)
	blocked := s.ToRegion(Blocked)

	if region.Intersection(open, blocked).IsNonEmpty() {
		t.Error("open and blocked regions overlap")
	}
	whole := region.FromRect(region.Point{Y: 0, X: 0}, region.Size{H: len(s.Grid), W: len(s.Grid[0])})
	if !region.Equal(region.Union(open, blocked), whole) {
		t.Error("open ∪ blocked does not cover the full grid")
	}
}
