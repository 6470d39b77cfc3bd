// Command regiongen is a batch/interactive CLI for the region algebra
// package: it prompts for a shape and an operator on the standard terminal,
// then switches into raw mode to paint the combined region with the
// project's own terminal and termview packages.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/region/region"
	"github.com/lixenwraith/region/config"
	"github.com/lixenwraith/region/shapegen"
	"github.com/lixenwraith/region/terminal"
	"github.com/lixenwraith/region/termview"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== REGION ALGEBRA GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width (default %d): ", cfg.Shape.Width), cfg.Shape.Width)
		h := getInt(reader, fmt.Sprintf("Height (default %d): ", cfg.Shape.Height), cfg.Shape.Height)
		braid := getFloat(reader, fmt.Sprintf("Braiding [0.0-1.0] (default %.2f): ", cfg.Shape.Braiding), cfg.Shape.Braiding)
		op := getOp(reader, region.OpDifference)

		shape := shapegen.Generate(shapegen.Config{
			Width:    w,
			Height:   h,
			Braiding: braid,
		})
		a := shape.ToRegion(shapegen.Open)

		pos, size, ok := a.Bounds()
		if !ok {
			fmt.Println("generated shape was empty, try again")
			continue
		}
		b := region.FromRect(
			region.Point{Y: pos.Y + size.H/4, X: pos.X + size.W/4},
			region.Size{H: size.H / 2, W: size.W / 2},
		)

		result := combine(a, b, op)
		fmt.Printf("\nGenerated %dx%d shape: %d rectangles before, %d after %s\n",
			w, h, a.RectCount(), result.RectCount(), opLabel(op))

		if err := render(cfg, a, result); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// render draws base (dim) and result (bright) into a raw-mode terminal
// screen and waits for a keypress before returning to line mode.
func render(cfg config.Config, base, result region.Region) error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	w, h := term.Size()
	cells := make([]terminal.Cell, w*h)
	root := termview.NewRegion(cells, w, 0, 0, w, h)
	root.Fill(cfg.Palette.Background.RGB())

	dim := terminal.RGB{R: cfg.Palette.Background.R + 30, G: cfg.Palette.Background.G + 30, B: cfg.Palette.Background.B + 30}
	termview.PaintRegion(root, base, dim, cfg.Palette.Background.RGB(), terminal.AttrNone)
	termview.PaintRegion(root, result, cfg.Palette.Fill.RGB(), cfg.Palette.Background.RGB(), terminal.AttrBold)

	coverage := termview.RegionCoverage(result, base)
	status := root.Sub(0, h-1, w, 1)
	status.Fill(cfg.Palette.Background.RGB())
	status.Text(0, 0, "coverage "+coverage.String()+"  |  press any key to continue", cfg.Palette.Path.RGB(), cfg.Palette.Background.RGB(), terminal.AttrNone)

	term.Flush(cells, w, h)
	term.PollEvent()
	return nil
}

func combine(a, b region.Region, op region.Op) region.Region {
	switch op {
	case region.OpUnion:
		return region.Union(a, b)
	case region.OpIntersection:
		return region.Intersection(a, b)
	case region.OpDifference:
		return region.Difference(a, b)
	case region.OpSymmetricDifference:
		return region.SymmetricDifference(a, b)
	default:
		return region.Empty()
	}
}

func opLabel(op region.Op) string {
	switch op {
	case region.OpUnion:
		return "union"
	case region.OpIntersection:
		return "intersection"
	case region.OpDifference:
		return "difference"
	case region.OpSymmetricDifference:
		return "symmetric difference"
	default:
		return "unknown"
	}
}

func getOp(r *bufio.Reader, def region.Op) region.Op {
	fmt.Print("Operator [u]nion/[i]ntersection/[d]ifference/[x]or (default d): ")
	s, _ := r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u":
		return region.OpUnion
	case "i":
		return region.OpIntersection
	case "d":
		return region.OpDifference
	case "x":
		return region.OpSymmetricDifference
	default:
		return def
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

func configPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "regiongen.toml"
}
