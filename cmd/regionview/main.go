// Command regionview is an interactive tcell viewer for the region algebra
// package: it generates one shapegen shape, lets the user move a rectangle
// over it, and displays Union/Intersection/Difference/SymmetricDifference of
// the pair live.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/region/region"
	"github.com/lixenwraith/region/config"
	"github.com/lixenwraith/region/shapegen"
	"github.com/lixenwraith/region/terminal"
)

const opSwitchToneHz = 880

// opName pairs a region.Op with the key that selects it and a label for
// the status bar.
type opName struct {
	op    region.Op
	key   rune
	label string
}

var opChoices = []opName{
	{region.OpUnion, 'u', "UNION"},
	{region.OpIntersection, 'i', "INTERSECTION"},
	{region.OpDifference, 'd', "DIFFERENCE (A-B)"},
	{region.OpSymmetricDifference, 'x', "SYMMETRIC DIFFERENCE"},
}

// Game holds the running viewer's state: the two source shapes, which
// operator combines them, and the movable operand's offset.
type Game struct {
	screen tcell.Screen
	cfg    config.Config

	width, height int

	base    region.Region // shapegen output, fixed
	overlay region.Region // a rectangle the operator can move
	overlayX, overlayY int
	overlayW, overlayH int

	op opName

	audioInit bool
}

func NewGame(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()

	shape := shapegen.Generate(shapegen.Config{
		Width:    w,
		Height:   h,
		Braiding: cfg.Shape.Braiding,
		Seed:     cfg.Shape.Seed,
	})

	g := &Game{
		screen:   screen,
		cfg:      cfg,
		width:    w,
		height:   h,
		base:     shape.ToRegion(shapegen.Open),
		overlayW: w / 4,
		overlayH: h / 3,
		op:       opChoices[0],
	}
	g.overlayX = w / 2
	g.overlayY = h / 2
	g.overlay = region.FromRect(region.Point{Y: g.overlayY, X: g.overlayX}, region.Size{H: g.overlayH, W: g.overlayW})

	if cfg.AudioEnabled {
		if err := g.initAudio(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}

	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playOpSwitchTone() {
	if !g.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, opSwitchToneHz)
	speaker.Play(beep.Take(duration, sine))
}

func (g *Game) moveOverlay(dx, dy int) {
	g.overlayX += dx
	g.overlayY += dy
	g.overlay = region.FromRect(region.Point{Y: g.overlayY, X: g.overlayX}, region.Size{H: g.overlayH, W: g.overlayW})
}

func (g *Game) handleResize() {
	g.width, g.height = g.screen.Size()
	g.screen.Sync()
}

// handleInput reports whether the game should keep running.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyUp:
			g.moveOverlay(0, -1)
		case ev.Key() == tcell.KeyDown:
			g.moveOverlay(0, 1)
		case ev.Key() == tcell.KeyLeft:
			g.moveOverlay(-1, 0)
		case ev.Key() == tcell.KeyRight:
			g.moveOverlay(1, 0)
		case ev.Key() == tcell.KeyRune:
			for _, choice := range opChoices {
				if ev.Rune() == choice.key {
					g.op = choice
					g.playOpSwitchTone()
					break
				}
			}
		}
	case *tcell.EventResize:
		g.handleResize()
	}
	return true
}

func (g *Game) draw() {
	g.screen.Clear()

	fillStyle := tcell.StyleDefault.Foreground(rgbToTcell(g.cfg.Palette.Fill.RGB()))
	pathStyle := tcell.StyleDefault.Foreground(rgbToTcell(g.cfg.Palette.Path.RGB())).Reverse(true)

	result := combine(g.base, g.overlay, g.op.op)
	for pos, size := range result.Rects() {
		for y := pos.Y; y < pos.Y+size.H; y++ {
			for x := pos.X; x < pos.X+size.W; x++ {
				if x < 0 || y < 0 || x >= g.width || y >= g.height-1 {
					continue
				}
				g.screen.SetContent(x, y, '█', nil, fillStyle)
			}
		}
	}

	// Outline the movable operand so its current position reads clearly
	// regardless of what the combined result shows there.
	for x := g.overlayX; x < g.overlayX+g.overlayW; x++ {
		g.setOutline(x, g.overlayY, pathStyle)
		g.setOutline(x, g.overlayY+g.overlayH-1, pathStyle)
	}
	for y := g.overlayY; y < g.overlayY+g.overlayH; y++ {
		g.setOutline(g.overlayX, y, pathStyle)
		g.setOutline(g.overlayX+g.overlayW-1, y, pathStyle)
	}

	status := fmt.Sprintf(" %s  |  rects=%d  |  u/i/d/x: operator  arrows: move B  q: quit ", g.op.label, result.RectCount())
	for i, ch := range status {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, g.height-1, ch, nil, tcell.StyleDefault.Reverse(true))
	}

	g.screen.Show()
}

func (g *Game) setOutline(x, y int, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height-1 {
		return
	}
	g.screen.SetContent(x, y, '░', nil, style)
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

func rgbToTcell(rgb terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

func (g *Game) run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	rand.Seed(time.Now().UnixNano())

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}

func configPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "regionview.toml"
}
