// Package shapegen builds interesting non-trivial region.Region shapes for
// demos and tests: mazes and braided cave-like layouts, expressed as a
// []bool occupancy grid and then folded into a region.Region via ToRegion.
//
// The generation algorithm (recursive backtracker plus a topology-aware
// braiding pass) has nothing to do with region algebra itself; it exists so
// the demo binaries have something more visually interesting to feed
// through Union/Intersection/Difference than a handful of hand-placed
// rectangles.
package shapegen

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/region/region"
)

// Cell state in the occupancy grid.
const (
	Blocked = true
	Open    = false
)

// cell is a grid coordinate, distinct from region.Point because it addresses
// this package's occupancy grid rather than the plane a Region describes.
type cell struct{ X, Y int }

// Config controls shape generation. Width and Height are rounded down to
// the nearest odd number, with a minimum of 3, since the backtracker carves passages on odd grid
// lines and needs an odd-sized border to stay in bounds.
type Config struct {
	Width, Height int

	// Braiding is 0.0 for a perfect tree-shaped maze (no cycles) up to 1.0
	// for maximal cycle density. Topology constraints (no 2x2 open plazas,
	// no isolated blocked cells) always take precedence over this knob.
	Braiding float64

	// OpenBorders, if true, carves the grid's outer ring open instead of
	// leaving it blocked, producing a shape with edges touching the bounds
	// of the grid rather than a fully enclosed maze.
	OpenBorders bool

	Seed int64 // 0 selects a time-based seed.
}

// Shape is a generated occupancy grid plus the entry/exit cells and the
// shortest open path between them, as found by the generator.
type Shape struct {
	Grid       [][]bool
	Entry, Exit cell
	Path       []cell
}

// Generate produces a random Shape from cfg.
func Generate(cfg Config) Shape {
	rows := roundToOdd(cfg.Height)
	cols := roundToOdd(cfg.Width)

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = Blocked
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	entryX, entryY := 1, 1
	exitX, exitY := cols-2, rows-2
	if cfg.OpenBorders {
		entryX, entryY = (cols/2)|1, (rows/2)|1
		exitX, exitY = cols-1, (rows/2)|1
	}
	entry := cell{entryX, entryY}
	exit := cell{exitX, exitY}

	carvePassages(grid, entry, rng)

	if cfg.OpenBorders {
		openBorders(grid)
	}
	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}

	if cfg.OpenBorders {
		grid[entry.Y][entry.X] = Open
		grid[exit.Y][exit.X] = Open
	} else {
		forceOpen(grid, entry)
		forceOpen(grid, exit)
	}

	return Shape{
		Grid:  grid,
		Entry: entry,
		Exit:  exit,
		Path:  shortestPath(grid, entry, exit),
	}
}

// ToRegion folds a Shape's occupancy grid into a region.Region covering
// every cell whose value equals want (Open for the walkable area, Blocked
// for the walls themselves). Each row's contiguous runs of matching cells
// become one rectangle, and rows are folded together with region.Union,
// which also handles fusing vertically identical runs into taller bands.
func (s Shape) ToRegion(want bool) region.Region {
	result := region.Empty()
	for y, row := range s.Grid {
		x := 0
		for x < len(row) {
			if row[x] != want {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == want {
				x++
			}
			run := region.FromRect(region.Point{Y: y, X: start}, region.Size{H: 1, W: x - start})
			result = region.Union(result, run)
		}
	}
	return result
}

func carvePassages(grid [][]bool, start cell, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	if start.X <= 0 || start.X >= cols || start.Y <= 0 || start.Y >= rows {
		start = cell{1, 1}
	}

	stack := []cell{start}
	grid[start.Y][start.X] = Open

	dirs := []cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]cell, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Blocked {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		wallX, wallY := curr.X+d.X/2, curr.Y+d.Y/2
		nextX, nextY := curr.X+d.X, curr.Y+d.Y

		grid[wallY][wallX] = Open
		grid[nextY][nextX] = Open
		stack = append(stack, cell{nextX, nextY})
	}
}

// braid removes dead ends probabilistically by opening a wall toward a
// neighboring passage, without ever creating a 2x2 open plaza or isolating
// a blocked cell (checked by canRemove).
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	orth := []cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps := []cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Blocked {
				continue
			}

			exits := 0
			for _, d := range orth {
				if grid[y+d.Y][x+d.X] == Open {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]cell, 0, 4)
			for _, jd := range jumps {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if grid[ny][nx] == Open && grid[wy][wx] == Blocked && canRemove(grid, wx, wy) {
					candidates = append(candidates, cell{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = Open
			}
		}
	}
}

// canRemove reports whether opening grid[y][x] would avoid a 2x2 open
// plaza and avoid isolating any orthogonally adjacent blocked cell.
func canRemove(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])
	isOpen := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return grid[ty][tx] == Open
	}

	switch {
	case isOpen(x-1, y-1) && isOpen(x, y-1) && isOpen(x-1, y):
		return false
	case isOpen(x, y-1) && isOpen(x+1, y-1) && isOpen(x+1, y):
		return false
	case isOpen(x-1, y) && isOpen(x-1, y+1) && isOpen(x, y+1):
		return false
	case isOpen(x+1, y) && isOpen(x, y+1) && isOpen(x+1, y+1):
		return false
	}

	orth := []cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range orth {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] == Open {
			continue
		}
		connections := 0
		for _, d2 := range orth {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && grid[nny][nnx] == Blocked {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}
	return true
}

func openBorders(grid [][]bool) {
	rows, cols := len(grid), len(grid[0])
	for x := 0; x < cols; x++ {
		grid[0][x] = Open
		grid[rows-1][x] = Open
	}
	for y := 0; y < rows; y++ {
		grid[y][0] = Open
		grid[y][cols-1] = Open
	}
}

func roundToOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func forceOpen(grid [][]bool, c cell) {
	rows, cols := len(grid), len(grid[0])
	if c.X < 0 || c.Y < 0 || c.Y >= rows || c.X >= cols {
		return
	}
	grid[c.Y][c.X] = Open

	dirs := []cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		nx, ny := c.X+d.X, c.Y+d.Y
		if nx >= 0 && nx < cols && ny >= 0 && ny < rows && grid[ny][nx] == Open {
			return
		}
	}
	for _, d := range dirs {
		nx, ny := c.X+d.X, c.Y+d.Y
		if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 {
			grid[ny][nx] = Open
			return
		}
	}
}

func shortestPath(grid [][]bool, start, end cell) []cell {
	rows, cols := len(grid), len(grid[0])
	if start.Y >= rows || start.X >= cols || end.Y >= rows || end.X >= cols {
		return nil
	}
	if grid[start.Y][start.X] == Blocked || grid[end.Y][end.X] == Blocked {
		return nil
	}

	queue := []cell{start}
	cameFrom := make(map[cell]cell)
	visited := map[cell]bool{start: true}
	dirs := []cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []cell{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append([]cell{curr}, path...)
			}
			return path
		}

		for _, d := range dirs {
			next := cell{curr.X + d.X, curr.Y + d.Y}
			if next.X < 0 || next.X >= cols || next.Y < 0 || next.Y >= rows {
				continue
			}
			if grid[next.Y][next.X] == Open && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
