package termview

import (
	"github.com/lixenwraith/region/region"
	"github.com/lixenwraith/region/terminal"
)

// PaintRegion fills every cell dst addresses that falls inside shape with
// fg/bg, leaving cells outside shape untouched. It walks shape.Rects()
// rather than testing dst.Contains cell-by-cell, so cost is proportional to
// shape's rectangle count, not to dst's area.
func PaintRegion(dst Region, shape region.Region, fg, bg terminal.RGB, attr terminal.Attr) {
	for pos, size := range shape.Rects() {
		for y := pos.Y; y < pos.Y+size.H; y++ {
			for x := pos.X; x < pos.X+size.W; x++ {
				dst.Cell(x, y, ' ', fg, bg, attr)
			}
		}
	}
}

// RegionCoverage summarizes shape's occupancy of bounds as a Coverage
// value, counting cells rather than rectangles so it reads as "how full"
// the area is regardless of how fragmented shape's decomposition happens
// to be.
func RegionCoverage(shape, bounds region.Region) Coverage {
	return Coverage{
		Count: cellArea(region.Intersection(shape, bounds)),
		Total: cellArea(bounds),
	}
}

func cellArea(r region.Region) int {
	area := 0
	for _, size := range r.Rects() {
		area += size.H * size.W
	}
	return area
}
