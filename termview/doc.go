// Package termview provides an immediate-mode cell-buffer canvas used by the
// demo binaries to paint the rectangles a region.Region enumerates.
//
// Core abstraction is Region, a small value type addressing a rectangular
// area within a shared []terminal.Cell buffer. Nothing in this package knows
// about the band/wall representation in the region package; it only ever
// receives the (Point, Size) pairs region.Region.Rects yields and fills the
// corresponding cells.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := termview.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bgColor)
//
//	for pt, sz := range shape.Rects() {
//	    root.Sub(pt.X, pt.Y, sz.W, sz.H).Fill(fg)
//	}
//
//	term.Flush(cells, w, h)
package termview
