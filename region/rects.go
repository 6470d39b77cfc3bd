package region

import "iter"

// Rects returns an iterator over the region's decomposition into disjoint
// maximal rectangles, one per wall pair per band, in band order and then
// left-to-right within a band. Every call yields a fresh, independent walk
// of r's bands: the iterator is lazy and restartable, and stopping early
// (a range loop's break) is safe.
//
// The rectangles are pairwise disjoint but not merged across band
// boundaries even when doing so would still yield an axis-aligned
// rectangle; spec.md leaves cross-band merging as future work, not a
// correctness requirement.
func (r Region) Rects() iter.Seq2[Point, Size] {
	return func(yield func(Point, Size) bool) {
		for _, b := range r.bands {
			h := b.Y2 - b.Y1
			for k := 0; k+1 < len(b.Walls); k += 2 {
				x1, x2 := b.Walls[k], b.Walls[k+1]
				pos := Point{Y: b.Y1, X: x1}
				size := Size{H: h, W: x2 - x1}
				if !yield(pos, size) {
					return
				}
			}
		}
	}
}
