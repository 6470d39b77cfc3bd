// Package region implements a planar region algebra over axis-aligned
// integer rectangles. A Region is a finite union of disjoint rectangles,
// stored in a canonical band/wall form: an ordered list of y-disjoint
// horizontal bands, each carrying a strictly increasing list of x-coordinate
// "walls" marking where the region's membership toggles along that band.
//
// Every operation in this package returns the canonical form: no band is
// empty, no two vertically-adjacent bands carry identical walls, and no
// wall vector contains a redundant split. Two regions that denote the same
// set of points are therefore always structurally equal (see Equal), and
// repeated operations never let the representation bloat.
//
// Region values are exclusively owned: every operation reads its operands
// and returns a freshly built result, never mutating or sharing storage
// with its inputs.
package region

// Region is an ordered, y-sorted, y-disjoint, canonical list of bands.
// The zero value is the empty region.
type Region struct {
	bands []band
}

// Empty returns a region containing no points.
func Empty() Region {
	return Region{}
}

// FromRect returns the region covering the rectangle at pos with the given
// size. A non-positive height or width yields the empty region.
func FromRect(pos Point, size Size) Region {
	if size.H <= 0 || size.W <= 0 {
		return Empty()
	}
	return Region{
		bands: []band{{
			Y1:    pos.Y,
			Y2:    pos.Y + size.H,
			Walls: []int{pos.X, pos.X + size.W},
		}},
	}
}

// IsNonEmpty reports whether the region contains at least one point.
func (r Region) IsNonEmpty() bool {
	return len(r.bands) > 0
}

// RectCount returns the number of maximal wall-pairs across all bands, i.e.
// the number of rectangles Rects would enumerate. O(bands).
func (r Region) RectCount() int {
	n := 0
	for _, b := range r.bands {
		n += len(b.Walls) / 2
	}
	return n
}

// Bounds returns the smallest rectangle enclosing every band and wall in the
// region. The third return value is false for an empty region, in which
// case pos and size are the zero value.
func (r Region) Bounds() (pos Point, size Size, ok bool) {
	if len(r.bands) == 0 {
		return Point{}, Size{}, false
	}
	minY := r.bands[0].Y1
	maxY := r.bands[len(r.bands)-1].Y2
	minX := r.bands[0].Walls[0]
	maxX := r.bands[0].Walls[len(r.bands[0].Walls)-1]
	for _, b := range r.bands[1:] {
		if x := b.Walls[0]; x < minX {
			minX = x
		}
		if x := b.Walls[len(b.Walls)-1]; x > maxX {
			maxX = x
		}
	}
	return Point{Y: minY, X: minX}, Size{H: maxY - minY, W: maxX - minX}, true
}

// Equal reports whether a and b have identical canonical representations.
// Because every operation in this package normalizes to canonical form,
// this is equivalent to the two regions denoting the same set of points
// (spec.md's "canonical equality" law).
func Equal(a, b Region) bool {
	if len(a.bands) != len(b.bands) {
		return false
	}
	for i := range a.bands {
		ba, bb := a.bands[i], b.bands[i]
		if ba.Y1 != bb.Y1 || ba.Y2 != bb.Y2 || !wallsEqual(ba.Walls, bb.Walls) {
			return false
		}
	}
	return true
}

// appendBand appends b to the region under construction, applying the
// canonicalization rule from spec.md's "Per-band merge": an empty band is
// dropped, and a band vertically adjacent to and wall-identical with the
// last appended band is fused into it rather than kept separate. This is
// the sole mechanism that keeps the result canonical; it runs on every
// emission rather than as a deferred post-pass. The scanline driver does not
// read the appended bands: it tracks its own progress in an explicit variable.
func (r *Region) appendBand(b band) {
	if len(b.Walls) == 0 {
		return
	}
	if n := len(r.bands); n > 0 {
		prev := &r.bands[n-1]
		if prev.Y2 == b.Y1 && wallsEqual(prev.Walls, b.Walls) {
			prev.Y2 = b.Y2
			return
		}
	}
	if r.bands == nil {
		r.bands = make([]band, 0, initialBandCap)
	}
	r.bands = append(r.bands, b)
}
