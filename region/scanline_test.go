package region

import "testing"

// TestScanlineSplitsWiderBand checks that when one operand has a single tall
// band and the other has several shorter bands spanning the same y-range,
// the result has a band boundary at every breakpoint from either side.
func TestScanlineSplitsWiderBand(t *testing.T) {
	tall := FromRect(Point{Y: 0, X: 0}, Size{H: 6, W: 4})
	stacked := Union(
		FromRect(Point{Y: 0, X: 2}, Size{H: 2, W: 4}),
		FromRect(Point{Y: 4, X: 2}, Size{H: 2, W: 4}),
	)

	got := Union(tall, stacked)

	want := Region{
		bands: []band{
			{Y1: 0, Y2: 2, Walls: []int{0, 6}},
			{Y1: 2, Y2: 4, Walls: []int{0, 4}},
			{Y1: 4, Y2: 6, Walls: []int{0, 6}},
		},
	}

	if !Equal(got, want) {
		t.Errorf("scanline split mismatch:\ngot=%s\nwant=%s", got.DebugString(), want.DebugString())
	}
}

// TestScanlineNonOverlappingYRanges checks that bands from operands whose
// y-ranges never overlap pass through untouched and in y-order.
func TestScanlineNonOverlappingYRanges(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})
	b := FromRect(Point{Y: 10, X: 0}, Size{H: 2, W: 2})

	got := Union(a, b)
	if got.RectCount() != 2 {
		t.Fatalf("RectCount() = %d, want 2", got.RectCount())
	}
	if got.bands[0].Y1 != 0 || got.bands[1].Y1 != 10 {
		t.Errorf("bands out of y-order: %s", got.DebugString())
	}
}

// TestScanlineOrderIndependent checks Union(a, b) == Union(b, a) even when
// a's first band starts strictly after b's, exercising the r.Y1 > s.Y1
// branch of mergeRegions.
func TestScanlineOrderIndependent(t *testing.T) {
	a := FromRect(Point{Y: 5, X: 0}, Size{H: 3, W: 3})
	b := FromRect(Point{Y: 0, X: 0}, Size{H: 3, W: 3})

	if !Equal(Union(a, b), Union(b, a)) {
		t.Error("Union depends on operand order")
	}
}
