package region

import "testing"

func TestFromRectEmptyForNonPositiveSize(t *testing.T) {
	tests := []struct {
		name string
		size Size
	}{
		{"zero height", Size{H: 0, W: 5}},
		{"zero width", Size{H: 5, W: 0}},
		{"negative height", Size{H: -1, W: 5}},
		{"negative width", Size{H: 5, W: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromRect(Point{}, tt.size)
			if r.IsNonEmpty() {
				t.Errorf("FromRect(%+v) = %s, want empty", tt.size, r.DebugString())
			}
		})
	}
}

func TestFromRectSingleBand(t *testing.T) {
	r := FromRect(Point{Y: 1, X: 2}, Size{H: 3, W: 4})
	if got, want := r.RectCount(), 1; got != want {
		t.Fatalf("RectCount() = %d, want %d", got, want)
	}
	pos, size, ok := r.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if pos != (Point{Y: 1, X: 2}) || size != (Size{H: 3, W: 4}) {
		t.Errorf("Bounds() = (%+v, %+v), want ((1,2), (3,4))", pos, size)
	}
}

func TestEmptyBounds(t *testing.T) {
	_, _, ok := Empty().Bounds()
	if ok {
		t.Error("Bounds() ok = true for empty region, want false")
	}
}

func TestEqual(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})
	b := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})
	c := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 3})

	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false, want true\na=%s\nb=%s", a.DebugString(), b.DebugString())
	}
	if Equal(a, c) {
		t.Error("Equal(a, c) = true, want false")
	}
	if !Equal(Empty(), Empty()) {
		t.Error("Equal(Empty(), Empty()) = false, want true")
	}
}

// TestVerticalFusion checks the canonicalization rule from spec.md: two
// vertically-adjacent bands with identical walls must collapse into one.
func TestVerticalFusion(t *testing.T) {
	top := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 5})
	bottom := FromRect(Point{Y: 2, X: 0}, Size{H: 3, W: 5})

	got := Union(top, bottom)
	want := FromRect(Point{Y: 0, X: 0}, Size{H: 5, W: 5})

	if !Equal(got, want) {
		t.Errorf("Union of vertically stacked identical-width rects did not fuse:\ngot=%s\nwant=%s", got.DebugString(), want.DebugString())
	}
	if got.RectCount() != 1 {
		t.Errorf("RectCount() = %d, want 1 after fusion", got.RectCount())
	}
}
