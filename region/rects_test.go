package region

import "testing"

func TestRectsCountMatchesRectCount(t *testing.T) {
	r := Difference(
		FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4}),
		FromRect(Point{Y: 1, X: 1}, Size{H: 2, W: 2}),
	)

	n := 0
	for range r.Rects() {
		n++
	}
	if n != r.RectCount() {
		t.Errorf("Rects() yielded %d rectangles, RectCount() = %d", n, r.RectCount())
	}
}

func TestRectsCoverEveryContainedPoint(t *testing.T) {
	r := Union(
		FromRect(Point{Y: 0, X: 0}, Size{H: 3, W: 3}),
		FromRect(Point{Y: 5, X: 5}, Size{H: 2, W: 2}),
	)

	covered := make(map[Point]bool)
	for pos, size := range r.Rects() {
		for y := pos.Y; y < pos.Y+size.H; y++ {
			for x := pos.X; x < pos.X+size.W; x++ {
				covered[Point{Y: y, X: x}] = true
			}
		}
	}

	pos, size, ok := r.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	for y := pos.Y - 1; y <= pos.Y+size.H; y++ {
		for x := pos.X - 1; x <= pos.X+size.W; x++ {
			p := Point{Y: y, X: x}
			if got, want := covered[p], r.Contains(p); got != want {
				t.Errorf("point %+v: Rects() coverage = %v, Contains() = %v", p, got, want)
			}
		}
	}
}

func TestRectsAreDisjoint(t *testing.T) {
	r := Union(
		FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4}),
		FromRect(Point{Y: 2, X: 2}, Size{H: 4, W: 4}),
	)

	var seen []struct {
		pos  Point
		size Size
	}
	for pos, size := range r.Rects() {
		seen = append(seen, struct {
			pos  Point
			size Size
		}{pos, size})
	}

	overlaps := func(aPos Point, aSize Size, bPos Point, bSize Size) bool {
		return aPos.X < bPos.X+bSize.W && bPos.X < aPos.X+aSize.W &&
			aPos.Y < bPos.Y+bSize.H && bPos.Y < aPos.Y+aSize.H
	}

	for i := range seen {
		for j := i + 1; j < len(seen); j++ {
			if overlaps(seen[i].pos, seen[i].size, seen[j].pos, seen[j].size) {
				t.Errorf("rects %d and %d overlap: %+v/%+v vs %+v/%+v", i, j, seen[i].pos, seen[i].size, seen[j].pos, seen[j].size)
			}
		}
	}
}

func TestRectsEmptyRegionYieldsNothing(t *testing.T) {
	for range Empty().Rects() {
		t.Fatal("Rects() on empty region yielded a rectangle")
	}
}

func TestRectsRestartable(t *testing.T) {
	r := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})

	first := 0
	for range r.Rects() {
		first++
	}
	second := 0
	for range r.Rects() {
		second++
	}
	if first != second {
		t.Errorf("Rects() not restartable: first=%d second=%d", first, second)
	}
}

func TestRectsStopsEarly(t *testing.T) {
	r := Union(
		FromRect(Point{Y: 0, X: 0}, Size{H: 1, W: 1}),
		FromRect(Point{Y: 5, X: 5}, Size{H: 1, W: 1}),
	)

	n := 0
	for range r.Rects() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected exactly 1 iteration before break, got %d", n)
	}
}
