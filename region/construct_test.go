package region

import "testing"

// TestDifferencePunchesHole exercises spec.md's scenario 4: subtracting a
// centered rectangle from a larger one must leave exactly three bands, a
// hollowed middle strip flanked by two full-width strips.
func TestDifferencePunchesHole(t *testing.T) {
	r1 := FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4})
	r2 := FromRect(Point{Y: 1, X: 1}, Size{H: 2, W: 2})

	got := Difference(r1, r2)

	want := Region{
		bands: []band{
			{Y1: 0, Y2: 1, Walls: []int{0, 4}},
			{Y1: 1, Y2: 3, Walls: []int{0, 1, 3, 4}},
			{Y1: 3, Y2: 4, Walls: []int{0, 4}},
		},
	}

	if !Equal(got, want) {
		t.Fatalf("Difference punched hole mismatch:\ngot=%s\nwant=%s", got.DebugString(), want.DebugString())
	}
}

func TestUnionOfDisjointRects(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})
	b := FromRect(Point{Y: 0, X: 5}, Size{H: 2, W: 2})

	got := Union(a, b)
	if got.RectCount() != 2 {
		t.Errorf("RectCount() = %d, want 2 for disjoint union", got.RectCount())
	}
	for _, p := range []Point{{Y: 0, X: 0}, {Y: 1, X: 1}, {Y: 0, X: 5}, {Y: 1, X: 6}} {
		if !got.Contains(p) {
			t.Errorf("Contains(%+v) = false, want true", p)
		}
	}
	if got.Contains(Point{Y: 0, X: 3}) {
		t.Error("Contains((0,3)) = true, want false (gap between rects)")
	}
}

func TestUnionOfOverlappingRectsMerges(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 3})
	b := FromRect(Point{Y: 0, X: 2}, Size{H: 2, W: 3})

	got := Union(a, b)
	want := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 5})

	if !Equal(got, want) {
		t.Errorf("Union of overlapping rects mismatch:\ngot=%s\nwant=%s", got.DebugString(), want.DebugString())
	}
}

func TestIntersectionOfDisjointRectsIsEmpty(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 2, W: 2})
	b := FromRect(Point{Y: 5, X: 5}, Size{H: 2, W: 2})

	got := Intersection(a, b)
	if got.IsNonEmpty() {
		t.Errorf("Intersection() = %s, want empty", got.DebugString())
	}
}

func TestIntersectionOverlap(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4})
	b := FromRect(Point{Y: 2, X: 2}, Size{H: 4, W: 4})

	got := Intersection(a, b)
	want := FromRect(Point{Y: 2, X: 2}, Size{H: 2, W: 2})

	if !Equal(got, want) {
		t.Errorf("Intersection mismatch:\ngot=%s\nwant=%s", got.DebugString(), want.DebugString())
	}
}

func TestSymmetricDifference(t *testing.T) {
	a := FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4})
	b := FromRect(Point{Y: 2, X: 2}, Size{H: 4, W: 4})

	xor := SymmetricDifference(a, b)
	want := Union(Difference(a, b), Difference(b, a))

	if !Equal(xor, want) {
		t.Errorf("SymmetricDifference != (A\\B) ∪ (B\\A):\ngot=%s\nwant=%s", xor.DebugString(), want.DebugString())
	}
	if xor.Contains(Point{Y: 3, X: 3}) {
		t.Error("XOR should exclude the overlap region")
	}
	if !xor.Contains(Point{Y: 0, X: 0}) {
		t.Error("XOR should include the non-overlapping part of A")
	}
}

func rectsFor(name string) Region {
	switch name {
	case "a":
		return FromRect(Point{Y: 0, X: 0}, Size{H: 5, W: 5})
	case "b":
		return FromRect(Point{Y: 2, X: 2}, Size{H: 5, W: 5})
	case "c":
		return FromRect(Point{Y: -3, X: 1}, Size{H: 4, W: 10})
	default:
		return Empty()
	}
}

func TestUnionCommutative(t *testing.T) {
	a, b := rectsFor("a"), rectsFor("b")
	if !Equal(Union(a, b), Union(b, a)) {
		t.Error("Union is not commutative")
	}
}

func TestIntersectionCommutative(t *testing.T) {
	a, b := rectsFor("a"), rectsFor("b")
	if !Equal(Intersection(a, b), Intersection(b, a)) {
		t.Error("Intersection is not commutative")
	}
}

func TestUnionAssociative(t *testing.T) {
	a, b, c := rectsFor("a"), rectsFor("b"), rectsFor("c")
	left := Union(Union(a, b), c)
	right := Union(a, Union(b, c))
	if !Equal(left, right) {
		t.Errorf("Union is not associative:\nleft=%s\nright=%s", left.DebugString(), right.DebugString())
	}
}

func TestIntersectionAssociative(t *testing.T) {
	a, b, c := rectsFor("a"), rectsFor("b"), rectsFor("c")
	left := Intersection(Intersection(a, b), c)
	right := Intersection(a, Intersection(b, c))
	if !Equal(left, right) {
		t.Errorf("Intersection is not associative:\nleft=%s\nright=%s", left.DebugString(), right.DebugString())
	}
}

func TestUnionIdempotent(t *testing.T) {
	a := rectsFor("a")
	if !Equal(Union(a, a), a) {
		t.Error("Union(a, a) != a")
	}
}

func TestIntersectionIdempotent(t *testing.T) {
	a := rectsFor("a")
	if !Equal(Intersection(a, a), a) {
		t.Error("Intersection(a, a) != a")
	}
}

func TestUnionIdentity(t *testing.T) {
	a := rectsFor("a")
	if !Equal(Union(a, Empty()), a) {
		t.Error("Union(a, Empty()) != a")
	}
}

func TestIntersectionWithEmptyIsEmpty(t *testing.T) {
	a := rectsFor("a")
	if Intersection(a, Empty()).IsNonEmpty() {
		t.Error("Intersection(a, Empty()) is non-empty")
	}
}

func TestDifferenceSelfIsEmpty(t *testing.T) {
	a := rectsFor("a")
	if Difference(a, a).IsNonEmpty() {
		t.Error("Difference(a, a) is non-empty")
	}
}

func TestDifferenceFromEmptyIsEmpty(t *testing.T) {
	a := rectsFor("a")
	if Difference(Empty(), a).IsNonEmpty() {
		t.Error("Difference(Empty(), a) is non-empty")
	}
}

func TestXORSelfIsEmpty(t *testing.T) {
	a := rectsFor("a")
	if SymmetricDifference(a, a).IsNonEmpty() {
		t.Error("SymmetricDifference(a, a) is non-empty")
	}
}

func TestXORCommutative(t *testing.T) {
	a, b := rectsFor("a"), rectsFor("b")
	if !Equal(SymmetricDifference(a, b), SymmetricDifference(b, a)) {
		t.Error("SymmetricDifference is not commutative")
	}
}

// TestDeMorganDifference checks A \ B == A ∩ ¬B expressed without a
// complement operator: A \ (B1 ∪ B2) == (A \ B1) ∩ (A \ B2).
func TestDeMorganDifference(t *testing.T) {
	a := rectsFor("a")
	b1 := rectsFor("b")
	b2 := rectsFor("c")

	left := Difference(a, Union(b1, b2))
	right := Intersection(Difference(a, b1), Difference(a, b2))

	if !Equal(left, right) {
		t.Errorf("De Morgan difference law failed:\nleft=%s\nright=%s", left.DebugString(), right.DebugString())
	}
}

func TestAbsorption(t *testing.T) {
	a, b := rectsFor("a"), rectsFor("b")
	if !Equal(Union(a, Intersection(a, b)), a) {
		t.Error("Union(a, Intersection(a, b)) != a")
	}
	if !Equal(Intersection(a, Union(a, b)), a) {
		t.Error("Intersection(a, Union(a, b)) != a")
	}
}
