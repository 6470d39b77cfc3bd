package region

import "testing"

func TestContainsHalfOpenEdges(t *testing.T) {
	r := FromRect(Point{Y: 0, X: 0}, Size{H: 3, W: 3})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner is inside", Point{Y: 0, X: 0}, true},
		{"interior point is inside", Point{Y: 1, X: 1}, true},
		{"right edge is exclusive", Point{Y: 0, X: 3}, false},
		{"bottom edge is exclusive", Point{Y: 3, X: 0}, false},
		{"bottom-right corner is exclusive", Point{Y: 3, X: 3}, false},
		{"left of rect is outside", Point{Y: 0, X: -1}, false},
		{"above rect is outside", Point{Y: -1, X: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContainsEmptyRegion(t *testing.T) {
	if Empty().Contains(Point{Y: 0, X: 0}) {
		t.Error("Empty().Contains((0,0)) = true, want false")
	}
}

func TestContainsMultiBandRegion(t *testing.T) {
	r := Difference(
		FromRect(Point{Y: 0, X: 0}, Size{H: 4, W: 4}),
		FromRect(Point{Y: 1, X: 1}, Size{H: 2, W: 2}),
	)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{Y: 0, X: 0}, true},
		{Point{Y: 2, X: 2}, false}, // inside the punched hole
		{Point{Y: 1, X: 0}, true},  // left of the hole, same row band
		{Point{Y: 3, X: 3}, true},
		{Point{Y: 4, X: 0}, false}, // below the region entirely
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
