package region

import "testing"

func TestOpApplyTruthTables(t *testing.T) {
	tests := []struct {
		op         Op
		wantFF     bool
		wantFT     bool
		wantTF     bool
		wantTT     bool
	}{
		{OpUnion, false, true, true, true},
		{OpIntersection, false, false, false, true},
		{OpDifference, false, false, true, false},
		{OpSymmetricDifference, false, true, true, false},
	}
	for _, tt := range tests {
		if got := tt.op.apply(false, false); got != tt.wantFF {
			t.Errorf("%v.apply(false, false) = %v, want %v", tt.op, got, tt.wantFF)
		}
		if got := tt.op.apply(false, true); got != tt.wantFT {
			t.Errorf("%v.apply(false, true) = %v, want %v", tt.op, got, tt.wantFT)
		}
		if got := tt.op.apply(true, false); got != tt.wantTF {
			t.Errorf("%v.apply(true, false) = %v, want %v", tt.op, got, tt.wantTF)
		}
		if got := tt.op.apply(true, true); got != tt.wantTT {
			t.Errorf("%v.apply(true, true) = %v, want %v", tt.op, got, tt.wantTT)
		}
	}
}

func TestMergeBandsAgainstEmptySentinel(t *testing.T) {
	r := band{Y1: 0, Y2: 1, Walls: []int{1, 3}}

	union := mergeBands(0, 1, r, emptyBand, OpUnion)
	if !wallsEqual(union.Walls, []int{1, 3}) {
		t.Errorf("union with empty sentinel = %v, want [1 3]", union.Walls)
	}

	inter := mergeBands(0, 1, r, emptyBand, OpIntersection)
	if len(inter.Walls) != 0 {
		t.Errorf("intersection with empty sentinel = %v, want []", inter.Walls)
	}

	diff := mergeBands(0, 1, r, emptyBand, OpDifference)
	if !wallsEqual(diff.Walls, []int{1, 3}) {
		t.Errorf("difference from empty sentinel = %v, want [1 3]", diff.Walls)
	}
}

func TestMergeBandsTouchingIntervalsFuse(t *testing.T) {
	// [0,2) and [2,4) share the boundary wall at x=2: union must not leave a
	// spurious split there.
	r := band{Y1: 0, Y2: 1, Walls: []int{0, 2}}
	s := band{Y1: 0, Y2: 1, Walls: []int{2, 4}}

	got := mergeBands(0, 1, r, s, OpUnion)
	want := []int{0, 4}
	if !wallsEqual(got.Walls, want) {
		t.Errorf("mergeBands touching-interval union = %v, want %v", got.Walls, want)
	}
}

func TestMergeBandsIdenticalWallsIntersect(t *testing.T) {
	r := band{Y1: 0, Y2: 1, Walls: []int{0, 5}}
	s := band{Y1: 0, Y2: 1, Walls: []int{0, 5}}

	got := mergeBands(0, 1, r, s, OpIntersection)
	if !wallsEqual(got.Walls, []int{0, 5}) {
		t.Errorf("mergeBands identical-walls intersection = %v, want [0 5]", got.Walls)
	}
}
