package region

// mergeBands implements spec.md's "Per-band merge": it walks r.Walls and
// s.Walls in lockstep, toggling parity bits as each side's walls are
// consumed, and emits an x-coordinate into the result whenever op's output
// changes. Either operand may be the empty sentinel band.
//
// y1 and y2 are supplied by the caller (the scanline driver), not derived
// from r or s, since a merge often covers only the overlapping slice of two
// bands whose own y-extents differ.
func mergeBands(y1, y2 int, r, s band, op Op) band {
	walls := newWalls()
	i, j := 0, 0
	var inR, inS, inResult bool

	for i < len(r.Walls) || j < len(s.Walls) {
		var x int
		switch {
		case j >= len(s.Walls) || (i < len(r.Walls) && r.Walls[i] < s.Walls[j]):
			x = r.Walls[i]
			inR = !inR
			i++
		case i >= len(r.Walls) || s.Walls[j] < r.Walls[i]:
			x = s.Walls[j]
			inS = !inS
			j++
		default: // tie: both cursors sit on the same x, both advance
			x = r.Walls[i]
			inR = !inR
			inS = !inS
			i++
			j++
		}

		if want := op.apply(inR, inS); want != inResult {
			inResult = want
			walls = append(walls, x)
		}
	}

	return band{Y1: y1, Y2: y2, Walls: walls}
}
