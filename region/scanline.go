package region

// mergeRegions implements spec.md's "Scanline region merge": it sweeps a
// y-scanline downward over the union of a's and b's y-breakpoints, emitting
// one merged band per maximal y-interval during which the pair of active
// bands is constant.
//
// scanline tracks the y-coordinate up to which output has already been
// emitted. Per spec.md's Open Question, it is threaded explicitly from the
// [y1, y2) of each merge attempt rather than re-derived from the last
// appended result band, so an empty (discarded) emission never leaves
// scanline pointing at stale state.
func mergeRegions(a, b Region, op Op) Region {
	var result Region
	na, nb := len(a.bands), len(b.bands)
	if na == 0 && nb == 0 {
		return result
	}

	var scanline int
	switch {
	case na == 0:
		scanline = b.bands[0].Y1
	case nb == 0:
		scanline = a.bands[0].Y1
	default:
		scanline = min(a.bands[0].Y1, b.bands[0].Y1)
	}

	i, j := 0, 0
	for i < na && j < nb {
		r, s := a.bands[i], b.bands[j]

		if r.Y1 <= s.Y1 {
			if scanline < r.Y1 {
				scanline = r.Y1
			}
			if r.Y2 <= s.Y1 {
				result.appendBand(mergeBands(scanline, r.Y2, r, emptyBand, op))
				scanline = r.Y2
				i++
				continue
			}
			if scanline < s.Y1 {
				result.appendBand(mergeBands(scanline, s.Y1, r, emptyBand, op))
				scanline = s.Y1
			}
			if r.Y2 <= s.Y2 {
				result.appendBand(mergeBands(scanline, r.Y2, r, s, op))
				scanline = r.Y2
				i++
				if r.Y2 == s.Y2 {
					j++
				}
			} else {
				result.appendBand(mergeBands(scanline, s.Y2, r, s, op))
				scanline = s.Y2
				j++
			}
		} else {
			if scanline < s.Y1 {
				scanline = s.Y1
			}
			if s.Y2 <= r.Y1 {
				result.appendBand(mergeBands(scanline, s.Y2, emptyBand, s, op))
				scanline = s.Y2
				j++
				continue
			}
			if scanline < r.Y1 {
				result.appendBand(mergeBands(scanline, r.Y1, emptyBand, s, op))
				scanline = r.Y1
			}
			if s.Y2 <= r.Y2 {
				result.appendBand(mergeBands(scanline, s.Y2, r, s, op))
				scanline = s.Y2
				j++
				if s.Y2 == r.Y2 {
					i++
				}
			} else {
				result.appendBand(mergeBands(scanline, r.Y2, r, s, op))
				scanline = r.Y2
				i++
			}
		}
	}

	// Drain: the exhausted side contributes nothing further, so every
	// remaining band on the other side merges against the empty sentinel.
	// op(0, 0) need not be 0 for a hypothetical operator, so this still
	// runs the full per-band merge rather than assuming the strip vanishes.
	for i < na {
		r := a.bands[i]
		if scanline < r.Y1 {
			scanline = r.Y1
		}
		result.appendBand(mergeBands(scanline, r.Y2, r, emptyBand, op))
		scanline = r.Y2
		i++
	}
	for j < nb {
		s := b.bands[j]
		if scanline < s.Y1 {
			scanline = s.Y1
		}
		result.appendBand(mergeBands(scanline, s.Y2, emptyBand, s, op))
		scanline = s.Y2
		j++
	}

	return result
}
