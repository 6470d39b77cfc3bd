package region

import "sort"

// Contains reports whether p lies within the region. Half-open semantics
// apply on every edge: a band covers [Y1, Y2) and a wall pair covers
// [Walls[2k], Walls[2k+1]).
//
// This is a binary search over bands followed by a binary search over
// walls, per spec.md's "Point containment": O(log bands + log walls), never
// a linear scan.
func (r Region) Contains(p Point) bool {
	i := sort.Search(len(r.bands), func(i int) bool {
		return r.bands[i].Y2 > p.Y
	})
	if i == len(r.bands) || r.bands[i].Y1 > p.Y {
		return false
	}

	walls := r.bands[i].Walls
	j := sort.Search(len(walls), func(j int) bool {
		return walls[j] > p.X
	})
	// j is odd iff p.X falls strictly inside an odd number of crossed walls,
	// i.e. inside an [enter, exit) pair rather than between pairs.
	return j%2 == 1
}
