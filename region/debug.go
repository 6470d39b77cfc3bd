package region

import (
	"fmt"
	"strings"
)

// DebugString renders the region's canonical band/wall representation as
// "Band(y1, y2, walls=[...])" lines, one per band, for use in test failure
// messages and ad-hoc inspection. The format is not stable API and callers
// must not parse it.
func (r Region) DebugString() string {
	if len(r.bands) == 0 {
		return "Region{}"
	}
	var sb strings.Builder
	for i, b := range r.bands {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Band(%d, %d, walls=%v)", b.Y1, b.Y2, b.Walls)
	}
	return sb.String()
}
