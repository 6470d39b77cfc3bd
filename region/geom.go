package region

// Point is a 2-D integer coordinate, Y before X to match this package's
// row-major (band-then-wall) view of the plane.
type Point struct {
	Y, X int
}

// Size is a rectangle's height and width in grid cells.
type Size struct {
	H, W int
}
