package region

// Union returns the set of points in a or b.
func Union(a, b Region) Region {
	return mergeRegions(a, b, OpUnion)
}

// Intersection returns the set of points in both a and b.
func Intersection(a, b Region) Region {
	return mergeRegions(a, b, OpIntersection)
}

// Difference returns the set of points in a but not in b.
func Difference(a, b Region) Region {
	return mergeRegions(a, b, OpDifference)
}

// SymmetricDifference returns the set of points in exactly one of a or b.
func SymmetricDifference(a, b Region) Region {
	return mergeRegions(a, b, OpSymmetricDifference)
}
