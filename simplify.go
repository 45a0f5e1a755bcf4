package inscribe

// Simplify returns a polygon with fewer vertices, such that every discarded
// vertex lies within tolerance of the simplified boundary.
//
// The implementation is the Douglas–Peucker algorithm: recursively find the
// vertex of maximum perpendicular deviation from the chord between two kept
// vertices; keep it and recurse if the deviation exceeds tolerance, else
// discard all vertices between. The polygon is treated as an open chain
// anchored at vertex 0, whose first and last vertices are always kept.
//
// Polygons with two or fewer vertices, and non-positive tolerances, return
// a copy of the input unchanged.
//
// Simplification is a tolerance trade, not a cosmetic step: downstream
// containment tests treat the simplified polygon as ground truth, so too
// coarse a tolerance can admit a rectangle that does not fit the true
// polygon.
func (p Polygon) Simplify(tolerance float64) Polygon {
	if len(p) <= 2 || tolerance <= 0 {
		return append(Polygon(nil), p...)
	}
	keep := make([]bool, len(p))
	keep[0] = true
	keep[len(p)-1] = true
	douglasPeucker(p, 0, len(p)-1, tolerance, keep)
	out := make(Polygon, 0, len(p))
	for i, k := range keep {
		if k {
			out = append(out, p[i])
		}
	}
	return out
}

func douglasPeucker(pts Polygon, start, end int, tolerance float64, keep []bool) {
	if end <= start+1 {
		return
	}
	chord := Line{pts[start], pts[end]}
	maxDistSq := -1.0
	index := -1
	for i := start + 1; i < end; i++ {
		distSq, _ := chord.Nearest(pts[i])
		if distSq > maxDistSq {
			maxDistSq = distSq
			index = i
		}
	}
	if maxDistSq > tolerance*tolerance {
		douglasPeucker(pts, start, index, tolerance, keep)
		keep[index] = true
		douglasPeucker(pts, index, end, tolerance, keep)
	}
}
