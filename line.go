package inscribe

// Line represents a line segment between two points.
type Line struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Eval linearly interpolates between the segment's endpoints.
func (l Line) Eval(t float64) Point {
	return Point{
		X: l.P0.X + t*(l.P1.X-l.P0.X),
		Y: l.P0.Y + t*(l.P1.Y-l.P0.Y),
	}
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, along with the parameter t of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 || dSquared == 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// ProperlyIntersects reports whether the two segments cross at a single
// point interior to both.
//
// Touching configurations do not count: segments that merely share an
// endpoint, or where an endpoint of one lies on the other, are not proper
// intersections. Collinear overlaps are likewise excluded.
func (l Line) ProperlyIntersects(o Line) bool {
	d1 := o.P1.Sub(o.P0).Cross(l.P0.Sub(o.P0))
	d2 := o.P1.Sub(o.P0).Cross(l.P1.Sub(o.P0))
	d3 := l.P1.Sub(l.P0).Cross(o.P0.Sub(l.P0))
	d4 := l.P1.Sub(l.P0).Cross(o.P1.Sub(l.P0))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
