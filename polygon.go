package inscribe

import (
	"iter"
	"math"
)

// Polygon is a simple (non-self-intersecting) closed boundary, described as
// an ordered sequence of at least three vertices. The representation is
// open: the closing edge between the last and the first vertex is implicit,
// and the first vertex is never duplicated at the end.
//
// Functions in this package never mutate a polygon in place; operations such
// as [Polygon.Simplify] return a new polygon.
type Polygon []Point

// Edges yields every edge of the polygon exactly once, including the
// implicit closing edge.
func (p Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := len(p)
		for i := range p {
			if !yield(Line{p[i], p[(i+1)%n]}) {
				return
			}
		}
	}
}

// SignedArea returns the signed area of the polygon, computed with the
// shoelace formula. The sign depends on winding order; callers wanting the
// unsigned area should use [Polygon.Area].
func (p Polygon) SignedArea() float64 {
	var sum float64
	n := len(p)
	for i, a := range p {
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return 0.5 * sum
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area-weighted centroid of the polygon.
//
// The result is well-defined only for polygons with nonzero area.
func (p Polygon) Centroid() Point {
	var cx, cy, area float64
	n := len(p)
	for i, pt := range p {
		next := p[(i+1)%n]
		a := pt.X*next.Y - next.X*pt.Y
		area += a
		cx += (pt.X + next.X) * a
		cy += (pt.Y + next.Y) * a
	}
	area *= 0.5
	return Point{
		X: cx / (6.0 * area),
		Y: cy / (6.0 * area),
	}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// polygon.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Contains reports whether pt lies inside the polygon, using the ray-casting
// parity test: a horizontal ray from pt towards +x crosses the boundary an
// odd number of times exactly for interior points.
//
// Edges are treated as half-open in y, so a ray passing exactly through a
// vertex is counted once rather than twice. Points exactly on the boundary
// may be reported as either inside or outside.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	in := false
	a := p[len(p)-1]
	for _, b := range p {
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		a = b
	}
	return in
}

// ContainsPolygon reports whether inner lies entirely within p.
//
// The test requires every vertex of inner to pass [Polygon.Contains] and no
// edge of inner to properly cross any edge of p. The vertex test alone is
// insufficient for non-convex outers, where an inner edge can bridge a
// concavity while both of its endpoints remain inside.
//
// Edges that merely touch (sharing a vertex, or one endpoint lying on the
// other segment) do not count as crossing.
func (p Polygon) ContainsPolygon(inner Polygon) bool {
	for _, pt := range inner {
		if !p.Contains(pt) {
			return false
		}
	}
	for innerEdge := range inner.Edges() {
		for outerEdge := range p.Edges() {
			if innerEdge.ProperlyIntersects(outerEdge) {
				return false
			}
		}
	}
	return true
}
