package inscribe

import "math"

// rayEpsilon guards the parallelism test when intersecting a ray with an
// edge. A ray running exactly along an edge must not register tangential
// hits.
const rayEpsilon = 1e-12

// RayIntersection is the result of casting an infinite line through a
// polygon: the nearest boundary hit on each side of the origin.
type RayIntersection struct {
	// Forward is the nearest hit along the ray direction.
	Forward Point
	// Backward is the nearest hit against the ray direction.
	Backward Point
	// HasForward and HasBackward report whether the respective side hit
	// the boundary at all. A side can miss only if the origin is outside
	// the polygon, or the polygon is non-convex with a gap along the ray.
	HasForward  bool
	HasBackward bool
}

// Both reports whether the boundary was hit on both sides of the origin.
func (ri RayIntersection) Both() bool {
	return ri.HasForward && ri.HasBackward
}

// CastRay intersects the infinite line through origin at angle th (radians)
// with the polygon's boundary and returns the nearest intersection point on
// each side of the origin.
//
// Every edge is tested exactly once. Edges parallel to the ray are skipped;
// they contribute no isolated intersection point.
func (p Polygon) CastRay(origin Point, th float64) RayIntersection {
	dir := VecFromAngle(th)
	var res RayIntersection
	fwd := math.Inf(1)
	bwd := math.Inf(-1)
	for edge := range p.Edges() {
		e := edge.P1.Sub(edge.P0)
		denom := dir.Cross(e)
		if math.Abs(denom) < rayEpsilon {
			continue
		}
		ao := edge.P0.Sub(origin)
		s := ao.Cross(dir) / denom
		if s < 0 || s > 1 {
			continue
		}
		t := ao.Cross(e) / denom
		switch {
		case t >= 0 && t < fwd:
			fwd = t
			res.Forward = origin.Translate(dir.Mul(t))
			res.HasForward = true
		case t < 0 && t > bwd:
			bwd = t
			res.Backward = origin.Translate(dir.Mul(t))
			res.HasBackward = true
		}
	}
	return res
}
