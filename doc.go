// Package inscribe finds the largest rectangle that fits inside a simple
// polygon.
//
// Given an arbitrary simple polygon, [LargestRect] searches for the
// axis-unaligned rectangle of maximum area that lies entirely within the
// polygon, subject to optional aspect-ratio, minimum-size, and fixed-center
// constraints. A typical consumer is a labelling layer that needs to know
// how large a text box fits inside an irregular region.
//
// # Search strategy
//
// The solver is a multi-stage numerical search:
//
//   - The polygon is simplified with the Douglas–Peucker algorithm (see
//     [Polygon.Simplify]), bounding the cost of the geometry tests that
//     dominate the search.
//   - Candidate rectangle centers are the polygon's centroid and uniformly
//     sampled interior points, unless the caller supplies explicit origins.
//   - For each rotation angle and center, rays cast through the center (see
//     [Polygon.CastRay]) recenter the origin within the polygon and bound
//     the feasible rectangle dimensions. Origins whose bound cannot beat
//     the best area found so far are pruned without further work.
//   - For each aspect ratio in range, the rectangle width is binary-searched;
//     each probe builds the rotated corner points and tests full polygon
//     containment (see [Polygon.ContainsPolygon]).
//
// The search is a pure, synchronous computation with no shared state.
// Distinct calls may run concurrently, provided each supplies its own
// randomness source via [Options.Rand]; a seeded source also makes results
// reproducible.
//
// # Coordinates and conventions
//
// [Polygon] is an ordered vertex sequence in open representation: the edge
// from the last vertex back to the first is implicit and the first vertex
// is never repeated. Angles in [Options.Angles] are degrees in [-90, 90];
// rotation follows the graphics convention where, in a y-down coordinate
// system, positive angles rotate clockwise.
//
// Failure conditions are reported as typed errors ([ErrDegeneratePolygon],
// [ErrZeroAreaPolygon], [ErrNoOriginFound], [ErrNoFit]) rather than panics;
// [ErrNoFit] in particular is an expected outcome for over-constrained
// searches.
package inscribe
