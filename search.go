package inscribe

import (
	"errors"
	"math"
	"math/rand/v2"
)

var (
	// ErrDegeneratePolygon is returned for polygons with fewer than three
	// vertices.
	ErrDegeneratePolygon = errors.New("inscribe: polygon has fewer than three vertices")
	// ErrZeroAreaPolygon is returned for polygons whose unsigned area is
	// zero, such as collinear vertices.
	ErrZeroAreaPolygon = errors.New("inscribe: polygon has zero area")
	// ErrNoOriginFound is returned when rejection sampling exhausts its
	// attempt budget without finding a single interior point. It is only
	// reachable when no explicit origins are supplied.
	ErrNoOriginFound = errors.New("inscribe: no interior origin found within the sampling budget")
	// ErrNoFit is returned when every angle/origin/ratio combination
	// failed the containment test. It is an expected outcome for
	// over-constrained searches, not a fault.
	ErrNoFit = errors.New("inscribe: no rectangle satisfying the constraints fits the polygon")
)

// Defaults used by [LargestRect] for unset [Options] fields.
const (
	DefaultMinAspectRatio    = 1.0
	DefaultMaxAspectRatio    = 15.0
	DefaultNTries            = 20
	DefaultTolerance         = 0.02
	DefaultMaxSampleAttempts = 10_000
)

// aspectRatioStep is the granularity of derived aspect-ratio ranges.
const aspectRatioStep = 0.5

// Options configures [LargestRect]. The zero value selects defaults for
// every field.
type Options struct {
	// Angles is the set of candidate rotation angles in degrees, each in
	// [-90, 90]. When empty, an evenly spaced sweep from -90 to 90 in
	// 5-degree steps is used.
	Angles []float64
	// AspectRatios is an explicit set of width/height ratios to try. When
	// empty, a per-origin range is derived between MinAspectRatio and
	// MaxAspectRatio.
	AspectRatios []float64
	// MinAspectRatio and MaxAspectRatio bound derived aspect-ratio
	// ranges. They default to 1 and 15.
	MinAspectRatio float64
	MaxAspectRatio float64
	// MinWidth and MinHeight are lower bounds on the rectangle's
	// dimensions. They default to 0.
	MinWidth  float64
	MinHeight float64
	// NTries is the number of candidate center points to sample when
	// Origins is empty. It defaults to 20.
	NTries int
	// Tolerance is the simplification distance threshold, expressed as a
	// fraction of the polygon's bounding-box minor dimension. It defaults
	// to 0.02. A negative tolerance disables simplification and searches
	// the input polygon as-is.
	Tolerance float64
	// Origins is an explicit list of candidate center points. When
	// supplied, it is used verbatim and no random sampling occurs.
	Origins []Point
	// MaxSampleAttempts caps rejection sampling of candidate centers.
	// Exceeding it without a single interior hit yields
	// [ErrNoOriginFound]. It defaults to 10000.
	MaxSampleAttempts int
	// Rand is the randomness source for center sampling. Supplying a
	// seeded source makes the search reproducible. When nil, a randomly
	// seeded source is created per call.
	Rand *rand.Rand
	// Trace optionally observes intermediate search events.
	Trace *Trace
}

// Candidate describes an inscribed rectangle: its center, dimensions,
// rotation angle in degrees, area, and the four corner points in rotated
// position.
type Candidate struct {
	Center Point
	Width  float64
	Height float64
	// Angle is the rotation in degrees, as passed in [Options.Angles].
	Angle   float64
	Area    float64
	Corners [4]Point
}

// Polygon returns the rectangle's outline as a polygon.
func (c Candidate) Polygon() Polygon {
	return Polygon(c.Corners[:])
}

// LargestRect finds the axis-unaligned rectangle of maximum area that fits
// entirely inside the polygon, subject to the aspect-ratio, minimum-size,
// and origin constraints in opts.
//
// The search enumerates rotation angles and candidate center points,
// brackets the feasible rectangle at each, and binary-searches the width per
// aspect ratio, keeping the maximum-area rectangle that passes the
// containment test against the simplified polygon. Later candidates replace
// the best only on strictly greater area; equal-area ties keep the first
// found, so results are deterministic for a fixed set of origins.
//
// The polygon must be simple, in open representation (no closing duplicate
// vertex). Degenerate inputs return [ErrDegeneratePolygon] or
// [ErrZeroAreaPolygon]; an over-constrained search returns [ErrNoFit].
func LargestRect(p Polygon, opts Options) (Candidate, error) {
	if len(p) < 3 {
		return Candidate{}, ErrDegeneratePolygon
	}
	if p.Area() == 0 {
		return Candidate{}, ErrZeroAreaPolygon
	}
	opts = opts.withDefaults()

	poly := p.Simplify(opts.Tolerance * p.BoundingBox().MinDimension())
	if len(poly) < 3 {
		// Simplification collapsed the polygon; search the original.
		poly = p
	}
	opts.Trace.simplified(poly)

	bbox := poly.BoundingBox()
	widthStep := bbox.MinDimension() / 50

	centers, err := opts.centers(poly, bbox)
	if err != nil {
		return Candidate{}, err
	}
	opts.Trace.origins(centers)

	var best Candidate
	found := false
	for _, angle := range opts.Angles {
		// Negated to match a clockwise-from-x-axis angle convention.
		th := -angle * math.Pi / 180
		for _, center := range centers {
			for _, origin := range recenter(poly, center, th) {
				best, found = searchAtOrigin(poly, origin, th, angle, widthStep, opts, best, found)
			}
		}
	}
	if !found {
		return Candidate{}, ErrNoFit
	}
	return best, nil
}

func (o Options) withDefaults() Options {
	if len(o.Angles) == 0 {
		for a := -90.0; a <= 90.0; a += 5 {
			o.Angles = append(o.Angles, a)
		}
	}
	if o.MinAspectRatio == 0 {
		o.MinAspectRatio = DefaultMinAspectRatio
	}
	if o.MaxAspectRatio == 0 {
		o.MaxAspectRatio = DefaultMaxAspectRatio
	}
	if o.NTries <= 0 {
		o.NTries = DefaultNTries
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxSampleAttempts <= 0 {
		o.MaxSampleAttempts = DefaultMaxSampleAttempts
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// centers determines the candidate center points: caller-supplied origins
// verbatim, or the centroid (if interior) topped up with uniform rejection
// sampling over the bounding box.
func (o Options) centers(poly Polygon, bbox Rect) ([]Point, error) {
	if len(o.Origins) > 0 {
		return o.Origins, nil
	}
	var pts []Point
	if c := poly.Centroid(); poly.Contains(c) {
		pts = append(pts, c)
	}
	// Bounded rejection sampling. Pathological slivers where random
	// points rarely land inside must fail instead of looping forever.
	for attempts := 0; len(pts) < o.NTries && attempts < o.MaxSampleAttempts; attempts++ {
		pt := Pt(
			bbox.X0+o.Rand.Float64()*bbox.Width(),
			bbox.Y0+o.Rand.Float64()*bbox.Height(),
		)
		if poly.Contains(pt) {
			pts = append(pts, pt)
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoOriginFound
	}
	return pts, nil
}

// recenter casts rays along the rectangle's width and height axes through
// center and averages each pair of boundary hits, yielding up to two
// origins: one favoring width-axis symmetry, one favoring height-axis
// symmetry. Centers with no valid ray yield none.
func recenter(poly Polygon, center Point, th float64) []Point {
	var out []Point
	if w := poly.CastRay(center, th); w.Both() {
		out = append(out, w.Forward.Midpoint(w.Backward))
	}
	if h := poly.CastRay(center, th+math.Pi/2); h.Both() {
		out = append(out, h.Forward.Midpoint(h.Backward))
	}
	return out
}

// searchAtOrigin runs the aspect-ratio enumeration and width binary search
// for a single origin and angle, threading the best candidate through as a
// value.
func searchAtOrigin(poly Polygon, origin Point, th, angle, widthStep float64, opts Options, best Candidate, found bool) (Candidate, bool) {
	w := poly.CastRay(origin, th)
	if !w.Both() {
		return best, found
	}
	h := poly.CastRay(origin, th+math.Pi/2)
	if !h.Both() {
		return best, found
	}
	maxWidth := 2 * math.Sqrt(min(
		origin.DistanceSquared(w.Forward),
		origin.DistanceSquared(w.Backward),
	))
	maxHeight := 2 * math.Sqrt(min(
		origin.DistanceSquared(h.Forward),
		origin.DistanceSquared(h.Backward),
	))

	// No rectangle at this origin/angle can beat the best found so far.
	// This bound is the search's principal pruning lever.
	if maxWidth*maxHeight <= best.Area {
		return best, found
	}

	for _, ratio := range opts.ratios(maxWidth, maxHeight, best.Area) {
		lo := max(opts.MinWidth, math.Sqrt(best.Area*ratio))
		hi := min(maxWidth, maxHeight*ratio)
		for hi-lo >= widthStep {
			width := 0.5 * (lo + hi)
			cand := newCandidate(origin, width, width/ratio, th, angle)
			contained := poly.ContainsPolygon(cand.Polygon())
			opts.Trace.probe(cand, contained)
			if contained {
				// Width only grows within this sub-search, so the
				// candidate is unconditionally the new best.
				best = cand
				found = true
				lo = width
			} else {
				hi = width
			}
		}
	}
	return best, found
}

// ratios returns the aspect-ratio set to try at one origin: the explicit
// list when supplied, else a range derived from the feasible dimensions and
// the best area so far, stepped by 0.5. An inverted range yields none.
func (o Options) ratios(maxWidth, maxHeight, bestArea float64) []float64 {
	if len(o.AspectRatios) > 0 {
		return o.AspectRatios
	}
	lo := max(o.MinAspectRatio, o.MinWidth/maxHeight, bestArea/(maxHeight*maxHeight))
	hi := min(o.MaxAspectRatio, maxWidth*maxWidth/bestArea)
	if o.MinHeight > 0 {
		hi = min(hi, maxWidth/o.MinHeight)
	}
	var out []float64
	for r := lo; r <= hi; r += aspectRatioStep {
		out = append(out, r)
	}
	return out
}

func newCandidate(center Point, width, height, th, angle float64) Candidate {
	hw, hh := 0.5*width, 0.5*height
	corners := [4]Point{
		{center.X - hw, center.Y - hh},
		{center.X + hw, center.Y - hh},
		{center.X + hw, center.Y + hh},
		{center.X - hw, center.Y + hh},
	}
	for i, c := range corners {
		corners[i] = c.RotateAbout(th, center)
	}
	return Candidate{
		Center:  center,
		Width:   width,
		Height:  height,
		Angle:   angle,
		Area:    width * height,
		Corners: corners,
	}
}
