package inscribe

// Rect is an axis-aligned rectangle, described by its minimum and maximum
// coordinates.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// MinDimension returns the smaller of the rectangle's width and height.
func (r Rect) MinDimension() float64 {
	return min(r.Width(), r.Height())
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles. Thus, a
// succession of UnionPoint operations on a series of points yields their
// enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}
