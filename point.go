package inscribe

import (
	"fmt"
	"math"
)

// Point is a location in 2D Cartesian space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
//
// Comparing distances should prefer this over [Point.Distance], taking a
// square root only when an actual distance value is needed.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// RotateAbout returns the point rotated by th radians about pivot.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. Thus, in a Y-down coordinate system (as is
// common for graphics), it is a clockwise rotation, and in Y-up (traditional
// for math), it is anti-clockwise.
func (pt Point) RotateAbout(th float64, pivot Point) Point {
	sin, cos := math.Sincos(th)
	d := pt.Sub(pivot)
	return Point{
		X: pivot.X + d.X*cos - d.Y*sin,
		Y: pivot.Y + d.X*sin + d.Y*cos,
	}
}
