package smooth

import (
	"math"
	"strconv"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Magnitude returns the length of the vector: sqrt(x² + y²), computed
// without intermediate overflow or underflow. NaN propagates unless the
// other coordinate is infinite.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Magnitude()
}

// legacyDistance is the x-only knot metric of the legacy smoother,
// which dropped the y displacement and therefore returns |q.X - p.X|.
// Only used when WithLegacyDistance is enabled.
func legacyDistance(p, q Point) float64 {
	return Point{X: q.X - p.X, Y: q.Y - q.Y}.Magnitude()
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// String formats the point as "<x>, <y>" with six significant digits,
// the line format consumed by waypoint readers and the smoothpath CLI.
func (p Point) String() string {
	return formatCoord(p.X) + ", " + formatCoord(p.Y)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
