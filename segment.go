package smooth

import (
	"math"
	"sort"
)

// Segment is one cubic piece of a Catmull-Rom spline:
//
//	P(t) = A·t³ + B·t² + C·t + D,  t ∈ [0, 1]
//
// t=0 yields the segment's start control point, t=1 its end control point.
type Segment struct {
	A, B, C, D Point
}

// distanceFunc measures knot spacing between two control points.
type distanceFunc func(p, q Point) float64

func euclidean(p, q Point) float64 { return p.Distance(q) }

// CalcCoefficients computes the centripetal Catmull-Rom segment between p1
// and p2, using p0 and p3 to estimate the tangents.
//
// Knot spacing between neighbours is distance^alpha. Tension scales both
// tangents by (1 - tension); 0 gives the standard Catmull-Rom curve and 1
// collapses the tangents to zero.
//
// Returns a *DegenerateSpacingError if two consecutive points coincide and a
// *NonFiniteError if any coordinate is NaN or infinite. Indices in those
// errors are relative to p0.
func CalcCoefficients(p0, p1, p2, p3 Point, alpha, tension float64) (Segment, error) {
	return calcCoefficients(euclidean, [4]Point{p0, p1, p2, p3}, alpha, tension)
}

func calcCoefficients(dist distanceFunc, p [4]Point, alpha, tension float64) (Segment, error) {
	for i, pt := range p {
		if !pt.IsFinite() {
			return Segment{}, &NonFiniteError{Index: i, Point: pt}
		}
	}

	var knots [3]float64
	for i := range knots {
		knots[i] = math.Pow(dist(p[i], p[i+1]), alpha)
		// A zero or overflowed interval would divide by zero or poison
		// every coefficient with NaN below.
		if knots[i] == 0 || math.IsInf(knots[i], 0) || math.IsNaN(knots[i]) {
			return Segment{}, &DegenerateSpacingError{Index: i, Point: p[i]}
		}
	}
	t01, t12, t23 := knots[0], knots[1], knots[2]
	p0, p1, p2, p3 := p[0], p[1], p[2], p[3]
	scale := 1 - tension

	// Tangent at p1.
	m1 := p2.Sub(p1).Add(
		p1.Sub(p0).Div(t01).Sub(p2.Sub(p0).Div(t01 + t12)).Mul(t12),
	).Mul(scale)

	// Tangent at p2.
	m2 := p2.Sub(p1).Add(
		p3.Sub(p2).Div(t23).Sub(p3.Sub(p1).Div(t12 + t23)).Mul(t12),
	).Mul(scale)

	d12 := p1.Sub(p2)
	return Segment{
		A: d12.Mul(2).Add(m1).Add(m2),
		B: d12.Mul(-3).Sub(m1.Mul(2)).Sub(m2),
		C: m1,
		D: p1,
	}, nil
}

// Eval evaluates the segment at parameter t using Horner's scheme.
func (s Segment) Eval(t float64) Point {
	return Point{
		X: ((s.A.X*t+s.B.X)*t+s.C.X)*t + s.D.X,
		Y: ((s.A.Y*t+s.B.Y)*t+s.C.Y)*t + s.D.Y,
	}
}

// Derivative returns the tangent vector dP/dt at parameter t.
func (s Segment) Derivative(t float64) Point {
	return Point{
		X: (3*s.A.X*t+2*s.B.X)*t + s.C.X,
		Y: (3*s.A.Y*t+2*s.B.Y)*t + s.C.Y,
	}
}

// Start returns the point at t=0.
func (s Segment) Start() Point {
	return s.D
}

// End returns the point at t=1.
func (s Segment) End() Point {
	return s.A.Add(s.B).Add(s.C).Add(s.D)
}

// Extrema returns the parameters in [0, 1] where dx/dt or dy/dt is zero,
// in ascending order. A segment holds at most two per axis.
func (s Segment) Extrema() []float64 {
	result := make([]float64, 0, 4)
	result = append(result, solveQuadraticInUnitInterval(3*s.A.X, 2*s.B.X, s.C.X)...)
	result = append(result, solveQuadraticInUnitInterval(3*s.A.Y, 2*s.B.Y, s.C.Y)...)
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the segment,
// including any overshoot between sample points.
func (s Segment) BoundingBox() Rect {
	bbox := NewRect(s.Start(), s.End())
	for _, t := range s.Extrema() {
		bbox = bbox.Extend(s.Eval(t))
	}
	return bbox
}
