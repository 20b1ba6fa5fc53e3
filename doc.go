// Package smooth turns a sparse sequence of 2D waypoints into a dense,
// smooth path using a centripetal Catmull-Rom spline.
//
// # Overview
//
// The curve passes through every waypoint. Knot spacing grows with
// distance^alpha between neighbouring points, which avoids the cusps and
// overshoot of the uniform spline on unevenly spaced input.
//
// # Quick Start
//
//	import "github.com/gogpu/smooth"
//
//	waypoints := smooth.NewPath(
//	    smooth.Pt(10, 7), smooth.Pt(15, 10), smooth.Pt(20, 13), smooth.Pt(25, 12),
//	)
//
//	dense, err := smooth.Smooth(waypoints)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dense) // one "<x>, <y>" per line
//
// # Pipeline
//
// Smoothing runs in three steps:
//   - Extrapolate adds a phantom control point before the first and after
//     the last waypoint.
//   - CalcCoefficients solves one cubic Segment per sliding window of four
//     control points.
//   - The Smoother samples each Segment at a fixed number of parameter values.
//
// For n waypoints the output holds 1 + SamplesPerSegment·(n-1) points.
//
// # Configuration
//
// New accepts functional options: WithAlpha (default 0.75), WithTension
// (default 0), WithSamplesPerSegment (default 10) and WithLegacyDistance,
// which switches knot spacing to the legacy x-only metric.
//
// # Errors
//
// Input is validated before any sampling. Failures match ErrInsufficientPoints,
// ErrDegenerateSpacing or ErrNonFiniteInput with errors.Is, and the typed
// errors carry the offending index.
//
// # Concurrency
//
// A Smoother is immutable and safe for concurrent use. SmoothAll fans out
// independent paths on a bounded set of goroutines. Path values are not
// synchronized.
package smooth
