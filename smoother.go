package smooth

import (
	"fmt"
	"math"
)

// Smoother densifies waypoint paths with a centripetal Catmull-Rom spline.
//
// A Smoother is immutable after New and safe for concurrent use.
type Smoother struct {
	cfg  Config
	dist distanceFunc
}

// New creates a Smoother. Without options it uses DefaultAlpha,
// DefaultTension and DefaultSamplesPerSegment. Invalid options return an
// error wrapping ErrInvalidConfig.
func New(opts ...Option) (*Smoother, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Smoother{cfg: cfg, dist: euclidean}
	if cfg.LegacyDistance {
		s.dist = legacyDistance
		Logger().Warn("smooth: legacy x-only distance metric enabled")
	}
	return s, nil
}

// Smooth is a convenience wrapper for New followed by (*Smoother).Smooth.
func Smooth(waypoints *Path, opts ...Option) (*Path, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Smooth(waypoints)
}

// Config returns the effective configuration.
func (s *Smoother) Config() Config {
	return s.cfg
}

// OutputLen returns the number of points Smooth produces for n waypoints.
func (s *Smoother) OutputLen(n int) int {
	if n < MinWaypoints {
		return 0
	}
	return 1 + s.cfg.SamplesPerSegment*(n-1)
}

// Smooth returns the dense path through every waypoint.
//
// The result starts with the first waypoint and then holds
// SamplesPerSegment points per waypoint span, evaluated at
// t = 1/n, 2/n, ..., 1; the t=1 sample of each span is the span's end
// waypoint. The input is not modified.
//
// Errors: *InsufficientPointsError for fewer than two waypoints,
// *NonFiniteError for NaN or infinite coordinates, and
// *DegenerateSpacingError when consecutive waypoints coincide under the
// active distance metric. No partial output is returned on error.
func (s *Smoother) Smooth(waypoints *Path) (*Path, error) {
	controls, err := s.controls(waypoints)
	if err != nil {
		return nil, err
	}

	n := waypoints.Len()
	out := newPathCap(s.OutputLen(n))
	err = s.eachSegment(controls, func(i int, seg Segment) {
		if i == 0 {
			out.PushBack(seg.D)
		}
		for k := 1; k <= s.cfg.SamplesPerSegment; k++ {
			t := float64(k) / float64(s.cfg.SamplesPerSegment)
			out.PushBack(seg.Eval(t))
		}
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("smooth: path smoothed",
		"waypoints", n,
		"points", out.Len(),
		"alpha", s.cfg.Alpha,
		"tension", s.cfg.Tension)
	return out, nil
}

// Segments returns the spline segments for waypoints, one per span between
// consecutive waypoints. Validation is the same as for Smooth.
func (s *Smoother) Segments(waypoints *Path) ([]Segment, error) {
	controls, err := s.controls(waypoints)
	if err != nil {
		return nil, err
	}
	segs := make([]Segment, 0, waypoints.Len()-1)
	err = s.eachSegment(controls, func(_ int, seg Segment) {
		segs = append(segs, seg)
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}

// controls validates waypoints and builds the extrapolated control sequence.
func (s *Smoother) controls(waypoints *Path) (*Path, error) {
	controls, err := Extrapolate(waypoints)
	if err != nil {
		return nil, err
	}
	for i := 1; i < waypoints.Len(); i++ {
		if !s.validKnot(waypoints.At(i-1), waypoints.At(i)) {
			return nil, &DegenerateSpacingError{Index: i - 1, Point: waypoints.At(i - 1)}
		}
	}
	return controls, nil
}

// validKnot reports whether the knot interval between p and q is usable.
func (s *Smoother) validKnot(p, q Point) bool {
	k := math.Pow(s.dist(p, q), s.cfg.Alpha)
	return k > 0 && !math.IsInf(k, 0)
}

// eachSegment solves every 4-point window of controls and hands the segment
// to fn. Window i spans waypoints i and i+1.
func (s *Smoother) eachSegment(controls *Path, fn func(i int, seg Segment)) error {
	for i := 0; i+3 < controls.Len(); i++ {
		window := [4]Point{controls.At(i), controls.At(i + 1), controls.At(i + 2), controls.At(i + 3)}
		seg, err := calcCoefficients(s.dist, window, s.cfg.Alpha, s.cfg.Tension)
		if err != nil {
			return fmt.Errorf("smooth: segment %d: %w", i, err)
		}
		fn(i, seg)
	}
	return nil
}
