package smooth

import (
	"fmt"
	"math"
)

// Default shape and sampling parameters.
const (
	// DefaultAlpha is the centripetal exponent applied to knot spacing.
	DefaultAlpha = 0.75

	// DefaultTension leaves tangents unscaled (standard Catmull-Rom).
	DefaultTension = 0.0

	// DefaultSamplesPerSegment is the number of points emitted per segment.
	DefaultSamplesPerSegment = 10
)

// Option configures a Smoother during creation.
//
// Example:
//
//	// Reference parameters: alpha 0.75, tension 0, 10 samples per segment
//	s, err := smooth.New()
//
//	// Tighter curve with denser sampling
//	s, err := smooth.New(smooth.WithTension(0.3), smooth.WithSamplesPerSegment(32))
type Option func(*Config)

// Config holds the parameters of a Smoother.
// Obtain the effective values with (*Smoother).Config.
type Config struct {
	// Alpha is the centripetal exponent, in (0, 1].
	// 0.5 is the classic centripetal variant, 1 is chordal.
	Alpha float64

	// Tension scales tangents by (1 - Tension). Any finite value is
	// accepted; [0, 1] is the useful range.
	Tension float64

	// SamplesPerSegment is the number of points emitted for each segment,
	// at t = 1/n, 2/n, ..., 1. Must be at least 1.
	SamplesPerSegment int

	// LegacyDistance measures knot spacing with |x1 - x0| only, the knot
	// metric of the legacy waypoint smoother. Sampling is unchanged.
	LegacyDistance bool

	// Workers bounds the goroutines used by SmoothAll.
	// 0 or negative means GOMAXPROCS.
	Workers int
}

// defaultConfig returns the default smoother configuration.
func defaultConfig() Config {
	return Config{
		Alpha:             DefaultAlpha,
		Tension:           DefaultTension,
		SamplesPerSegment: DefaultSamplesPerSegment,
	}
}

// WithAlpha sets the centripetal exponent.
func WithAlpha(alpha float64) Option {
	return func(c *Config) {
		c.Alpha = alpha
	}
}

// WithTension sets the curve tension.
func WithTension(tension float64) Option {
	return func(c *Config) {
		c.Tension = tension
	}
}

// WithSamplesPerSegment sets how many points each segment contributes.
func WithSamplesPerSegment(n int) Option {
	return func(c *Config) {
		c.SamplesPerSegment = n
	}
}

// WithLegacyDistance enables the x-only knot metric of the legacy smoother.
// Only the knot spacing changes; samples are still taken at t = k/n, so the
// output matches legacy curves to rounding, not bit for bit. With it enabled,
// waypoints sharing an x coordinate are rejected as degenerate.
func WithLegacyDistance(enabled bool) Option {
	return func(c *Config) {
		c.LegacyDistance = enabled
	}
}

// WithWorkers sets the number of goroutines used by SmoothAll.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// validate checks every field and wraps ErrInvalidConfig on failure.
func (c Config) validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v not in (0, 1]", ErrInvalidConfig, c.Alpha)
	}
	if math.IsNaN(c.Tension) || math.IsInf(c.Tension, 0) {
		return fmt.Errorf("%w: tension %v is not finite", ErrInvalidConfig, c.Tension)
	}
	if c.SamplesPerSegment < 1 {
		return fmt.Errorf("%w: samples per segment %d < 1", ErrInvalidConfig, c.SamplesPerSegment)
	}
	return nil
}
