package smooth

import (
	"errors"
	"fmt"
)

// Sentinel errors for the smooth package.
var (
	// ErrInsufficientPoints is returned when a path has fewer than two
	// waypoints, so no boundary control points can be extrapolated.
	ErrInsufficientPoints = errors.New("smooth: insufficient points")

	// ErrDegenerateSpacing is returned when two consecutive control points
	// coincide under the active distance metric, giving a zero knot interval.
	ErrDegenerateSpacing = errors.New("smooth: degenerate spacing")

	// ErrNonFiniteInput is returned when a coordinate is NaN or infinite.
	ErrNonFiniteInput = errors.New("smooth: non-finite input")

	// ErrInvalidConfig is returned by New for out-of-range options.
	ErrInvalidConfig = errors.New("smooth: invalid config")
)

// InsufficientPointsError reports how many waypoints were supplied.
type InsufficientPointsError struct {
	Got  int
	Want int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("smooth: insufficient points: got %d, want at least %d", e.Got, e.Want)
}

// Is matches ErrInsufficientPoints.
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// DegenerateSpacingError identifies the pair of control points that coincide.
// Index is the position of the first point of the pair in the sequence
// being validated, and Point is its value.
type DegenerateSpacingError struct {
	Index int
	Point Point
}

func (e *DegenerateSpacingError) Error() string {
	return fmt.Sprintf("smooth: degenerate spacing: points %d and %d coincide at (%v)",
		e.Index, e.Index+1, e.Point)
}

// Is matches ErrDegenerateSpacing.
func (e *DegenerateSpacingError) Is(target error) bool {
	return target == ErrDegenerateSpacing
}

// NonFiniteError identifies the first point holding a NaN or infinite coordinate.
type NonFiniteError struct {
	Index int
	Point Point
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("smooth: non-finite input: point %d is (%v)", e.Index, e.Point)
}

// Is matches ErrNonFiniteInput.
func (e *NonFiniteError) Is(target error) bool {
	return target == ErrNonFiniteInput
}
