package smooth

// MinWaypoints is the smallest path Extrapolate and Smooth accept.
const MinWaypoints = 2

// Extrapolate returns the control sequence for waypoints: a copy of the
// waypoints with one phantom point prepended and one appended.
//
// The leading phantom reflects the second waypoint through the first,
// waypoints[0] - (waypoints[1] - waypoints[0]); the trailing phantom extends
// the last step past the end, waypoints[n-1] + (waypoints[n-1] - waypoints[n-2]).
// Every real waypoint thus has neighbours on both sides.
//
// The input path is never modified. Extrapolate fails with an
// *InsufficientPointsError for fewer than MinWaypoints points and with a
// *NonFiniteError if a waypoint, or a phantom point computed from them, is
// not finite. Phantom points are reported with Index -1 (leading) and
// waypoints.Len() (trailing).
func Extrapolate(waypoints *Path) (*Path, error) {
	n := 0
	if waypoints != nil {
		n = waypoints.Len()
	}
	if n < MinWaypoints {
		return nil, &InsufficientPointsError{Got: n, Want: MinWaypoints}
	}
	for i, pt := range waypoints.All() {
		if !pt.IsFinite() {
			return nil, &NonFiniteError{Index: i, Point: pt}
		}
	}

	first, second := waypoints.At(0), waypoints.At(1)
	start := first.Sub(second.Sub(first))
	if !start.IsFinite() {
		return nil, &NonFiniteError{Index: -1, Point: start}
	}

	last, beforeLast := waypoints.At(n-1), waypoints.At(n-2)
	end := last.Add(last.Sub(beforeLast))
	if !end.IsFinite() {
		return nil, &NonFiniteError{Index: n, Point: end}
	}

	controls := waypoints.Clone()
	controls.PushFront(start)
	controls.PushBack(end)
	return controls, nil
}
