package smooth

import "math"

// solveQuadratic finds real roots of a·x² + b·x + c = 0 in ascending order.
// A zero or vanishing a falls back to the linear equation; all-zero
// coefficients return a single 0.
func solveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in the discriminant.
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: take one root from x² + sc1·x ≈ 0.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Stable form avoiding cancellation between -b and the square root.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// solveQuadraticInUnitInterval returns the roots lying in [0, 1].
// Roots within 1e-12 of either end are clamped onto it.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
