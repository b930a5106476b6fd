package geometry

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances used for floating-point comparisons on constructed geometry.
const (
	// Eps is the degeneracy threshold: determinants, direction lengths, and
	// per-axis coordinate identity are compared against it.
	Eps = 1e-9

	// DistTol is the distance threshold used to deduplicate computed points
	// and to match recorded coordinates back to live entities.
	DistTol = 1e-6
)

// SamePoint reports whether two points are the same coordinate, compared
// per axis within Eps.
func SamePoint(a, b Point2D) bool {
	return scalar.EqualWithinAbs(a.X, b.X, Eps) && scalar.EqualWithinAbs(a.Y, b.Y, Eps)
}

// NearPoint reports whether two points are within DistTol of each other.
func NearPoint(a, b Point2D) bool {
	return a.Distance(b) <= DistTol
}

// NearlyZero reports whether v is within Eps of zero.
func NearlyZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, Eps)
}
