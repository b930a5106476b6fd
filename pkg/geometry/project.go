package geometry

import "math"

// ProjectParam returns the parameter t of the orthogonal projection of p onto
// the parametric line a + t*(b-a). Returns false if the line is degenerate
// (a and b closer than Eps).
func ProjectParam(p, a, b Point2D) (float64, bool) {
	d := b.Sub(a)
	len2 := d.Dot(d)
	if len2 < Eps*Eps {
		return 0, false
	}
	return p.Sub(a).Dot(d) / len2, true
}

// PointAt returns the point a + t*(b-a).
func PointAt(a, b Point2D, t float64) Point2D {
	return a.Add(b.Sub(a).Scale(t))
}

// DistanceToSegment returns the shortest distance from p to the finite
// segment ab.
func DistanceToSegment(p, a, b Point2D) float64 {
	t, ok := ProjectParam(p, a, b)
	if !ok {
		return p.Distance(a)
	}
	t = math.Max(0, math.Min(1, t))
	return p.Distance(PointAt(a, b, t))
}

// OnCircle reports whether p lies on the circle within tol of the radius.
func OnCircle(p, center Point2D, radius, tol float64) bool {
	return math.Abs(p.Distance(center)-radius) <= tol
}
