// Package intersect computes intersection points between constructed
// geometric primitives.
package intersect

import (
	"math"

	"geosketch/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// SegmentIntersection solves the 2x2 linear system for the parameters t, u
// of the two parametric lines p1 + t*(p2-p1) and q1 + u*(q2-q1). Parallel
// and collinear pairs (determinant below geometry.Eps) yield no point. When
// boundP (resp. boundQ) is set, the corresponding parameter must lie in
// [-eps, 1+eps]; unbounded operands are extended lines whose literal
// endpoints already clip them to the plane box.
func SegmentIntersection(p1, p2, q1, q2 geometry.Point2D, boundP, boundQ bool) (geometry.Point2D, bool) {
	dp := p2.Sub(p1)
	dq := q2.Sub(q1)

	a := mat.NewDense(2, 2, []float64{
		dp.X, -dq.X,
		dp.Y, -dq.Y,
	})
	if math.Abs(mat.Det(a)) < geometry.Eps {
		return geometry.Point2D{}, false
	}

	rhs := mat.NewVecDense(2, []float64{q1.X - p1.X, q1.Y - p1.Y})
	var params mat.VecDense
	if err := params.SolveVec(a, rhs); err != nil {
		return geometry.Point2D{}, false
	}
	t := params.AtVec(0)
	u := params.AtVec(1)

	if boundP && (t < -geometry.Eps || t > 1+geometry.Eps) {
		return geometry.Point2D{}, false
	}
	if boundQ && (u < -geometry.Eps || u > 1+geometry.Eps) {
		return geometry.Point2D{}, false
	}
	return geometry.PointAt(p1, p2, t), true
}

// SegmentCircleIntersections returns the 0..2 intersection points of the
// segment p1-p2 with a circle. Substituting the parametric line into the
// circle equation yields A t^2 + B t + C = 0; roots outside [-eps, 1+eps]
// are discarded when bounded. A tangent contact produces one point, not two.
func SegmentCircleIntersections(p1, p2, center geometry.Point2D, radius float64, bounded bool) []geometry.Point2D {
	d := p2.Sub(p1)
	f := p1.Sub(center)

	qa := d.Dot(d)
	if qa < geometry.Eps {
		return nil
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - radius*radius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)

	accept := func(t float64) bool {
		return !bounded || (t >= -geometry.Eps && t <= 1+geometry.Eps)
	}

	var out []geometry.Point2D
	t1 := (-qb - sq) / (2 * qa)
	if accept(t1) {
		out = append(out, geometry.PointAt(p1, p2, t1))
	}
	// The second root exists only if the discriminant is resolvably nonzero;
	// otherwise the contact is tangent and both roots are the same point.
	if disc > geometry.Eps {
		t2 := (-qb + sq) / (2 * qa)
		if accept(t2) {
			out = append(out, geometry.PointAt(p1, p2, t2))
		}
	}
	return out
}

// CircleCircleIntersections returns the 0..2 intersection points of two
// circles via the radical line: coincident centers or center distances
// outside [|r0-r1|, r0+r1] yield none, tangency one, otherwise two points
// mirrored across the center line.
func CircleCircleIntersections(c0 geometry.Point2D, r0 float64, c1 geometry.Point2D, r1 float64) []geometry.Point2D {
	d := c0.Distance(c1)
	if d < geometry.Eps {
		return nil
	}
	if d > r0+r1+geometry.Eps || d < math.Abs(r0-r1)-geometry.Eps {
		return nil
	}

	// Distance from c0 to the chord midpoint along the center line.
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	dir := c1.Sub(c0).Scale(1 / d)
	mid := c0.Add(dir.Scale(a))
	if h <= geometry.Eps {
		return []geometry.Point2D{mid}
	}
	offset := dir.Perp().Scale(h)
	return []geometry.Point2D{mid.Add(offset), mid.Sub(offset)}
}
