package model

import (
	"math"

	"geosketch/pkg/geometry"
)

// HitTest finds the entity under a world coordinate within tol. Points win
// over lines, lines over extended lines, extended lines over circles, so a
// point sitting on a line stays pickable. Returns the entity kind and
// handle.
func (s *Store) HitTest(pos geometry.Point2D, tol float64) (Kind, int, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i := range s.points {
		d := s.points[i].Pos.Distance(pos)
		if d <= tol && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best >= 0 {
		return KindPoint, best, true
	}

	for i, line := range s.lines {
		a := s.points[line.A].Pos
		b := s.points[line.B].Pos
		if geometry.DistanceToSegment(pos, a, b) <= tol {
			return KindLine, i, true
		}
	}
	for i, e := range s.extended {
		if geometry.DistanceToSegment(pos, e.A, e.B) <= tol {
			return KindExtendedLine, i, true
		}
	}
	for i, c := range s.circles {
		if math.Abs(pos.Distance(c.Center)-c.Radius) <= tol {
			return KindCircle, i, true
		}
	}
	return 0, -1, false
}
