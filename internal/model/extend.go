package model

import (
	"math"
	"sort"

	"geosketch/pkg/geometry"
)

// boxHit is one crossing of a line with the plane box boundary.
type boxHit struct {
	pos  geometry.Point2D
	proj float64 // coordinate along the dominant axis of the direction
}

// ExtendLine replaces the finite line at the given handle with an extended
// line whose endpoints are the crossings of the line's direction with the
// plane box. If the line crosses the box boundary fewer than twice, the
// original endpoints are kept. The finite line is removed either way.
func (s *Store) ExtendLine(i int) bool {
	line, ok := s.LineAt(i)
	if !ok {
		return false
	}
	p0 := s.points[line.A].Pos
	p1 := s.points[line.B].Pos

	a, b := clipThroughBox(p0, p1)
	s.extended = append(s.extended, ExtendedLine{A: a, B: b, Label: line.Label})
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

// clipThroughBox intersects the infinite line through p0, p1 with the four
// box edges and returns the two extreme crossings, ordered along the
// dominant axis of the direction vector. With fewer than two distinct
// crossings the original endpoints are returned unchanged.
func clipThroughBox(p0, p1 geometry.Point2D) (geometry.Point2D, geometry.Point2D) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	horizontalDominant := math.Abs(dx) >= math.Abs(dy)

	var hits []boxHit
	addHit := func(p geometry.Point2D) {
		for _, h := range hits {
			if p.Distance(h.pos) <= geometry.DistTol {
				return
			}
		}
		proj := p.Y
		if horizontalDominant {
			proj = p.X
		}
		hits = append(hits, boxHit{pos: p, proj: proj})
	}

	if math.Abs(dx) > geometry.Eps {
		for _, x := range []float64{BoxMin, BoxMax} {
			t := (x - p0.X) / dx
			y := p0.Y + t*dy
			if y >= BoxMin-geometry.DistTol && y <= BoxMax+geometry.DistTol {
				addHit(geometry.Point2D{X: x, Y: y})
			}
		}
	}
	if math.Abs(dy) > geometry.Eps {
		for _, y := range []float64{BoxMin, BoxMax} {
			t := (y - p0.Y) / dy
			x := p0.X + t*dx
			if x >= BoxMin-geometry.DistTol && x <= BoxMax+geometry.DistTol {
				addHit(geometry.Point2D{X: x, Y: y})
			}
		}
	}

	if len(hits) < 2 {
		return p0, p1
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].proj < hits[j].proj })
	return hits[0].pos, hits[len(hits)-1].pos
}

// normalSpan is the half-length of a constructed normal, at least twice the
// box half-diagonal so the line always spans the visible plane.
var normalSpan = 2 * (BoxMax - BoxMin) / 2 * math.Sqrt2

// AddNormal constructs the perpendicular to the line at the given handle,
// passing through the given point, as an extended line spanning the plane.
func (s *Store) AddNormal(lineIdx int, through geometry.Point2D) (int, error) {
	line, ok := s.LineAt(lineIdx)
	if !ok {
		return -1, ErrInvalidHandle
	}
	dir := s.points[line.B].Pos.Sub(s.points[line.A].Pos)
	length := dir.Norm()
	if length < geometry.Eps {
		return -1, ErrDegenerateGeometry
	}
	n := dir.Perp().Scale(1 / length)
	a := through.Add(n.Scale(normalSpan))
	b := through.Sub(n.Scale(normalSpan))
	return s.AddExtendedLine(a, b, "")
}
