// Package model owns the constructed geometry: points, lines, extended
// lines, and circles, addressed by dense integer handles.
package model

import (
	"errors"

	"geosketch/pkg/geometry"
)

// The construction plane is clipped to a fixed box, [-5,5] on both axes.
const (
	BoxMin = -5.0
	BoxMax = 5.0
)

// Kind identifies an entity collection.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindExtendedLine
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindExtendedLine:
		return "extendedLine"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

var (
	// ErrDuplicateLine is returned when an unordered point pair is already
	// connected.
	ErrDuplicateLine = errors.New("line between those points already exists")

	// ErrDegenerateGeometry is returned for zero-length directions,
	// coincident endpoints, and non-positive radii.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrInvalidHandle is returned when a handle does not address a live
	// entity.
	ErrInvalidHandle = errors.New("invalid entity handle")
)

// Point is a labeled position on the plane.
type Point struct {
	Pos   geometry.Point2D
	Label string
}

// Line is a finite segment between two point handles. Undirected for
// duplicate detection: Line(a,b) and Line(b,a) are the same line.
type Line struct {
	A, B  int
	Label string
}

// ExtendedLine stores two literal endpoint coordinates, the result of
// clipping a line's direction through the plane box. It keeps no reference
// to the points it came from.
type ExtendedLine struct {
	A, B  geometry.Point2D
	Label string
}

// Circle is a center plus a strictly positive radius.
type Circle struct {
	Center geometry.Point2D
	Radius float64
	Label  string
}

// Store is the sole owner of all constructed entities. Handles are positions
// in the per-kind slices and stay stable until a deletion compacts them.
type Store struct {
	points   []Point
	lines    []Line
	extended []ExtendedLine
	circles  []Circle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// PointCount returns the number of points.
func (s *Store) PointCount() int { return len(s.points) }

// LineCount returns the number of finite lines.
func (s *Store) LineCount() int { return len(s.lines) }

// ExtendedLineCount returns the number of extended lines.
func (s *Store) ExtendedLineCount() int { return len(s.extended) }

// CircleCount returns the number of circles.
func (s *Store) CircleCount() int { return len(s.circles) }

// PointAt returns the point at the given handle.
func (s *Store) PointAt(i int) (Point, bool) {
	if i < 0 || i >= len(s.points) {
		return Point{}, false
	}
	return s.points[i], true
}

// LineAt returns the line at the given handle.
func (s *Store) LineAt(i int) (Line, bool) {
	if i < 0 || i >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[i], true
}

// LineEndpoints returns the endpoint coordinates of the line at the given
// handle.
func (s *Store) LineEndpoints(i int) (a, b geometry.Point2D, ok bool) {
	line, ok := s.LineAt(i)
	if !ok {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	return s.points[line.A].Pos, s.points[line.B].Pos, true
}

// ExtendedLineAt returns the extended line at the given handle.
func (s *Store) ExtendedLineAt(i int) (ExtendedLine, bool) {
	if i < 0 || i >= len(s.extended) {
		return ExtendedLine{}, false
	}
	return s.extended[i], true
}

// CircleAt returns the circle at the given handle.
func (s *Store) CircleAt(i int) (Circle, bool) {
	if i < 0 || i >= len(s.circles) {
		return Circle{}, false
	}
	return s.circles[i], true
}

// Points returns a copy of the point collection.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Lines returns a copy of the line collection.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ExtendedLines returns a copy of the extended line collection.
func (s *Store) ExtendedLines() []ExtendedLine {
	out := make([]ExtendedLine, len(s.extended))
	copy(out, s.extended)
	return out
}

// Circles returns a copy of the circle collection.
func (s *Store) Circles() []Circle {
	out := make([]Circle, len(s.circles))
	copy(out, s.circles)
	return out
}

// FindPoint returns the handle of the point at pos, matched per axis within
// geometry.Eps, or -1.
func (s *Store) FindPoint(pos geometry.Point2D) int {
	for i := range s.points {
		if geometry.SamePoint(s.points[i].Pos, pos) {
			return i
		}
	}
	return -1
}

// AddPoint adds a point at pos unless one already exists there. Returns the
// handle of the new or existing point and whether a point was created.
func (s *Store) AddPoint(pos geometry.Point2D, label string) (int, bool) {
	if i := s.FindPoint(pos); i >= 0 {
		return i, false
	}
	s.points = append(s.points, Point{Pos: pos, Label: label})
	return len(s.points) - 1, true
}

// HasLine reports whether the unordered point pair (a, b) is connected.
func (s *Store) HasLine(a, b int) bool {
	for _, line := range s.lines {
		if (line.A == a && line.B == b) || (line.A == b && line.B == a) {
			return true
		}
	}
	return false
}

// AddLine connects two point handles. The pair must be distinct, in range,
// and not already connected.
func (s *Store) AddLine(a, b int, label string) (int, error) {
	if a < 0 || a >= len(s.points) || b < 0 || b >= len(s.points) {
		return -1, ErrInvalidHandle
	}
	if a == b {
		return -1, ErrDegenerateGeometry
	}
	if s.HasLine(a, b) {
		return -1, ErrDuplicateLine
	}
	s.lines = append(s.lines, Line{A: a, B: b, Label: label})
	return len(s.lines) - 1, nil
}

// AddCircle adds a circle centered at center passing through edge.
func (s *Store) AddCircle(center, edge geometry.Point2D, label string) (int, error) {
	return s.AddCircleWithRadius(center, center.Distance(edge), label)
}

// AddCircleWithRadius adds a circle with an explicit radius.
func (s *Store) AddCircleWithRadius(center geometry.Point2D, radius float64, label string) (int, error) {
	if radius <= geometry.Eps {
		return -1, ErrDegenerateGeometry
	}
	s.circles = append(s.circles, Circle{Center: center, Radius: radius, Label: label})
	return len(s.circles) - 1, nil
}

// AddExtendedLine adds an extended line with literal endpoints.
func (s *Store) AddExtendedLine(a, b geometry.Point2D, label string) (int, error) {
	if geometry.SamePoint(a, b) {
		return -1, ErrDegenerateGeometry
	}
	s.extended = append(s.extended, ExtendedLine{A: a, B: b, Label: label})
	return len(s.extended) - 1, nil
}

// SetLabel updates the label of one entity.
func (s *Store) SetLabel(kind Kind, i int, label string) bool {
	switch kind {
	case KindPoint:
		if i < 0 || i >= len(s.points) {
			return false
		}
		s.points[i].Label = label
	case KindLine:
		if i < 0 || i >= len(s.lines) {
			return false
		}
		s.lines[i].Label = label
	case KindExtendedLine:
		if i < 0 || i >= len(s.extended) {
			return false
		}
		s.extended[i].Label = label
	case KindCircle:
		if i < 0 || i >= len(s.circles) {
			return false
		}
		s.circles[i].Label = label
	default:
		return false
	}
	return true
}

// DeleteAll clears every collection.
func (s *Store) DeleteAll() {
	s.points = nil
	s.lines = nil
	s.extended = nil
	s.circles = nil
}
