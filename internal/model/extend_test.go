package model

import (
	"math"
	"testing"

	"geosketch/pkg/geometry"
)

func TestExtendLineClipsToBox(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(-1, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(1, 0), "")
	li, _ := s.AddLine(a, b, "axis")

	if !s.ExtendLine(li) {
		t.Fatal("ExtendLine failed")
	}
	if s.LineCount() != 0 {
		t.Errorf("line count = %d, want 0 (line replaced)", s.LineCount())
	}
	if s.ExtendedLineCount() != 1 {
		t.Fatalf("extended count = %d, want 1", s.ExtendedLineCount())
	}
	e, _ := s.ExtendedLineAt(0)
	if e.Label != "axis" {
		t.Errorf("label = %q, want %q", e.Label, "axis")
	}
	// A horizontal line through y=0 clips to x = -5 .. 5, ordered by x.
	if e.A.X != BoxMin || e.B.X != BoxMax || e.A.Y != 0 || e.B.Y != 0 {
		t.Errorf("clipped endpoints = %v, %v", e.A, e.B)
	}
}

func TestExtendDiagonalLine(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(0, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(1, 1), "")
	li, _ := s.AddLine(a, b, "")
	s.ExtendLine(li)

	e, _ := s.ExtendedLineAt(0)
	// The diagonal passes through two box corners; corner hits on adjacent
	// edges deduplicate to a single crossing each.
	if e.A.Distance(geometry.NewPoint2D(BoxMin, BoxMin)) > 1e-9 ||
		e.B.Distance(geometry.NewPoint2D(BoxMax, BoxMax)) > 1e-9 {
		t.Errorf("clipped endpoints = %v, %v", e.A, e.B)
	}
}

func TestExtendVerticalLine(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(2, -1), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(2, 1), "")
	li, _ := s.AddLine(a, b, "")
	s.ExtendLine(li)

	e, _ := s.ExtendedLineAt(0)
	// Vertical direction: dominant axis is Y, endpoints ordered by y.
	if e.A.Y != BoxMin || e.B.Y != BoxMax || e.A.X != 2 || e.B.X != 2 {
		t.Errorf("clipped endpoints = %v, %v", e.A, e.B)
	}
}

func TestExtendLineOutsideBoxKeepsEndpoints(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(8, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(8, 1), "")
	li, _ := s.AddLine(a, b, "")
	s.ExtendLine(li)

	e, _ := s.ExtendedLineAt(0)
	if e.A != (geometry.Point2D{X: 8, Y: 0}) || e.B != (geometry.Point2D{X: 8, Y: 1}) {
		t.Errorf("endpoints = %v, %v, want originals kept", e.A, e.B)
	}
}

func TestAddNormal(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(-1, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(1, 0), "")
	li, _ := s.AddLine(a, b, "")

	through := geometry.NewPoint2D(0.5, 0)
	if _, err := s.AddNormal(li, through); err != nil {
		t.Fatalf("AddNormal failed: %v", err)
	}
	e, _ := s.ExtendedLineAt(0)

	// Perpendicular to a horizontal line is vertical through the point.
	if math.Abs(e.A.X-0.5) > 1e-9 || math.Abs(e.B.X-0.5) > 1e-9 {
		t.Errorf("normal endpoints = %v, %v, want x = 0.5", e.A, e.B)
	}
	halfDiagonal := (BoxMax - BoxMin) / 2 * math.Sqrt2
	if span := e.A.Distance(e.B); span < 2*halfDiagonal {
		t.Errorf("normal span = %v, want at least %v", span, 2*halfDiagonal)
	}

	if _, err := s.AddNormal(99, through); err == nil {
		t.Error("AddNormal with bad handle should fail")
	}
}
