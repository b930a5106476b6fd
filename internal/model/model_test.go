package model

import (
	"errors"
	"testing"

	"geosketch/pkg/geometry"
)

func TestAddPointDeduplicates(t *testing.T) {
	s := NewStore()

	i, created := s.AddPoint(geometry.NewPoint2D(1, 2), "A")
	if !created || i != 0 {
		t.Fatalf("first add = (%d, %v), want (0, true)", i, created)
	}

	// Same coordinate within tolerance reuses the handle.
	j, created := s.AddPoint(geometry.NewPoint2D(1+1e-10, 2), "B")
	if created || j != i {
		t.Errorf("second add = (%d, %v), want (%d, false)", j, created, i)
	}
	if s.PointCount() != 1 {
		t.Errorf("point count = %d, want 1", s.PointCount())
	}

	// A clearly distinct coordinate creates a new point.
	k, created := s.AddPoint(geometry.NewPoint2D(1.001, 2), "")
	if !created || k != 1 {
		t.Errorf("third add = (%d, %v), want (1, true)", k, created)
	}
}

func TestAddLineValidation(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(0, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(1, 0), "")

	if _, err := s.AddLine(a, b, ""); err != nil {
		t.Fatalf("AddLine failed: %v", err)
	}
	if _, err := s.AddLine(a, a, ""); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("same-point line error = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := s.AddLine(a, 99, ""); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("out-of-range line error = %v, want ErrInvalidHandle", err)
	}
	// Duplicate detection is order-insensitive.
	if _, err := s.AddLine(b, a, ""); !errors.Is(err, ErrDuplicateLine) {
		t.Errorf("reversed duplicate error = %v, want ErrDuplicateLine", err)
	}
	if s.LineCount() != 1 {
		t.Errorf("line count = %d, want 1", s.LineCount())
	}
}

func TestAddCircle(t *testing.T) {
	s := NewStore()

	i, err := s.AddCircle(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(3, 4), "c")
	if err != nil {
		t.Fatalf("AddCircle failed: %v", err)
	}
	c, _ := s.CircleAt(i)
	if c.Radius != 5 {
		t.Errorf("radius = %v, want 5", c.Radius)
	}

	if _, err := s.AddCircle(geometry.NewPoint2D(1, 1), geometry.NewPoint2D(1, 1), ""); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("zero-radius error = %v, want ErrDegenerateGeometry", err)
	}
	if _, err := s.AddCircleWithRadius(geometry.NewPoint2D(0, 0), -1, ""); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("negative-radius error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestSetLabel(t *testing.T) {
	s := NewStore()
	s.AddPoint(geometry.NewPoint2D(0, 0), "")
	s.AddCircleWithRadius(geometry.NewPoint2D(0, 0), 1, "")

	if !s.SetLabel(KindPoint, 0, "origin") {
		t.Error("SetLabel on point failed")
	}
	p, _ := s.PointAt(0)
	if p.Label != "origin" {
		t.Errorf("label = %q, want %q", p.Label, "origin")
	}
	if s.SetLabel(KindLine, 0, "x") {
		t.Error("SetLabel on missing line should fail")
	}
	if !s.SetLabel(KindCircle, 0, "unit") {
		t.Error("SetLabel on circle failed")
	}
}

func TestHitTest(t *testing.T) {
	s := NewStore()
	a, _ := s.AddPoint(geometry.NewPoint2D(0, 0), "")
	b, _ := s.AddPoint(geometry.NewPoint2D(2, 0), "")
	s.AddLine(a, b, "")
	s.AddExtendedLine(geometry.NewPoint2D(-5, 1), geometry.NewPoint2D(5, 1), "")
	s.AddCircleWithRadius(geometry.NewPoint2D(0, 0), 3, "")

	// Point wins over the line passing through it.
	kind, idx, ok := s.HitTest(geometry.NewPoint2D(0.05, 0.05), 0.1)
	if !ok || kind != KindPoint || idx != a {
		t.Errorf("hit = (%v, %d, %v), want point %d", kind, idx, ok, a)
	}

	kind, _, ok = s.HitTest(geometry.NewPoint2D(1, 0.05), 0.1)
	if !ok || kind != KindLine {
		t.Errorf("hit = (%v, %v), want line", kind, ok)
	}

	kind, _, ok = s.HitTest(geometry.NewPoint2D(3.5, 1.02), 0.1)
	if !ok || kind != KindExtendedLine {
		t.Errorf("hit = (%v, %v), want extended line", kind, ok)
	}

	kind, _, ok = s.HitTest(geometry.NewPoint2D(0, 3.05), 0.1)
	if !ok || kind != KindCircle {
		t.Errorf("hit = (%v, %v), want circle", kind, ok)
	}

	if _, _, ok := s.HitTest(geometry.NewPoint2D(4.5, 4.5), 0.1); ok {
		t.Error("hit in empty space should miss")
	}
}
