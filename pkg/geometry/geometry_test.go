package geometry

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := NewPoint2D(1, 2)
	b := NewPoint2D(4, 6)

	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Add(b); got != (Point2D{5, 8}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Point2D{3, 4}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Point2D{2, 4}) {
		t.Errorf("Scale = %v", got)
	}
	if got := (Point2D{3, 4}).Norm(); got != 5 {
		t.Errorf("Norm = %v, want 5", got)
	}
	if got := (Point2D{1, 0}).Perp(); got != (Point2D{0, 1}) {
		t.Errorf("Perp = %v, want (0,1)", got)
	}
}

func TestSamePoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		want bool
	}{
		{"identical", Point2D{1, 1}, Point2D{1, 1}, true},
		{"within eps", Point2D{1, 1}, Point2D{1 + 1e-10, 1 - 1e-10}, true},
		{"x differs", Point2D{1, 1}, Point2D{1.001, 1}, false},
		{"y differs", Point2D{1, 1}, Point2D{1, 1.001}, false},
	}
	for _, tt := range tests {
		if got := SamePoint(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: SamePoint = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProjectParam(t *testing.T) {
	a := Point2D{0, 0}
	b := Point2D{2, 0}

	tt, ok := ProjectParam(Point2D{1, 5}, a, b)
	if !ok || math.Abs(tt-0.5) > 1e-12 {
		t.Errorf("ProjectParam = %v, %v, want 0.5, true", tt, ok)
	}

	// Beyond the segment end
	tt, ok = ProjectParam(Point2D{4, -1}, a, b)
	if !ok || math.Abs(tt-2) > 1e-12 {
		t.Errorf("ProjectParam = %v, %v, want 2, true", tt, ok)
	}

	// Degenerate line
	if _, ok := ProjectParam(Point2D{1, 1}, a, a); ok {
		t.Error("ProjectParam on degenerate line should fail")
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := Point2D{0, 0}
	b := Point2D{10, 0}

	if got := DistanceToSegment(Point2D{5, 3}, a, b); math.Abs(got-3) > 1e-12 {
		t.Errorf("interior distance = %v, want 3", got)
	}
	// Clamped to endpoint
	if got := DistanceToSegment(Point2D{13, 4}, a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("endpoint distance = %v, want 5", got)
	}
}

func TestOnCircle(t *testing.T) {
	c := Point2D{0, 0}
	if !OnCircle(Point2D{1, 0}, c, 1, DistTol) {
		t.Error("point on circle not detected")
	}
	if OnCircle(Point2D{1.1, 0}, c, 1, DistTol) {
		t.Error("point off circle detected as on")
	}
}

func TestAffineTransformRoundTrip(t *testing.T) {
	// World-to-screen mapping: scale, flip Y, translate.
	tr := Translation(200, 150).Compose(Scaling(30, -30))
	p := Point2D{1.5, -2}
	mapped := tr.Apply(p)

	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("transform should be invertible")
	}
	back := inv.Apply(mapped)
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{-1, 2}, {3, -4}, {0, 0}}
	r := BoundingBox(pts)
	want := Rect{X: -1, Y: -4, Width: 4, Height: 6}
	if r != want {
		t.Errorf("BoundingBox = %v, want %v", r, want)
	}
}
