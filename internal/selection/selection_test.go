package selection

import (
	"reflect"
	"testing"

	"geosketch/internal/model"
)

func TestPickReplacesWithoutModifier(t *testing.T) {
	s := New()
	s.Pick(model.KindPoint, 0, false)
	s.Pick(model.KindLine, 2, false)

	if s.PointCount() != 0 || s.LineCount() != 1 {
		t.Errorf("counts = (%d points, %d lines), want (0, 1)", s.PointCount(), s.LineCount())
	}
	if !s.IsSelected(model.KindLine, 2) {
		t.Error("line 2 should be selected")
	}
}

func TestPickToggleWithModifier(t *testing.T) {
	s := New()
	s.Pick(model.KindPoint, 1, false)
	s.Pick(model.KindPoint, 3, true)
	s.Pick(model.KindCircle, 0, true)

	if s.TotalCount() != 3 {
		t.Fatalf("total = %d, want 3", s.TotalCount())
	}

	// Toggling an already-selected handle removes it.
	s.Pick(model.KindPoint, 1, true)
	if s.IsSelected(model.KindPoint, 1) {
		t.Error("point 1 should be deselected")
	}
	if got := s.PointsOrdered(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("order = %v, want [3]", got)
	}
}

func TestPointOrderTracksSelection(t *testing.T) {
	s := New()
	s.Pick(model.KindPoint, 5, false)
	s.Pick(model.KindPoint, 2, true)
	s.Pick(model.KindPoint, 9, true)

	if got := s.PointsOrdered(); !reflect.DeepEqual(got, []int{5, 2, 9}) {
		t.Errorf("order = %v, want [5 2 9]", got)
	}
	// Ascending accessor sorts regardless of pick order.
	if got := s.Points(); !reflect.DeepEqual(got, []int{2, 5, 9}) {
		t.Errorf("sorted = %v, want [2 5 9]", got)
	}

	// A plain pick resets the order to the single handle.
	s.Pick(model.KindPoint, 7, false)
	if got := s.PointsOrdered(); !reflect.DeepEqual(got, []int{7}) {
		t.Errorf("order after replace = %v, want [7]", got)
	}
}

func TestPickNothing(t *testing.T) {
	s := New()
	s.Pick(model.KindPoint, 1, false)
	s.Pick(model.KindCircle, 0, true)

	// With the modifier held, clicking empty space keeps the selection.
	s.PickNothing(true)
	if s.TotalCount() != 2 {
		t.Errorf("total = %d, want 2", s.TotalCount())
	}

	s.PickNothing(false)
	if s.TotalCount() != 0 {
		t.Errorf("total after clear = %d, want 0", s.TotalCount())
	}
	if len(s.PointsOrdered()) != 0 {
		t.Error("point order should be empty after clear")
	}
}

func TestHeterogeneousSelection(t *testing.T) {
	s := New()
	s.Pick(model.KindLine, 0, false)
	s.Pick(model.KindCircle, 1, true)

	refs := s.Refs()
	if len(refs) != 2 {
		t.Fatalf("refs = %v", refs)
	}
	want := []Ref{{Kind: model.KindLine, Index: 0}, {Kind: model.KindCircle, Index: 1}}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %v, want %v", refs, want)
	}
}
