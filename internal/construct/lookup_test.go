package construct

import (
	"testing"

	"geosketch/internal/model"
)

func TestSelectPointByPosition(t *testing.T) {
	o := newOps()
	o.AddPointAt(pt(1, 2), "", false, false)

	// Matches within the dedup distance, e.g. 8-digit fixed-point rounding.
	if !o.SelectPointByPosition(pt(1.0000000049, 2), false) {
		t.Fatal("point not matched")
	}
	if !o.Sel.IsSelected(model.KindPoint, 0) {
		t.Error("point not selected")
	}
	if o.SelectPointByPosition(pt(1.01, 2), false) {
		t.Error("distant coordinate should not match")
	}
}

func TestSelectLineByEndpoints(t *testing.T) {
	o := newOps()
	o.AddPointAt(pt(0, 0), "", true, false)
	o.AddPointAt(pt(2, 2), "", true, true)
	li, _ := o.ConnectSelected()
	o.ClearSelection()

	// Endpoint order does not matter.
	if !o.SelectLineByEndpoints(pt(2, 2), pt(0, 0), false) {
		t.Fatal("line not matched")
	}
	if !o.Sel.IsSelected(model.KindLine, li) {
		t.Error("line not selected")
	}
	if o.SelectLineByEndpoints(pt(0, 0), pt(3, 3), false) {
		t.Error("wrong endpoints should not match")
	}
}

func TestSelectExtendedLineByEndpoints(t *testing.T) {
	o := newOps()
	o.Store.AddExtendedLine(pt(-5, 1), pt(5, 1), "")

	if !o.SelectExtendedLineByEndpoints(pt(5, 1), pt(-5, 1), false) {
		t.Fatal("extended line not matched")
	}
	if !o.Sel.IsSelected(model.KindExtendedLine, 0) {
		t.Error("extended line not selected")
	}
}

func TestSelectCircleByCenterRadius(t *testing.T) {
	o := newOps()
	o.Store.AddCircleWithRadius(pt(0, 0), 2.5, "")

	if !o.SelectCircleByCenterRadius(pt(0, 0), 2.5, false) {
		t.Fatal("circle not matched")
	}
	if o.SelectCircleByCenterRadius(pt(0, 0), 2.6, false) {
		t.Error("wrong radius should not match")
	}
	if o.SelectCircleByCenterRadius(pt(1, 0), 2.5, false) {
		t.Error("wrong center should not match")
	}
}
