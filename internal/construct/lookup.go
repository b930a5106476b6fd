package construct

import (
	"math"

	"geosketch/internal/model"
	"geosketch/pkg/geometry"
)

// Geometric re-selection, used by macro replay: recorded commands carry
// literal coordinates, never handles, so the matching live entity is found
// by coordinate comparison within the deduplication tolerance.

// SelectPointByPosition selects the point at pos, if one exists.
func (o *Ops) SelectPointByPosition(pos geometry.Point2D, add bool) bool {
	for i, p := range o.Store.Points() {
		if geometry.NearPoint(p.Pos, pos) {
			o.Sel.Pick(model.KindPoint, i, add)
			return true
		}
	}
	return false
}

func sameEndpoints(a1, b1, a2, b2 geometry.Point2D) bool {
	if geometry.NearPoint(a1, a2) && geometry.NearPoint(b1, b2) {
		return true
	}
	return geometry.NearPoint(a1, b2) && geometry.NearPoint(b1, a2)
}

// SelectLineByEndpoints selects the line whose endpoints match the given
// unordered coordinate pair.
func (o *Ops) SelectLineByEndpoints(a, b geometry.Point2D, add bool) bool {
	for i := 0; i < o.Store.LineCount(); i++ {
		la, lb, _ := o.Store.LineEndpoints(i)
		if sameEndpoints(la, lb, a, b) {
			o.Sel.Pick(model.KindLine, i, add)
			return true
		}
	}
	return false
}

// SelectExtendedLineByEndpoints selects the extended line whose endpoints
// match the given unordered coordinate pair.
func (o *Ops) SelectExtendedLineByEndpoints(a, b geometry.Point2D, add bool) bool {
	for i, e := range o.Store.ExtendedLines() {
		if sameEndpoints(e.A, e.B, a, b) {
			o.Sel.Pick(model.KindExtendedLine, i, add)
			return true
		}
	}
	return false
}

// SelectCircleByCenterRadius selects the circle matching center and radius.
func (o *Ops) SelectCircleByCenterRadius(center geometry.Point2D, radius float64, add bool) bool {
	for i, c := range o.Store.Circles() {
		if geometry.NearPoint(c.Center, center) && math.Abs(c.Radius-radius) <= geometry.DistTol {
			o.Sel.Pick(model.KindCircle, i, add)
			return true
		}
	}
	return false
}
