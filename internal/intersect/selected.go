package intersect

import (
	"geosketch/internal/model"
	"geosketch/pkg/geometry"
)

// Ref identifies one selected entity by kind and handle.
type Ref struct {
	Kind  model.Kind
	Index int
}

// RecomputeSelected intersects exactly two selected objects, dispatching on
// the concrete type pair. A point paired with a line projects onto it (the
// projection parameter is clamped to the segment only for finite lines); a
// point paired with a circle is emitted only if it lies on the circle.
// Anything besides exactly two selected objects is a no-op.
func (e *Engine) RecomputeSelected(refs []Ref) bool {
	if len(refs) != 2 {
		return false
	}
	x, y := refs[0], refs[1]

	// Normalize so the point, if any, comes second, and a circle never
	// precedes a line.
	if x.Kind == model.KindPoint && y.Kind != model.KindPoint {
		x, y = y, x
	}
	if x.Kind == model.KindCircle && (y.Kind == model.KindLine || y.Kind == model.KindExtendedLine) {
		x, y = y, x
	}

	xSeg, xIsSeg := e.refSegment(x)
	ySeg, yIsSeg := e.refSegment(y)

	switch {
	case xIsSeg && yIsSeg:
		return e.emit(segSeg(xSeg, ySeg))

	case xIsSeg && y.Kind == model.KindCircle:
		c, ok := e.store.CircleAt(y.Index)
		if !ok {
			return false
		}
		return e.emit(SegmentCircleIntersections(xSeg.a, xSeg.b, c.Center, c.Radius, xSeg.bounded))

	case x.Kind == model.KindCircle && y.Kind == model.KindCircle:
		c0, ok0 := e.store.CircleAt(x.Index)
		c1, ok1 := e.store.CircleAt(y.Index)
		if !ok0 || !ok1 {
			return false
		}
		return e.emit(CircleCircleIntersections(c0.Center, c0.Radius, c1.Center, c1.Radius))

	case xIsSeg && y.Kind == model.KindPoint:
		p, ok := e.store.PointAt(y.Index)
		if !ok {
			return false
		}
		t, ok := geometry.ProjectParam(p.Pos, xSeg.a, xSeg.b)
		if !ok {
			return false
		}
		if xSeg.bounded {
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		return e.emit([]geometry.Point2D{geometry.PointAt(xSeg.a, xSeg.b, t)})

	case x.Kind == model.KindCircle && y.Kind == model.KindPoint:
		c, okC := e.store.CircleAt(x.Index)
		p, okP := e.store.PointAt(y.Index)
		if !okC || !okP {
			return false
		}
		if !geometry.OnCircle(p.Pos, c.Center, c.Radius, geometry.DistTol) {
			return false
		}
		return e.emit([]geometry.Point2D{p.Pos})
	}
	return false
}

func (e *Engine) refSegment(r Ref) (segRef, bool) {
	switch r.Kind {
	case model.KindLine:
		return e.lineRef(r.Index)
	case model.KindExtendedLine:
		return e.extendedRef(r.Index)
	default:
		return segRef{}, false
	}
}
