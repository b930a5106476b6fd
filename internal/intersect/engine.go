package intersect

import (
	"geosketch/internal/model"
	"geosketch/pkg/geometry"
)

// Engine walks the store and materializes intersection points as new points,
// deduplicated through the store.
type Engine struct {
	store *model.Store
}

// NewEngine creates an engine over the given store.
func NewEngine(store *model.Store) *Engine {
	return &Engine{store: store}
}

// segRef is a line-shaped operand: finite lines are bounded, extended lines
// are not.
type segRef struct {
	a, b    geometry.Point2D
	bounded bool
}

func (e *Engine) lineRef(i int) (segRef, bool) {
	a, b, ok := e.store.LineEndpoints(i)
	return segRef{a: a, b: b, bounded: true}, ok
}

func (e *Engine) extendedRef(i int) (segRef, bool) {
	ext, ok := e.store.ExtendedLineAt(i)
	return segRef{a: ext.A, b: ext.B}, ok
}

func (e *Engine) emit(points []geometry.Point2D) bool {
	added := false
	for _, p := range points {
		if _, created := e.store.AddPoint(p, ""); created {
			added = true
		}
	}
	return added
}

func segSeg(p, q segRef) []geometry.Point2D {
	if hit, ok := SegmentIntersection(p.a, p.b, q.a, q.b, p.bounded, q.bounded); ok {
		return []geometry.Point2D{hit}
	}
	return nil
}

// ForLine intersects the line at the given handle with every other entity.
func (e *Engine) ForLine(i int) bool {
	ref, ok := e.lineRef(i)
	if !ok {
		return false
	}
	return e.forSegment(ref, model.KindLine, i)
}

// ForExtendedLine intersects the extended line at the given handle with
// every other entity.
func (e *Engine) ForExtendedLine(i int) bool {
	ref, ok := e.extendedRef(i)
	if !ok {
		return false
	}
	return e.forSegment(ref, model.KindExtendedLine, i)
}

func (e *Engine) forSegment(ref segRef, kind model.Kind, idx int) bool {
	added := false
	for j := 0; j < e.store.LineCount(); j++ {
		if kind == model.KindLine && j == idx {
			continue
		}
		other, _ := e.lineRef(j)
		if e.emit(segSeg(ref, other)) {
			added = true
		}
	}
	for j := 0; j < e.store.ExtendedLineCount(); j++ {
		if kind == model.KindExtendedLine && j == idx {
			continue
		}
		other, _ := e.extendedRef(j)
		if e.emit(segSeg(ref, other)) {
			added = true
		}
	}
	for j := 0; j < e.store.CircleCount(); j++ {
		c, _ := e.store.CircleAt(j)
		if e.emit(SegmentCircleIntersections(ref.a, ref.b, c.Center, c.Radius, ref.bounded)) {
			added = true
		}
	}
	return added
}

// ForCircle intersects the circle at the given handle with every other
// entity.
func (e *Engine) ForCircle(i int) bool {
	c, ok := e.store.CircleAt(i)
	if !ok {
		return false
	}
	added := false
	for j := 0; j < e.store.LineCount(); j++ {
		ref, _ := e.lineRef(j)
		if e.emit(SegmentCircleIntersections(ref.a, ref.b, c.Center, c.Radius, true)) {
			added = true
		}
	}
	for j := 0; j < e.store.ExtendedLineCount(); j++ {
		ref, _ := e.extendedRef(j)
		if e.emit(SegmentCircleIntersections(ref.a, ref.b, c.Center, c.Radius, false)) {
			added = true
		}
	}
	for j := 0; j < e.store.CircleCount(); j++ {
		if j == i {
			continue
		}
		other, _ := e.store.CircleAt(j)
		if e.emit(CircleCircleIntersections(c.Center, c.Radius, other.Center, other.Radius)) {
			added = true
		}
	}
	return added
}

// RecomputeAll runs the per-entity pass for every line, extended line, and
// circle. Point deduplication in the store makes this idempotent.
func (e *Engine) RecomputeAll() bool {
	added := false
	for i := 0; i < e.store.LineCount(); i++ {
		if e.ForLine(i) {
			added = true
		}
	}
	for i := 0; i < e.store.ExtendedLineCount(); i++ {
		if e.ForExtendedLine(i) {
			added = true
		}
	}
	for i := 0; i < e.store.CircleCount(); i++ {
		if e.ForCircle(i) {
			added = true
		}
	}
	return added
}
