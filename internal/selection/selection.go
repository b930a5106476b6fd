// Package selection tracks which entities are selected, per entity kind,
// and the order in which points were selected.
package selection

import (
	"sort"

	"geosketch/internal/model"
)

// Selection holds one set of selected handles per entity kind plus the
// insertion order of selected points. Circle and line construction are
// order-sensitive: the first-selected point is the circle center or the
// line's first endpoint.
type Selection struct {
	points   map[int]struct{}
	lines    map[int]struct{}
	extended map[int]struct{}
	circles  map[int]struct{}

	pointOrder []int
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{
		points:   make(map[int]struct{}),
		lines:    make(map[int]struct{}),
		extended: make(map[int]struct{}),
		circles:  make(map[int]struct{}),
	}
}

func (s *Selection) set(kind model.Kind) map[int]struct{} {
	switch kind {
	case model.KindPoint:
		return s.points
	case model.KindLine:
		return s.lines
	case model.KindExtendedLine:
		return s.extended
	case model.KindCircle:
		return s.circles
	default:
		return nil
	}
}

// Pick handles a pick event on an entity. Without the add modifier the
// previous selection is replaced; with it, membership of the picked entity
// is toggled.
func (s *Selection) Pick(kind model.Kind, i int, add bool) {
	if !add {
		s.Clear()
	}
	set := s.set(kind)
	if set == nil || i < 0 {
		return
	}
	if _, selected := set[i]; selected && add {
		delete(set, i)
		if kind == model.KindPoint {
			s.removeFromOrder(i)
		}
		return
	}
	set[i] = struct{}{}
	if kind == model.KindPoint {
		s.pointOrder = append(s.pointOrder, i)
	}
}

// PickNothing handles a pick event that hit no entity. Without the add
// modifier it clears the selection.
func (s *Selection) PickNothing(add bool) {
	if !add {
		s.Clear()
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.points = make(map[int]struct{})
	s.lines = make(map[int]struct{})
	s.extended = make(map[int]struct{})
	s.circles = make(map[int]struct{})
	s.pointOrder = s.pointOrder[:0]
}

func (s *Selection) removeFromOrder(i int) {
	for k, v := range s.pointOrder {
		if v == i {
			s.pointOrder = append(s.pointOrder[:k], s.pointOrder[k+1:]...)
			return
		}
	}
}

// IsSelected reports whether the entity is selected.
func (s *Selection) IsSelected(kind model.Kind, i int) bool {
	set := s.set(kind)
	if set == nil {
		return false
	}
	_, ok := set[i]
	return ok
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Points returns the selected point handles in ascending order.
func (s *Selection) Points() []int { return sortedKeys(s.points) }

// Lines returns the selected line handles in ascending order.
func (s *Selection) Lines() []int { return sortedKeys(s.lines) }

// ExtendedLines returns the selected extended line handles in ascending order.
func (s *Selection) ExtendedLines() []int { return sortedKeys(s.extended) }

// Circles returns the selected circle handles in ascending order.
func (s *Selection) Circles() []int { return sortedKeys(s.circles) }

// PointsOrdered returns the selected point handles in the order they were
// picked.
func (s *Selection) PointsOrdered() []int {
	out := make([]int, len(s.pointOrder))
	copy(out, s.pointOrder)
	return out
}

// PointCount returns the number of selected points.
func (s *Selection) PointCount() int { return len(s.points) }

// LineCount returns the number of selected lines.
func (s *Selection) LineCount() int { return len(s.lines) }

// ExtendedLineCount returns the number of selected extended lines.
func (s *Selection) ExtendedLineCount() int { return len(s.extended) }

// CircleCount returns the number of selected circles.
func (s *Selection) CircleCount() int { return len(s.circles) }

// TotalCount sums the selected entities across all kinds.
func (s *Selection) TotalCount() int {
	return len(s.points) + len(s.lines) + len(s.extended) + len(s.circles)
}

// Refs returns every selected entity as (kind, handle) pairs, points first.
func (s *Selection) Refs() []Ref {
	var refs []Ref
	for _, i := range s.Points() {
		refs = append(refs, Ref{Kind: model.KindPoint, Index: i})
	}
	for _, i := range s.Lines() {
		refs = append(refs, Ref{Kind: model.KindLine, Index: i})
	}
	for _, i := range s.ExtendedLines() {
		refs = append(refs, Ref{Kind: model.KindExtendedLine, Index: i})
	}
	for _, i := range s.Circles() {
		refs = append(refs, Ref{Kind: model.KindCircle, Index: i})
	}
	return refs
}

// Ref identifies one selected entity.
type Ref struct {
	Kind  model.Kind
	Index int
}
