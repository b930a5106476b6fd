// Package construct implements the selection-driven construction operations:
// each validates the current selection, mutates the store, and lets the
// intersection engine materialize any new crossing points.
package construct

import (
	"errors"
	"fmt"

	"geosketch/internal/intersect"
	"geosketch/internal/model"
	"geosketch/internal/selection"
	"geosketch/pkg/geometry"
)

// ErrPrecondition is returned when the selection does not have the shape an
// operation requires. The model is left untouched.
var ErrPrecondition = errors.New("selection does not satisfy the operation")

// Ops binds the store, the selection, and the intersection engine into the
// operation surface the host UI and the macro player drive.
type Ops struct {
	Store *model.Store
	Sel   *selection.Selection
	Eng   *intersect.Engine
}

// NewOps creates the operation surface over a store and selection.
func NewOps(store *model.Store, sel *selection.Selection) *Ops {
	return &Ops{
		Store: store,
		Sel:   sel,
		Eng:   intersect.NewEngine(store),
	}
}

// AddPointAt places a point, reusing an existing one at the same coordinate.
// When selectIt is set the point becomes the selection (added to it when
// add is also set).
func (o *Ops) AddPointAt(pos geometry.Point2D, label string, selectIt, add bool) (int, bool) {
	i, created := o.Store.AddPoint(pos, label)
	if selectIt {
		o.Sel.Pick(model.KindPoint, i, add)
	}
	return i, created
}

// connectPair picks the two point handles an order-sensitive construction
// uses: the first two in pick order, falling back to the two lowest handles.
func (o *Ops) connectPair() (int, int, bool) {
	ordered := o.Sel.PointsOrdered()
	if len(ordered) < 2 {
		ordered = o.Sel.Points()
	}
	if len(ordered) < 2 {
		return 0, 0, false
	}
	return ordered[0], ordered[1], true
}

// ConnectSelected adds a line between the first two selected points.
func (o *Ops) ConnectSelected() (int, error) {
	if o.Sel.PointCount() < 2 {
		return -1, fmt.Errorf("connect: need at least two selected points: %w", ErrPrecondition)
	}
	a, b, ok := o.connectPair()
	if !ok || a == b {
		return -1, fmt.Errorf("connect: %w", model.ErrDegenerateGeometry)
	}
	i, err := o.Store.AddLine(a, b, "")
	if err != nil {
		return -1, fmt.Errorf("connect: %w", err)
	}
	o.Eng.ForLine(i)
	return i, nil
}

// ExtendSelectedLines converts every selected finite line to an extended
// line clipped through the plane box. Reports whether anything changed;
// fails if no finite line is selected (already-extended lines do not
// qualify, which keeps the operation idempotent).
func (o *Ops) ExtendSelectedLines() (bool, error) {
	lines := o.Sel.Lines()
	if len(lines) == 0 {
		return false, fmt.Errorf("extend: need at least one selected line: %w", ErrPrecondition)
	}
	changed := false
	var created []int
	// Highest handle first so earlier removals do not shift later ones.
	for i := len(lines) - 1; i >= 0; i-- {
		if o.Store.ExtendLine(lines[i]) {
			changed = true
			created = append(created, o.Store.ExtendedLineCount()-1)
		}
	}
	o.Sel.Clear()
	for _, e := range created {
		o.Eng.ForExtendedLine(e)
	}
	return changed, nil
}

// CircleFromSelected adds a circle from exactly two selected points: first
// picked is the center, second sets the radius.
func (o *Ops) CircleFromSelected() (int, error) {
	if o.Sel.PointCount() != 2 {
		return -1, fmt.Errorf("circle: need exactly two selected points: %w", ErrPrecondition)
	}
	ci, ei, _ := o.connectPair()
	center, _ := o.Store.PointAt(ci)
	edge, _ := o.Store.PointAt(ei)
	i, err := o.Store.AddCircle(center.Pos, edge.Pos, "")
	if err != nil {
		return -1, fmt.Errorf("circle: %w", err)
	}
	o.Eng.ForCircle(i)
	return i, nil
}

// NormalFromSelected constructs the perpendicular to the single selected
// line through the single selected point.
func (o *Ops) NormalFromSelected() (int, error) {
	if o.Sel.LineCount() != 1 || o.Sel.PointCount() != 1 {
		return -1, fmt.Errorf("normal: need exactly one line and one point: %w", ErrPrecondition)
	}
	li := o.Sel.Lines()[0]
	pi := o.Sel.Points()[0]
	p, ok := o.Store.PointAt(pi)
	if !ok {
		return -1, fmt.Errorf("normal: %w", model.ErrInvalidHandle)
	}
	i, err := o.Store.AddNormal(li, p.Pos)
	if err != nil {
		return -1, fmt.Errorf("normal: %w", err)
	}
	o.Eng.ForExtendedLine(i)
	return i, nil
}

// DeleteSelected removes every selected entity, cascading point deletions
// into their lines. Returns false when nothing is selected.
func (o *Ops) DeleteSelected() bool {
	if o.Sel.TotalCount() == 0 {
		return false
	}
	changed := o.Store.DeleteEntities(o.Sel.Points(), o.Sel.Lines(), o.Sel.ExtendedLines(), o.Sel.Circles())
	o.Sel.Clear()
	return changed
}

// DeleteAll clears the whole model and the selection.
func (o *Ops) DeleteAll() {
	o.Store.DeleteAll()
	o.Sel.Clear()
}

// SetLabelForSelection renames the single selected entity.
func (o *Ops) SetLabelForSelection(label string) error {
	if o.Sel.TotalCount() != 1 {
		return fmt.Errorf("label: need exactly one selected entity: %w", ErrPrecondition)
	}
	refs := o.Sel.Refs()
	if !o.Store.SetLabel(refs[0].Kind, refs[0].Index, label) {
		return model.ErrInvalidHandle
	}
	return nil
}

// IntersectSelected intersects exactly two selected objects of any kinds.
// Any other selection shape is a no-op. Reports whether a point was added.
func (o *Ops) IntersectSelected() bool {
	refs := o.Sel.Refs()
	pairs := make([]intersect.Ref, len(refs))
	for i, r := range refs {
		pairs[i] = intersect.Ref{Kind: r.Kind, Index: r.Index}
	}
	return o.Eng.RecomputeSelected(pairs)
}

// RecomputeAll re-runs intersection detection over the whole model.
func (o *Ops) RecomputeAll() bool {
	return o.Eng.RecomputeAll()
}

// ClearSelection deselects everything.
func (o *Ops) ClearSelection() {
	o.Sel.Clear()
}

// LoadDiagram replaces the model from a diagram file and clears the
// selection. A failed load leaves both untouched.
func (o *Ops) LoadDiagram(path string) error {
	if err := o.Store.LoadFile(path); err != nil {
		return err
	}
	o.Sel.Clear()
	return nil
}

// SaveDiagram writes the model to a diagram file.
func (o *Ops) SaveDiagram(path string) error {
	return o.Store.SaveFile(path)
}
