// Package app provides application lifecycle management, configuration, and events.
package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"geosketch/internal/config"
	"geosketch/internal/construct"
	"geosketch/internal/macro"
	"geosketch/internal/model"
	"geosketch/internal/selection"
	"geosketch/pkg/geometry"
)

// EventType identifies different application events.
type EventType int

const (
	EventDiagramLoaded EventType = iota
	EventDiagramSaved
	EventModelChanged
	EventSelectionChanged
	EventModified
	EventRecordingChanged
	EventReplayStep
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the geometric model, the selection,
// the macro recorder, and configuration. It is the layer between the UI
// and the construction operations; the UI calls State methods so that
// recording, autosave, and change events stay consistent.
type State struct {
	mu sync.RWMutex

	// opMu serializes entry into the construction core. Mutating
	// operations hold the write lock; rendering and hit-testing hold the
	// read lock. Replay holds the write lock around each command, so a
	// canvas click landing during the playback pause waits instead of
	// interleaving with a half-applied command.
	opMu sync.RWMutex

	Store *model.Store
	Sel   *selection.Selection
	Ops   *construct.Ops
	Rec   *macro.Recorder
	Cfg   *config.Config
	Log   *zap.Logger

	DiagramPath string
	Modified    bool

	labelSeq  int
	replaying bool

	listeners map[EventType][]EventListener
}

// NewState creates a new application state.
func NewState(cfg *config.Config, log *zap.Logger) *State {
	store := model.NewStore()
	sel := selection.New()
	return &State{
		Store:     store,
		Sel:       sel,
		Ops:       construct.NewOps(store, sel),
		Rec:       macro.NewRecorder(),
		Cfg:       cfg,
		Log:       log,
		labelSeq:  1,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the diagram as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// record appends a command when a recording is active. Replay never
// re-records its own commands.
func (s *State) record(cmd string) {
	s.mu.RLock()
	replaying := s.replaying
	s.mu.RUnlock()
	if replaying {
		return
	}
	s.Rec.Append(cmd)
}

// modelChanged runs the bookkeeping every successful mutation shares:
// resync the auto-label counter, autosave, and notify listeners.
func (s *State) modelChanged() {
	s.mu.Lock()
	s.labelSeq = s.Store.PointCount() + 1
	s.mu.Unlock()

	if s.Cfg.Storage.Autosave && s.Cfg.Storage.AutosavePath != "" {
		if err := s.Store.SaveFile(s.Cfg.Storage.AutosavePath); err != nil {
			s.Log.Warn("autosave failed",
				zap.String("path", s.Cfg.Storage.AutosavePath), zap.Error(err))
		}
	}
	s.Emit(EventModelChanged, nil)
	s.SetModified(true)
}

// NextPointLabel returns the next auto label for a clicked point.
func (s *State) NextPointLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("P%d", s.labelSeq)
}

// PlacePoint adds a point and selects it. Reports whether a new point was
// created; clicking an existing coordinate reuses that point.
func (s *State) PlacePoint(pos geometry.Point2D, label string, add bool) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	_, created := s.Ops.AddPointAt(pos, label, true, add)
	if created {
		s.record(macro.AddPointCommand(pos))
		s.modelChanged()
	}
	s.Emit(EventSelectionChanged, nil)
	return created
}

// HitTest reports the topmost entity within tol of pos.
func (s *State) HitTest(pos geometry.Point2D, tol float64) (model.Kind, int, bool) {
	s.opMu.RLock()
	defer s.opMu.RUnlock()
	return s.Store.HitTest(pos, tol)
}

// SelectionCount reports how many entities are selected.
func (s *State) SelectionCount() int {
	s.opMu.RLock()
	defer s.opMu.RUnlock()
	return s.Sel.TotalCount()
}

// Select picks an entity, replacing the selection unless add is set.
func (s *State) Select(kind model.Kind, index int, add bool) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.Sel.Pick(kind, index, add)
	s.Emit(EventSelectionChanged, nil)
}

// SelectNothing handles a click on empty space that should not place a
// point: without the add modifier it clears the selection.
func (s *State) SelectNothing(add bool) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.Sel.PickNothing(add)
	s.Emit(EventSelectionChanged, nil)
}

// Connect adds a line between the first two selected points.
func (s *State) Connect() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	a, b, ok := s.Ops.ConnectEndpoints()
	if _, err := s.Ops.ConnectSelected(); err != nil {
		return err
	}
	if ok {
		s.record(macro.AddLineCommand(a, b))
	}
	s.modelChanged()
	return nil
}

// ExtendLines converts the selected finite lines to extended lines.
func (s *State) ExtendLines() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	if _, err := s.Ops.ExtendSelectedLines(); err != nil {
		return err
	}
	s.record(macro.ExtendLinesCommand())
	s.modelChanged()
	s.Emit(EventSelectionChanged, nil)
	return nil
}

// AddCircle builds a circle from the two selected points, first the
// center, second on the rim.
func (s *State) AddCircle() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	center, edge, ok := s.Ops.ConnectEndpoints()
	if _, err := s.Ops.CircleFromSelected(); err != nil {
		return err
	}
	if ok {
		s.record(macro.AddCircleCommand(center, edge))
	}
	s.modelChanged()
	return nil
}

// AddNormal constructs the perpendicular to the selected line through the
// selected point.
func (s *State) AddNormal() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	a, b, through, ok := s.Ops.SelectedNormalArgs()
	if _, err := s.Ops.NormalFromSelected(); err != nil {
		return err
	}
	if ok {
		s.record(macro.AddNormalCommand(a, b, through))
	}
	s.modelChanged()
	return nil
}

// Intersections materializes the crossing points of the two selected
// objects.
func (s *State) Intersections() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	changed := s.Ops.IntersectSelected()
	s.record(macro.IntersectionsCommand())
	if changed {
		s.modelChanged()
	}
}

// SetLabel renames the single selected entity.
func (s *State) SetLabel(label string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	if err := s.Ops.SetLabelForSelection(label); err != nil {
		return err
	}
	s.record(macro.SetLabelCommand(label))
	s.modelChanged()
	return nil
}

// DeleteSelected removes the selected entities. The command payload is
// captured before deletion so replay can re-select by geometry.
func (s *State) DeleteSelected() bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	cmd := macro.DeleteSelectedCommand(
		s.Ops.SelectedPointPositions(),
		s.Ops.SelectedLineEndpoints(),
		s.Ops.SelectedExtendedLineEndpoints(),
		s.Ops.SelectedCircleData(),
	)
	if !s.Ops.DeleteSelected() {
		return false
	}
	s.record(cmd)
	s.modelChanged()
	s.Emit(EventSelectionChanged, nil)
	return true
}

// DeleteAll clears the whole diagram.
func (s *State) DeleteAll() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.Ops.DeleteAll()
	s.record(macro.DeleteAllCommand())
	s.modelChanged()
	s.Emit(EventSelectionChanged, nil)
}

// OpenDiagram replaces the model from a diagram file.
func (s *State) OpenDiagram(path string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	if err := s.Ops.LoadDiagram(path); err != nil {
		return err
	}
	s.mu.Lock()
	s.DiagramPath = path
	s.labelSeq = s.Store.PointCount() + 1
	s.mu.Unlock()
	s.record(macro.OpenCommand(path))
	s.Emit(EventDiagramLoaded, path)
	s.Emit(EventModelChanged, nil)
	s.Emit(EventSelectionChanged, nil)
	s.SetModified(false)
	return nil
}

// SaveDiagram writes the model to a diagram file.
func (s *State) SaveDiagram(path string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	if err := s.Ops.SaveDiagram(path); err != nil {
		return err
	}
	s.mu.Lock()
	s.DiagramPath = path
	s.mu.Unlock()
	s.record(macro.SaveCommand(path))
	s.Emit(EventDiagramSaved, path)
	s.SetModified(false)
	return nil
}
