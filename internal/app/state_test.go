package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"geosketch/internal/config"
	"geosketch/internal/model"
	"geosketch/pkg/geometry"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Autosave = false
	return NewState(cfg, zap.NewNop())
}

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func TestPlacePointRecordsAndLabels(t *testing.T) {
	s := newTestState(t)
	s.StartRecording()
	if got := s.NextPointLabel(); got != "P1" {
		t.Fatalf("label = %q", got)
	}
	if !s.PlacePoint(pt(1, 2), s.NextPointLabel(), false) {
		t.Fatal("point not created")
	}
	if got := s.NextPointLabel(); got != "P2" {
		t.Fatalf("label after add = %q", got)
	}
	// Clicking the same coordinate reuses the point and records nothing.
	if s.PlacePoint(pt(1, 2), "", false) {
		t.Fatal("duplicate coordinate created a point")
	}
	cmds := s.Rec.Commands()
	if len(cmds) != 1 || cmds[0] != "addPoint:1.00000000,2.00000000" {
		t.Fatalf("recorded %v", cmds)
	}
}

func TestRecordReplayRoundTrip(t *testing.T) {
	s := newTestState(t)
	s.StartRecording()
	s.PlacePoint(pt(0, 0), "", false)
	s.PlacePoint(pt(1, 0), "", true)
	if err := s.Connect(); err != nil {
		t.Fatal(err)
	}
	s.StopRecording()

	s.Ops.DeleteAll()
	if s.Store.PointCount() != 0 {
		t.Fatal("model not cleared")
	}

	s.Replay(nil)
	if s.Store.PointCount() != 2 || s.Store.LineCount() != 1 {
		t.Fatalf("points=%d lines=%d", s.Store.PointCount(), s.Store.LineCount())
	}
}

func TestReplayDoesNotReRecord(t *testing.T) {
	s := newTestState(t)
	s.StartRecording()
	s.PlacePoint(pt(0, 0), "", false)
	s.StopRecording()
	before := s.Rec.Len()

	s.Ops.DeleteAll()
	s.Replay(nil)
	if s.Rec.Len() != before {
		t.Fatalf("log grew from %d to %d during replay", before, s.Rec.Len())
	}
}

func TestDeleteSelectedRecordsPayloadBeforeDeletion(t *testing.T) {
	s := newTestState(t)
	s.PlacePoint(pt(0, 0), "", false)
	s.PlacePoint(pt(1, 0), "", true)
	s.Connect()

	s.StartRecording()
	s.Select(model.KindLine, 0, false)
	if !s.DeleteSelected() {
		t.Fatal("delete reported no change")
	}
	cmds := s.Rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %v", cmds)
	}
	if !strings.HasPrefix(cmds[0], "deleteSelected;L=") {
		t.Fatalf("command %q lacks the line payload", cmds[0])
	}
}

func TestDeleteSelectedEmptySelectionNotRecorded(t *testing.T) {
	s := newTestState(t)
	s.StartRecording()
	if s.DeleteSelected() {
		t.Fatal("empty deletion reported change")
	}
	if s.Rec.Len() != 0 {
		t.Fatalf("recorded %v", s.Rec.Commands())
	}
}

func TestEventsFireOnMutation(t *testing.T) {
	s := newTestState(t)
	modelChanges := 0
	var recStates []bool
	s.On(EventModelChanged, func(interface{}) { modelChanges++ })
	s.On(EventRecordingChanged, func(d interface{}) { recStates = append(recStates, d.(bool)) })

	s.PlacePoint(pt(0, 0), "", false)
	if modelChanges != 1 {
		t.Fatalf("model changes = %d", modelChanges)
	}
	if !s.ToggleRecording() {
		t.Fatal("toggle did not start recording")
	}
	if s.ToggleRecording() {
		t.Fatal("toggle did not stop recording")
	}
	if len(recStates) != 2 || !recStates[0] || recStates[1] {
		t.Fatalf("recording events = %v", recStates)
	}
}

func TestReplayStepEvents(t *testing.T) {
	s := newTestState(t)
	s.Rec.SetCommands([]string{
		"addPoint:0.00000000,0.00000000",
		"addPoint:1.00000000,1.00000000",
	})
	var steps []ReplayStep
	s.On(EventReplayStep, func(d interface{}) { steps = append(steps, d.(ReplayStep)) })
	yields := 0
	s.Replay(func() { yields++ })

	if len(steps) != 2 || steps[0].Index != 0 || steps[1].Total != 2 {
		t.Fatalf("steps = %v", steps)
	}
	if yields != 1 {
		t.Fatalf("yields = %d", yields)
	}
}

func TestAutosaveWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Autosave = true
	cfg.Storage.AutosavePath = filepath.Join(t.TempDir(), "points.json")
	s := NewState(cfg, zap.NewNop())

	s.PlacePoint(pt(0.5, -0.5), "", false)
	data, err := os.ReadFile(cfg.Storage.AutosavePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\"points\"") {
		t.Fatalf("autosave content: %s", data)
	}
}

func TestOpenDiagramClearsModifiedAndTracksPath(t *testing.T) {
	s := newTestState(t)
	path := filepath.Join(t.TempDir(), "diagram.json")
	s.PlacePoint(pt(0, 0), "", false)
	if err := s.SaveDiagram(path); err != nil {
		t.Fatal(err)
	}
	if s.Modified {
		t.Fatal("save left diagram modified")
	}

	s.PlacePoint(pt(2, 2), "", false)
	if !s.Modified {
		t.Fatal("mutation did not mark modified")
	}
	if err := s.OpenDiagram(path); err != nil {
		t.Fatal(err)
	}
	if s.Modified || s.DiagramPath != path {
		t.Fatalf("modified=%v path=%q", s.Modified, s.DiagramPath)
	}
	if s.Store.PointCount() != 1 {
		t.Fatalf("points = %d, want 1", s.Store.PointCount())
	}
}

func TestReplaySerializesConcurrentClicks(t *testing.T) {
	s := newTestState(t)
	s.StartRecording()
	for i := 0; i < 40; i++ {
		s.PlacePoint(pt(float64(i%8)-3.5, float64(i/8)-2.5), "", false)
	}
	s.StopRecording()
	s.DeleteAll()

	done := make(chan struct{})
	go func() {
		s.Replay(nil)
		close(done)
	}()
	// Simulated canvas input while the replay runs: picks, hit tests, and
	// empty-space clicks must serialize with replayed commands.
	for i := 0; ; i++ {
		select {
		case <-done:
			if got := s.Store.PointCount(); got != 40 {
				t.Fatalf("points after replay = %d, want 40", got)
			}
			return
		default:
		}
		s.Select(model.KindPoint, i%4, i%2 == 0)
		s.HitTest(pt(0, 0), 0.5)
		s.SelectNothing(false)
	}
}
