package app

import (
	"go.uber.org/zap"

	"geosketch/internal/macro"
)

// StartRecording begins a fresh macro recording.
func (s *State) StartRecording() {
	s.Rec.Start()
	s.Log.Info("macro recording started")
	s.Emit(EventRecordingChanged, true)
}

// StopRecording ends the active recording, keeping the command log.
func (s *State) StopRecording() {
	s.Rec.Stop()
	s.Log.Info("macro recording stopped", zap.Int("commands", s.Rec.Len()))
	s.Emit(EventRecordingChanged, false)
}

// ToggleRecording flips the recording state and reports the new one.
func (s *State) ToggleRecording() bool {
	if s.Rec.Recording() {
		s.StopRecording()
		return false
	}
	s.StartRecording()
	return true
}

// ReplayStep describes one executed command during playback.
type ReplayStep struct {
	Index   int
	Total   int
	Command string
}

// Replay runs the recorded command log against the model. An active
// recording stops first, and nothing executed during playback is
// re-recorded. The yield hook runs between commands; the host installs
// its playback pause there, tests pass nil. Replay may run off the UI
// goroutine: each command executes under the core lock, so canvas input
// arriving mid-playback serializes with whole commands.
func (s *State) Replay(yield func()) {
	if s.Rec.Recording() {
		s.StopRecording()
	}
	commands := s.Rec.Commands()
	if len(commands) == 0 {
		return
	}

	s.mu.Lock()
	s.replaying = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.replaying = false
		s.mu.Unlock()
	}()

	s.Log.Info("macro replay started", zap.Int("commands", len(commands)))
	pl := &macro.Player{
		Ops:   s.Ops,
		Yield: yield,
		// Each command runs under the core lock; the yield pause runs
		// outside it, so canvas clicks during the pause serialize with
		// whole commands instead of racing a half-applied one.
		Exec: func(step func()) {
			s.opMu.Lock()
			defer s.opMu.Unlock()
			step()
		},
		Step: func(i int, cmd string) {
			s.mu.Lock()
			s.labelSeq = s.Store.PointCount() + 1
			s.mu.Unlock()
			s.Emit(EventModelChanged, nil)
			s.Emit(EventSelectionChanged, nil)
			s.Emit(EventReplayStep, ReplayStep{Index: i, Total: len(commands), Command: cmd})
		},
	}
	pl.Run(commands)
	s.SetModified(true)
	s.Log.Info("macro replay finished")
}

// OpenMacro loads a command log from a macro file.
func (s *State) OpenMacro(path string) error {
	if err := s.Rec.LoadFile(path); err != nil {
		return err
	}
	s.Log.Info("macro loaded", zap.String("path", path), zap.Int("commands", s.Rec.Len()))
	return nil
}

// SaveMacro writes the command log to a macro file.
func (s *State) SaveMacro(path string) error {
	if err := s.Rec.SaveFile(path); err != nil {
		return err
	}
	s.Log.Info("macro saved", zap.String("path", path), zap.Int("commands", s.Rec.Len()))
	return nil
}
