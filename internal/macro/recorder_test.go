package macro

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecorderAppendOnlyWhileRecording(t *testing.T) {
	r := NewRecorder()
	r.Append("addPoint:0.00000000,0.00000000")
	if r.Len() != 0 {
		t.Fatal("appended while not recording")
	}
	r.Start()
	r.Append("addPoint:0.00000000,0.00000000")
	r.Append("addPoint:1.00000000,0.00000000")
	r.Stop()
	r.Append("deleteAll")
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
}

func TestRecorderStartClearsPreviousLog(t *testing.T) {
	r := NewRecorder()
	r.Start()
	r.Append("deleteAll")
	r.Stop()
	r.Start()
	if r.Len() != 0 {
		t.Fatal("Start did not clear the previous log")
	}
}

func TestRecorderFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.macro")
	r := NewRecorder()
	r.SetCommands([]string{
		"addPoint:0.00000000,0.00000000",
		"addPoint:1.00000000,0.00000000",
		"addLine:0.00000000,0.00000000|1.00000000,0.00000000",
	})
	if err := r.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	loaded := NewRecorder()
	if err := loaded.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	got := loaded.Commands()
	want := r.Commands()
	if len(got) != len(want) {
		t.Fatalf("got %d commands, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("command %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecorderLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.macro")
	content := "deleteAll\n\n   \naddPoint:0.00000000,0.00000000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	r := NewRecorder()
	if err := r.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
}
