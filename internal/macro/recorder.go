package macro

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Recorder accumulates the command log of a recording session.
type Recorder struct {
	recording bool
	commands  []string
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a fresh recording, discarding any previous commands.
func (r *Recorder) Start() {
	r.recording = true
	r.commands = r.commands[:0]
}

// Stop ends the recording, keeping the accumulated commands.
func (r *Recorder) Stop() {
	r.recording = false
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	return r.recording
}

// Append adds a command if a recording is in progress.
func (r *Recorder) Append(cmd string) {
	if r.recording {
		r.commands = append(r.commands, cmd)
	}
}

// Commands returns a copy of the recorded command log.
func (r *Recorder) Commands() []string {
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// SetCommands replaces the command log, e.g. with a loaded macro file.
func (r *Recorder) SetCommands(commands []string) {
	r.commands = make([]string, len(commands))
	copy(r.commands, commands)
}

// LoadFile reads a macro file, one command per line, dropping blank lines.
func (r *Recorder) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open macro: %w", err)
	}
	defer f.Close()

	var commands []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			commands = append(commands, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read macro: %w", err)
	}
	r.commands = commands
	return nil
}

// SaveFile writes the command log, one command per line.
func (r *Recorder) SaveFile(path string) error {
	var b strings.Builder
	for _, cmd := range r.commands {
		b.WriteString(cmd)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("save macro: %w", err)
	}
	return nil
}
