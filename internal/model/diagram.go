package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"geosketch/pkg/geometry"
)

// PointRecord is the persisted form of a point.
type PointRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// LineRecord is the persisted form of a line. The legacy custom variant
// carries literal endpoint coordinates instead of point handles; it is
// accepted on load (as an extended line) but never written.
type LineRecord struct {
	A        int     `json:"a"`
	B        int     `json:"b"`
	Custom   bool    `json:"custom,omitempty"`
	CustomAX float64 `json:"customAx,omitempty"`
	CustomAY float64 `json:"customAy,omitempty"`
	CustomBX float64 `json:"customBx,omitempty"`
	CustomBY float64 `json:"customBy,omitempty"`
	Label    string  `json:"label,omitempty"`
}

// ExtendedLineRecord is the persisted form of an extended line.
type ExtendedLineRecord struct {
	AX    float64 `json:"ax"`
	AY    float64 `json:"ay"`
	BX    float64 `json:"bx"`
	BY    float64 `json:"by"`
	Label string  `json:"label,omitempty"`
}

// CircleRecord is the persisted form of a circle.
type CircleRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Label string  `json:"label,omitempty"`
}

// DiagramFile is the on-disk diagram format.
type DiagramFile struct {
	Points        []PointRecord        `json:"points"`
	Lines         []LineRecord         `json:"lines"`
	ExtendedLines []ExtendedLineRecord `json:"extendedLines"`
	Circles       []CircleRecord       `json:"circles"`
}

// Snapshot captures the current store contents as a DiagramFile.
func (s *Store) Snapshot() *DiagramFile {
	f := &DiagramFile{
		Points:        make([]PointRecord, 0, len(s.points)),
		Lines:         make([]LineRecord, 0, len(s.lines)),
		ExtendedLines: make([]ExtendedLineRecord, 0, len(s.extended)),
		Circles:       make([]CircleRecord, 0, len(s.circles)),
	}
	for _, p := range s.points {
		f.Points = append(f.Points, PointRecord{X: p.Pos.X, Y: p.Pos.Y, Label: p.Label})
	}
	for _, l := range s.lines {
		f.Lines = append(f.Lines, LineRecord{A: l.A, B: l.B, Label: l.Label})
	}
	for _, e := range s.extended {
		f.ExtendedLines = append(f.ExtendedLines, ExtendedLineRecord{
			AX: e.A.X, AY: e.A.Y, BX: e.B.X, BY: e.B.Y, Label: e.Label,
		})
	}
	for _, c := range s.circles {
		f.Circles = append(f.Circles, CircleRecord{X: c.Center.X, Y: c.Center.Y, R: c.Radius, Label: c.Label})
	}
	return f
}

// Restore replaces the store contents with the diagram file. Records with
// out-of-range handles or non-positive radii are skipped; legacy custom
// lines become extended lines.
func (s *Store) Restore(f *DiagramFile) {
	points := make([]Point, 0, len(f.Points))
	for _, p := range f.Points {
		points = append(points, Point{Pos: geometry.NewPoint2D(p.X, p.Y), Label: p.Label})
	}
	lines := make([]Line, 0, len(f.Lines))
	extended := make([]ExtendedLine, 0, len(f.ExtendedLines))
	for _, l := range f.Lines {
		if l.Custom {
			extended = append(extended, ExtendedLine{
				A:     geometry.NewPoint2D(l.CustomAX, l.CustomAY),
				B:     geometry.NewPoint2D(l.CustomBX, l.CustomBY),
				Label: l.Label,
			})
			continue
		}
		if l.A < 0 || l.A >= len(points) || l.B < 0 || l.B >= len(points) || l.A == l.B {
			continue
		}
		lines = append(lines, Line{A: l.A, B: l.B, Label: l.Label})
	}
	for _, e := range f.ExtendedLines {
		extended = append(extended, ExtendedLine{
			A:     geometry.NewPoint2D(e.AX, e.AY),
			B:     geometry.NewPoint2D(e.BX, e.BY),
			Label: e.Label,
		})
	}
	circles := make([]Circle, 0, len(f.Circles))
	for _, c := range f.Circles {
		if c.R <= 0 {
			continue
		}
		circles = append(circles, Circle{Center: geometry.NewPoint2D(c.X, c.Y), Radius: c.R, Label: c.Label})
	}

	s.points = points
	s.lines = lines
	s.extended = extended
	s.circles = circles
}

// LoadFile loads a diagram from disk, replacing the store contents only if
// the whole file parses.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read diagram: %w", err)
	}
	var f DiagramFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse diagram: %w", err)
	}
	s.Restore(&f)
	return nil
}

// SaveFile writes the diagram to disk. The file is written to a temporary
// name and renamed into place so a failed save never truncates an existing
// diagram.
func (s *Store) SaveFile(path string) error {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode diagram: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create diagram directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".diagram-*.json")
	if err != nil {
		return fmt.Errorf("save diagram: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save diagram: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save diagram: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save diagram: %w", err)
	}
	return nil
}
