package macro

import (
	"strconv"
	"strings"

	"geosketch/internal/construct"
)

// Player replays a command log against the construction operations,
// re-selecting entities by their recorded coordinates. Malformed or
// unrecognized commands are skipped; a command whose preconditions fail at
// replay time is a no-op and subsequent commands still run.
type Player struct {
	Ops *construct.Ops

	// Yield, when set, is called between successive commands. The host
	// fulfils the visualization pause here (and keeps its event loop
	// responsive); tests leave it nil for synchronous replay.
	Yield func()

	// Step, when set, is called after each executed command.
	Step func(index int, cmd string)

	// Exec, when set, runs each command execution (the command and its
	// Step callback as one unit). The host installs its serialization
	// here so nothing else enters the operations mid-command; the yield
	// pause runs outside it.
	Exec func(step func())
}

// Run replays the command log in order.
func (pl *Player) Run(commands []string) {
	for i, cmd := range commands {
		step := func() {
			pl.runCommand(cmd)
			if pl.Step != nil {
				pl.Step(i, cmd)
			}
		}
		if pl.Exec != nil {
			pl.Exec(step)
		} else {
			step()
		}
		if pl.Yield != nil && i+1 < len(commands) {
			pl.Yield()
		}
	}
}

func (pl *Player) runCommand(cmd string) {
	o := pl.Ops
	switch {
	case cmd == "extendLines":
		o.ExtendSelectedLines()

	case cmd == "intersections":
		o.IntersectSelected()

	case cmd == "deleteAll":
		o.DeleteAll()

	case strings.HasPrefix(cmd, "deleteSelected"):
		pl.runDeleteSelected(cmd)

	case strings.HasPrefix(cmd, "addPoint:"):
		if p, ok := parsePoint(strings.TrimPrefix(cmd, "addPoint:")); ok {
			o.AddPointAt(p, "", true, false)
		}

	case strings.HasPrefix(cmd, "addLine:"):
		pl.runAddLine(strings.TrimPrefix(cmd, "addLine:"))

	case cmd == "addCircle":
		// Legacy payload-less form, acts on the current selection.
		o.CircleFromSelected()

	case strings.HasPrefix(cmd, "addCircle:"):
		pl.runAddCircle(strings.TrimPrefix(cmd, "addCircle:"))

	case cmd == "addNormal":
		o.NormalFromSelected()

	case strings.HasPrefix(cmd, "addNormal:"):
		pl.runAddNormal(strings.TrimPrefix(cmd, "addNormal:"))

	case strings.HasPrefix(cmd, "setLabel:"):
		o.SetLabelForSelection(strings.TrimPrefix(cmd, "setLabel:"))

	case strings.HasPrefix(cmd, "open:"):
		o.LoadDiagram(strings.TrimPrefix(cmd, "open:"))

	case strings.HasPrefix(cmd, "save:"):
		o.SaveDiagram(strings.TrimPrefix(cmd, "save:"))
	}
}

func (pl *Player) runAddLine(payload string) {
	a, b, ok := parsePair(payload)
	if !ok {
		return
	}
	o := pl.Ops
	o.ClearSelection()
	// Recreate missing endpoints: the recorded point may have been placed
	// by a command this log does not contain (e.g. an earlier session).
	selA := o.SelectPointByPosition(a, false)
	if !selA {
		o.AddPointAt(a, "", false, false)
		selA = o.SelectPointByPosition(a, false)
	}
	selB := o.SelectPointByPosition(b, true)
	if !selB {
		o.AddPointAt(b, "", false, false)
		selB = o.SelectPointByPosition(b, true)
	}
	if selA && selB {
		o.ConnectSelected()
	}
}

func (pl *Player) runAddCircle(payload string) {
	center, edge, ok := parsePair(payload)
	if !ok {
		return
	}
	o := pl.Ops
	o.ClearSelection()
	if o.SelectPointByPosition(center, false) && o.SelectPointByPosition(edge, true) {
		o.CircleFromSelected()
	}
}

func (pl *Player) runAddNormal(payload string) {
	parts := strings.Split(payload, ";")
	if len(parts) != 2 {
		return
	}
	a, b, okLine := parsePair(parts[0])
	through, okPoint := parsePoint(parts[1])
	if !okLine || !okPoint {
		return
	}
	o := pl.Ops
	o.ClearSelection()
	if o.SelectLineByEndpoints(a, b, false) && o.SelectPointByPosition(through, true) {
		o.NormalFromSelected()
	}
}

func (pl *Player) runDeleteSelected(cmd string) {
	o := pl.Ops
	o.ClearSelection()
	parts := strings.Split(cmd, ";")
	for _, field := range parts[1:] {
		switch {
		case strings.HasPrefix(field, "P="):
			for _, item := range strings.Split(field[2:], "|") {
				if item == "" {
					continue
				}
				if p, ok := parsePoint(item); ok {
					o.SelectPointByPosition(p, true)
				}
			}
		case strings.HasPrefix(field, "L="):
			for _, item := range strings.Split(field[2:], "#") {
				if a, b, ok := parsePair(item); ok {
					o.SelectLineByEndpoints(a, b, true)
				}
			}
		case strings.HasPrefix(field, "E="):
			for _, item := range strings.Split(field[2:], "#") {
				if a, b, ok := parsePair(item); ok {
					o.SelectExtendedLineByEndpoints(a, b, true)
				}
			}
		case strings.HasPrefix(field, "C="):
			for _, item := range strings.Split(field[2:], "#") {
				vals := strings.Split(item, ",")
				if len(vals) != 3 {
					continue
				}
				center, ok := parsePoint(vals[0] + "," + vals[1])
				if !ok {
					continue
				}
				if r, err := strconv.ParseFloat(strings.TrimSpace(vals[2]), 64); err == nil {
					o.SelectCircleByCenterRadius(center, r, true)
				}
			}
		}
	}
	o.DeleteSelected()
}
