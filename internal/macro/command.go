// Package macro records construction operations as a replayable textual
// command log. Commands carry literal geometric payloads, never entity
// handles: handles are unstable across additions, deletions, and reloads,
// so replay re-selects entities by coordinate matching.
package macro

import (
	"strconv"
	"strings"

	"geosketch/internal/construct"
	"geosketch/pkg/geometry"
)

// Coordinates are recorded as fixed-point with 8 fractional digits.
func fc(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

func fmtPoint(p geometry.Point2D) string {
	return fc(p.X) + "," + fc(p.Y)
}

func fmtPair(a, b geometry.Point2D) string {
	return fmtPoint(a) + "|" + fmtPoint(b)
}

// AddPointCommand encodes a point placement.
func AddPointCommand(p geometry.Point2D) string {
	return "addPoint:" + fmtPoint(p)
}

// AddLineCommand encodes a connect operation by its endpoint coordinates.
func AddLineCommand(a, b geometry.Point2D) string {
	return "addLine:" + fmtPair(a, b)
}

// AddCircleCommand encodes a circle by center and edge point.
func AddCircleCommand(center, edge geometry.Point2D) string {
	return "addCircle:" + fmtPair(center, edge)
}

// ExtendLinesCommand encodes extending the selected lines. The command has
// no payload; replay applies it to whatever the preceding commands selected.
func ExtendLinesCommand() string { return "extendLines" }

// AddNormalCommand encodes a normal construction: source line endpoints and
// the through point.
func AddNormalCommand(a, b, through geometry.Point2D) string {
	return "addNormal:" + fmtPair(a, b) + ";" + fmtPoint(through)
}

// IntersectionsCommand encodes intersecting the selected pair.
func IntersectionsCommand() string { return "intersections" }

// SetLabelCommand encodes a label edit on the single selected entity.
func SetLabelCommand(label string) string { return "setLabel:" + label }

// DeleteAllCommand encodes clearing the whole model.
func DeleteAllCommand() string { return "deleteAll" }

// OpenCommand encodes loading a diagram file.
func OpenCommand(path string) string { return "open:" + path }

// SaveCommand encodes saving a diagram file.
func SaveCommand(path string) string { return "save:" + path }

// DeleteSelectedCommand encodes a deletion with the geometric identity of
// every selected entity, per kind: point coordinates, line and extended
// line endpoint pairs, circle center+radius triples.
func DeleteSelectedCommand(points []geometry.Point2D, lines, extended []construct.EndpointPair, circles []construct.CircleData) string {
	var fields []string
	if len(points) > 0 {
		entries := make([]string, len(points))
		for i, p := range points {
			entries[i] = fmtPoint(p)
		}
		fields = append(fields, "P="+strings.Join(entries, "|"))
	}
	if len(lines) > 0 {
		entries := make([]string, len(lines))
		for i, l := range lines {
			entries[i] = fmtPair(l.A, l.B)
		}
		fields = append(fields, "L="+strings.Join(entries, "#"))
	}
	if len(extended) > 0 {
		entries := make([]string, len(extended))
		for i, l := range extended {
			entries[i] = fmtPair(l.A, l.B)
		}
		fields = append(fields, "E="+strings.Join(entries, "#"))
	}
	if len(circles) > 0 {
		entries := make([]string, len(circles))
		for i, c := range circles {
			entries[i] = fmtPoint(c.Center) + "," + fc(c.Radius)
		}
		fields = append(fields, "C="+strings.Join(entries, "#"))
	}
	cmd := "deleteSelected"
	if len(fields) > 0 {
		cmd += ";" + strings.Join(fields, ";")
	}
	return cmd
}

func parsePoint(s string) (geometry.Point2D, bool) {
	coords := strings.Split(s, ",")
	if len(coords) != 2 {
		return geometry.Point2D{}, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if errX != nil || errY != nil {
		return geometry.Point2D{}, false
	}
	return geometry.NewPoint2D(x, y), true
}

func parsePair(s string) (a, b geometry.Point2D, ok bool) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return a, b, false
	}
	a, okA := parsePoint(parts[0])
	b, okB := parsePoint(parts[1])
	return a, b, okA && okB
}
