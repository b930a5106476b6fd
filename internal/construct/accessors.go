package construct

import (
	"geosketch/pkg/geometry"
)

// Read accessors over the current selection, used by the host UI and by
// macro recording to capture geometric payloads.

// SelectedPointPositions returns the coordinates of the selected points in
// ascending handle order.
func (o *Ops) SelectedPointPositions() []geometry.Point2D {
	var out []geometry.Point2D
	for _, i := range o.Sel.Points() {
		if p, ok := o.Store.PointAt(i); ok {
			out = append(out, p.Pos)
		}
	}
	return out
}

// EndpointPair is a pair of endpoint coordinates.
type EndpointPair struct {
	A, B geometry.Point2D
}

// SelectedLineEndpoints returns the endpoint coordinates of the selected
// finite lines.
func (o *Ops) SelectedLineEndpoints() []EndpointPair {
	var out []EndpointPair
	for _, i := range o.Sel.Lines() {
		if a, b, ok := o.Store.LineEndpoints(i); ok {
			out = append(out, EndpointPair{A: a, B: b})
		}
	}
	return out
}

// SelectedExtendedLineEndpoints returns the endpoint coordinates of the
// selected extended lines.
func (o *Ops) SelectedExtendedLineEndpoints() []EndpointPair {
	var out []EndpointPair
	for _, i := range o.Sel.ExtendedLines() {
		if e, ok := o.Store.ExtendedLineAt(i); ok {
			out = append(out, EndpointPair{A: e.A, B: e.B})
		}
	}
	return out
}

// CircleData is a circle's center and radius.
type CircleData struct {
	Center geometry.Point2D
	Radius float64
}

// SelectedCircleData returns center and radius of the selected circles.
func (o *Ops) SelectedCircleData() []CircleData {
	var out []CircleData
	for _, i := range o.Sel.Circles() {
		if c, ok := o.Store.CircleAt(i); ok {
			out = append(out, CircleData{Center: c.Center, Radius: c.Radius})
		}
	}
	return out
}

// ConnectEndpoints returns the coordinates the next ConnectSelected call
// would join, for macro recording.
func (o *Ops) ConnectEndpoints() (a, b geometry.Point2D, ok bool) {
	ai, bi, ok := o.connectPair()
	if !ok {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	pa, okA := o.Store.PointAt(ai)
	pb, okB := o.Store.PointAt(bi)
	if !okA || !okB {
		return geometry.Point2D{}, geometry.Point2D{}, false
	}
	return pa.Pos, pb.Pos, true
}

// SelectedNormalArgs returns the line endpoints and the through point the
// next NormalFromSelected call would use, for macro recording.
func (o *Ops) SelectedNormalArgs() (a, b, through geometry.Point2D, ok bool) {
	if o.Sel.LineCount() != 1 || o.Sel.PointCount() != 1 {
		return a, b, through, false
	}
	a, b, okL := o.Store.LineEndpoints(o.Sel.Lines()[0])
	p, okP := o.Store.PointAt(o.Sel.Points()[0])
	if !okL || !okP {
		return a, b, through, false
	}
	return a, b, p.Pos, true
}
