// Package canvas provides the interactive construction plane widget.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"geosketch/internal/app"
	"geosketch/internal/model"
	"geosketch/internal/render"
	"geosketch/pkg/geometry"
)

// ConstructionCanvas renders the diagram and turns mouse clicks into
// selection and point placement. Ctrl+click adds to the selection.
type ConstructionCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	pickRadius float64
	lastSize   fyne.Size
}

// New creates the construction canvas bound to the application state.
func New(state *app.State) *ConstructionCanvas {
	cc := &ConstructionCanvas{
		state:      state,
		pickRadius: state.Cfg.Canvas.PickRadius,
	}
	cc.ExtendBaseWidget(cc)

	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.SetMinSize(fyne.NewSize(
		float32(state.Cfg.Canvas.Width),
		float32(state.Cfg.Canvas.Height),
	))

	state.On(app.EventModelChanged, func(interface{}) { cc.Refresh() })
	state.On(app.EventSelectionChanged, func(interface{}) { cc.Refresh() })
	state.On(app.EventDiagramLoaded, func(interface{}) { cc.Refresh() })
	return cc
}

// CreateRenderer implements fyne.Widget.
func (cc *ConstructionCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.raster)
}

func (cc *ConstructionCanvas) draw(w, h int) image.Image {
	cc.lastSize = fyne.NewSize(float32(w), float32(h))
	return cc.state.Draw(render.Options{
		Width:  w,
		Height: h,
		Labels: true,
		Axes:   true,
	})
}

// MouseDown implements desktop.Mouseable. A click on an entity selects it,
// a click on empty plane places a labeled point, a click outside the plane
// box clears the selection.
func (cc *ConstructionCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	add := ev.Modifier&fyne.KeyModifierControl != 0

	size := cc.Size()
	width, height := int(size.Width), int(size.Height)
	if width <= 0 || height <= 0 {
		return
	}
	tr := render.Transform(width, height)
	inv, ok := tr.Inverse()
	if !ok {
		return
	}
	world := inv.Apply(geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y)))

	// Pixel pick radius converted to world units.
	scale := tr.Apply(geometry.NewPoint2D(1, 0)).X - tr.Apply(geometry.NewPoint2D(0, 0)).X
	tol := cc.pickRadius / scale

	if kind, idx, hit := cc.state.HitTest(world, tol); hit {
		cc.state.Select(kind, idx, add)
		return
	}
	box := geometry.NewRect(model.BoxMin, model.BoxMin,
		model.BoxMax-model.BoxMin, model.BoxMax-model.BoxMin)
	if box.Contains(world) {
		cc.state.PlacePoint(world, cc.state.NextPointLabel(), add)
		return
	}
	cc.state.SelectNothing(add)
}

// MouseUp implements desktop.Mouseable.
func (cc *ConstructionCanvas) MouseUp(*desktop.MouseEvent) {}
