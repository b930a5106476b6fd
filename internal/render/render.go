// Package render draws a diagram into a raster image, for PNG export and
// printing. It shares the mapping the interactive canvas uses: the square
// plane box centered in the image, y up.
package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"geosketch/internal/model"
	"geosketch/internal/selection"
	"geosketch/pkg/geometry"
)

const padding = 16

// Options controls the output raster. Sel, when set, draws the selected
// entities highlighted; exports leave it nil.
type Options struct {
	Width  int
	Height int
	Labels bool
	Axes   bool
	Sel    *selection.Selection
}

// DefaultOptions renders an 800x800 image with axes and labels.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Labels: true, Axes: true}
}

// Transform returns the world-to-pixel mapping for an image of the given
// size: the plane box fits the padded area, y flipped.
func Transform(width, height int) geometry.AffineTransform {
	span := model.BoxMax - model.BoxMin
	scale := math.Min(float64(width), float64(height)) / span
	if width > 2*padding && height > 2*padding {
		scale = math.Min(float64(width-2*padding), float64(height-2*padding)) / span
	}
	center := geometry.NewPoint2D(float64(width)/2, float64(height)/2)
	return geometry.Translation(center.X, center.Y).Compose(geometry.Scaling(scale, -scale))
}

// Diagram rasterizes the model.
func Diagram(store *model.Store, opts Options) image.Image {
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	drawInto(dc, store, opts)

	return dc.Image()
}

// WritePNG renders the model and encodes it as PNG.
func WritePNG(w io.Writer, store *model.Store, opts Options) error {
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	drawInto(dc, store, opts)

	return dc.EncodePNG(w)
}

// SavePNG renders the model to a PNG file.
func SavePNG(path string, store *model.Store, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("export png: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	defer f.Close()
	if err := WritePNG(f, store, opts); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

func drawInto(dc *gg.Context, store *model.Store, opts Options) {
	tr := Transform(opts.Width, opts.Height)
	scale := tr.Apply(geometry.NewPoint2D(1, 0)).X - tr.Apply(geometry.NewPoint2D(0, 0)).X

	dc.ClearWithColor(gg.White)

	if opts.Axes {
		drawAxes(dc, tr, scale)
	}

	selected := func(kind model.Kind, i int) bool {
		return opts.Sel != nil && opts.Sel.IsSelected(kind, i)
	}
	highlight := func(on bool, r, g, b float64) {
		if on {
			dc.SetRGB(0.85, 0.15, 0.15)
		} else {
			dc.SetRGB(r, g, b)
		}
	}

	dc.SetLineWidth(2)
	for i := 0; i < store.LineCount(); i++ {
		a, b, ok := store.LineEndpoints(i)
		if !ok {
			continue
		}
		highlight(selected(model.KindLine, i), 0.15, 0.35, 0.85)
		sa, sb := tr.Apply(a), tr.Apply(b)
		dc.DrawLine(sa.X, sa.Y, sb.X, sb.Y)
		dc.Stroke()
	}

	for i, e := range store.ExtendedLines() {
		highlight(selected(model.KindExtendedLine, i), 0.1, 0.55, 0.35)
		sa, sb := tr.Apply(e.A), tr.Apply(e.B)
		dc.DrawLine(sa.X, sa.Y, sb.X, sb.Y)
		dc.Stroke()
	}

	for i, c := range store.Circles() {
		highlight(selected(model.KindCircle, i), 0.6, 0.25, 0.65)
		sc := tr.Apply(c.Center)
		dc.DrawCircle(sc.X, sc.Y, c.Radius*scale)
		dc.Stroke()
	}

	for i, p := range store.Points() {
		highlight(selected(model.KindPoint, i), 0, 0, 0)
		sp := tr.Apply(p.Pos)
		dc.DrawPoint(sp.X, sp.Y, 3.5)
		dc.Fill()
	}

	if opts.Labels {
		drawLabels(dc, store, tr)
	}
}

func drawAxes(dc *gg.Context, tr geometry.AffineTransform, scale float64) {
	origin := tr.Apply(geometry.NewPoint2D(0, 0))
	left := tr.Apply(geometry.NewPoint2D(model.BoxMin, 0))
	right := tr.Apply(geometry.NewPoint2D(model.BoxMax, 0))
	bottom := tr.Apply(geometry.NewPoint2D(0, model.BoxMin))
	top := tr.Apply(geometry.NewPoint2D(0, model.BoxMax))

	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	dc.DrawLine(left.X, left.Y, right.X, right.Y)
	dc.Stroke()
	dc.DrawLine(bottom.X, bottom.Y, top.X, top.Y)
	dc.Stroke()

	// Unit ticks on both axes.
	for v := model.BoxMin; v <= model.BoxMax; v++ {
		if v == 0 {
			continue
		}
		x := origin.X + v*scale
		dc.DrawLine(x, origin.Y-3, x, origin.Y+3)
		dc.Stroke()
		y := origin.Y - v*scale
		dc.DrawLine(origin.X-3, y, origin.X+3, y)
		dc.Stroke()
	}
}

func drawLabels(dc *gg.Context, store *model.Store, tr geometry.AffineTransform) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return
	}
	defer source.Close()
	dc.SetFont(source.Face(12))
	dc.SetRGB(0, 0, 0)

	for _, p := range store.Points() {
		if p.Label == "" {
			continue
		}
		sp := tr.Apply(p.Pos)
		dc.DrawString(p.Label, sp.X+6, sp.Y-6)
	}
	for i := 0; i < store.LineCount(); i++ {
		l, _ := store.LineAt(i)
		if l.Label == "" {
			continue
		}
		a, b, ok := store.LineEndpoints(i)
		if !ok {
			continue
		}
		mid := tr.Apply(geometry.NewPoint2D((a.X+b.X)/2, (a.Y+b.Y)/2))
		dc.DrawString(l.Label, mid.X+6, mid.Y-6)
	}
	for _, e := range store.ExtendedLines() {
		if e.Label == "" {
			continue
		}
		mid := tr.Apply(geometry.NewPoint2D((e.A.X+e.B.X)/2, (e.A.Y+e.B.Y)/2))
		dc.DrawString(e.Label, mid.X+6, mid.Y-6)
	}
	for _, c := range store.Circles() {
		if c.Label == "" {
			continue
		}
		topPt := tr.Apply(geometry.NewPoint2D(c.Center.X, c.Center.Y+c.Radius))
		dc.DrawString(c.Label, topPt.X+6, topPt.Y-6)
	}
}
