package app

import (
	"image"

	"geosketch/internal/render"
)

// Draw renders the diagram with the current selection. It holds the core
// read lock so the raster never observes a half-applied replay command.
func (s *State) Draw(opts render.Options) image.Image {
	s.opMu.RLock()
	defer s.opMu.RUnlock()
	opts.Sel = s.Sel
	return render.Diagram(s.Store, opts)
}

// ExportPNG writes the diagram to a PNG file.
func (s *State) ExportPNG(path string, opts render.Options) error {
	s.opMu.RLock()
	defer s.opMu.RUnlock()
	return render.SavePNG(path, s.Store, opts)
}
