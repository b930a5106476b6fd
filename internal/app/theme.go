package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GeoSketchTheme provides a custom theme for the application.
type GeoSketchTheme struct{}

var _ fyne.Theme = (*GeoSketchTheme)(nil)

func (t *GeoSketchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x26, G: 0x59, B: 0xD9, A: 0xFF} // Blue to match line strokes
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xD9, G: 0x26, B: 0x26, A: 0x80} // Red like highlighted entities
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *GeoSketchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *GeoSketchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *GeoSketchTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
