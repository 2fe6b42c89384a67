package render

import (
	"image/color"

	"paint-life/internal/core"
)

// Palette maps visual categories to fill colours.
type Palette struct {
	Background color.RGBA
	Idle       color.RGBA
	Alive      color.RGBA
	Hovered    color.RGBA
}

// DefaultPalette returns white idle cells, green live cells and blue hover
// on a grey background.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 102, G: 102, B: 102, A: 255},
		Idle:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Alive:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Hovered:    color.RGBA{R: 0, G: 0, B: 255, A: 255},
	}
}

// Color returns the fill for v.
func (p Palette) Color(v core.Visual) color.RGBA {
	switch v {
	case core.VisualHovered:
		return p.Hovered
	case core.VisualAlive:
		return p.Alive
	default:
		return p.Idle
	}
}

// CellRect returns the top-left corner and edge length, in screen pixels,
// of the square drawn for a cell centred at the world coordinate coord.
func CellRect(coord core.Point, layout core.Layout, vp core.Viewport) (x, y, size float64) {
	centre := vp.ToScreen(coord)
	half := layout.HalfSize()
	return centre.X - half, centre.Y - half, layout.CellSize
}
