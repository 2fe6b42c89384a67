//go:build ebiten

package render

import (
	"paint-life/internal/core"
	"paint-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter draws cell squares at their fixed screen positions.
type BoardPainter struct {
	palette  Palette
	layout   core.Layout
	viewport core.Viewport
}

// NewBoardPainter returns a painter for boards laid out with layout inside vp.
func NewBoardPainter(palette Palette, layout core.Layout, vp core.Viewport) *BoardPainter {
	return &BoardPainter{palette: palette, layout: layout, viewport: vp}
}

// Draw clears the screen and paints every cell with its visual colour.
func (bp *BoardPainter) Draw(dst *ebiten.Image, cells []life.CellView) {
	dst.Fill(bp.palette.Background)
	for _, c := range cells {
		x, y, size := CellRect(c.Coord, bp.layout, bp.viewport)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(size), float32(size), bp.palette.Color(c.Visual), false)
	}
}
