//go:build ebiten

package ui

import (
	"image/color"

	"paint-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var labelColor = color.RGBA{A: 255}

// DrawControl paints the start/reset control with its label centred.
func DrawControl(dst *ebiten.Image, cv life.ControlView) {
	r := cv.Rect
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cv.Background, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, cv.Label)
	x := int(r.X) + (int(r.W)-bounds.Dx())/2
	y := int(r.Y) + (int(r.H)-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, cv.Label, face, x, y, labelColor)
}
