//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"paint-life/internal/core"
	"paint-life/internal/life"
	"paint-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	ctrl       *life.Controller
	showCounts bool
	showBoxes  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(ctrl *life.Controller) *Overlay {
	return &Overlay{ctrl: ctrl}
}

// Update toggles layers: 1 shows live-neighbour counts, 2 outlines hit-boxes.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCounts = !o.showCounts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBoxes = !o.showBoxes
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, cells []life.CellView) {
	if !o.showCounts && !o.showBoxes {
		return
	}
	layout := o.ctrl.Layout()
	vp := o.ctrl.Viewport()
	alive := o.ctrl.Alive()
	face := basicfont.Face7x13
	for _, c := range cells {
		x, y, size := render.CellRect(c.Coord, layout, vp)
		if o.showBoxes {
			vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, boxColor, false)
		}
		if o.showCounts {
			n := core.LiveNeighbors(c.Index, alive)
			if n == 0 {
				continue
			}
			label := strconv.Itoa(n)
			b := text.BoundString(face, label)
			tx := int(x+size/2) - b.Dx()/2
			ty := int(y+size/2) + b.Dy()/2
			text.Draw(screen, label, face, tx, ty, countColor)
		}
	}
}

var (
	boxColor   = color.RGBA{R: 255, G: 120, B: 40, A: 200}
	countColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)
