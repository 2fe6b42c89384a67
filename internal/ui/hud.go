//go:build ebiten

package ui

import (
	"image/color"

	"paint-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the published status lines in the bottom-left corner.
type HUD struct {
	provider parameterProvider
	snapshot core.ParameterSnapshot
	visible  bool
}

// NewHUD constructs a HUD reading from provider.
func NewHUD(provider parameterProvider) *HUD {
	return &HUD{provider: provider, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
}

// Draw paints the cached snapshot.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := Lines(h.snapshot)
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	height := screen.Bounds().Dy()
	y := height - panelPadding - (len(lines)-1)*lineHeight
	for i, line := range lines {
		col := valueColor
		if line.Header {
			col = headerColor
		}
		text.Draw(screen, line.Text, face, panelPadding, y+i*lineHeight, col)
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 240, G: 240, B: 245, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
)
