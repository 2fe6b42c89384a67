package life

import (
	"image/color"

	"paint-life/internal/core"
)

const (
	buttonWidth  = 60
	buttonHeight = 40
)

var (
	buttonIdleColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonHoveredColor = color.RGBA{R: 0, G: 128, B: 230, A: 255}
	buttonPressedColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle. The far edges are
// exclusive.
func (r Rect) Contains(p core.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Button is the single start/reset control.
type Button struct {
	rect  Rect
	state core.ControlState
}

// NewButton returns the control anchored to the top-left corner.
func NewButton() *Button {
	return &Button{rect: Rect{W: buttonWidth, H: buttonHeight}}
}

// Rect returns the control's screen rectangle.
func (b *Button) Rect() Rect { return b.rect }

// State returns the interaction state computed by the last Update.
func (b *Button) State() core.ControlState { return b.state }

// Update recomputes the interaction state from the screen-space pointer and
// reports whether the control was activated by a press edge this frame.
func (b *Button) Update(pointer core.Point, hasPointer, held, pressEdge bool) bool {
	over := hasPointer && b.rect.Contains(pointer)
	switch {
	case over && held:
		b.state = core.ControlPressed
	case over:
		b.state = core.ControlHovered
	default:
		b.state = core.ControlIdle
	}
	return over && pressEdge
}

// Label returns the text shown on the control for state s.
func Label(s core.State) string {
	if s == core.Running {
		return "Reset"
	}
	return "Start"
}

// Background returns the fill colour for the control state.
func Background(s core.ControlState) color.RGBA {
	switch s {
	case core.ControlPressed:
		return buttonPressedColor
	case core.ControlHovered:
		return buttonHoveredColor
	default:
		return buttonIdleColor
	}
}
