package life

import (
	"image/color"

	"paint-life/internal/core"
)

// Input is what the host loop samples each frame.
type Input struct {
	// Pointer is the cursor position in screen pixels. It is ignored when
	// HasPointer is false.
	Pointer    core.Point
	HasPointer bool
	// Pressed is the level of the primary pointer button.
	Pressed bool
	// Activate triggers the control as if it had been clicked.
	Activate bool
}

// CellView is the per-cell render output.
type CellView struct {
	Index  core.Index
	Coord  core.Point
	Visual core.Visual
}

// ControlView is the render output for the start/reset control.
type ControlView struct {
	Rect       Rect
	State      core.ControlState
	Label      string
	Background color.RGBA
}

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	State      core.State
	Generation int
	Population int
	Cells      []CellView
	Control    ControlView
}

// project derives the visual state of every cell. It only reads the store.
func project(s *core.CellStore) ([]CellView, int) {
	cells := s.Cells()
	out := make([]CellView, len(cells))
	pop := 0
	for i, c := range cells {
		if c.Alive {
			pop++
		}
		out[i] = CellView{Index: c.Index, Coord: c.Coord, Visual: core.VisualOf(c)}
	}
	return out, pop
}
