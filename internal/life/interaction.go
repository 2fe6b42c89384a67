package life

import "paint-life/internal/core"

// EdgeDetector turns a per-frame button level into press edges.
type EdgeDetector struct {
	held bool
}

// Update records the current level and reports whether the button went
// from released to pressed since the previous call.
func (e *EdgeDetector) Update(pressed bool) bool {
	edge := pressed && !e.held
	e.held = pressed
	return edge
}

// Mapper hit-tests the pointer against cell squares and applies authoring
// edits.
type Mapper struct {
	halfSize float64
}

// NewMapper returns a Mapper for cells of the given layout.
func NewMapper(layout core.Layout) Mapper {
	return Mapper{halfSize: layout.HalfSize()}
}

// Hit reports whether the world-space point p lies inside the square
// centred on coord. Bounds are inclusive on both axes.
func (m Mapper) Hit(coord, p core.Point) bool {
	return coord.X <= p.X+m.halfSize &&
		coord.X >= p.X-m.halfSize &&
		coord.Y <= p.Y+m.halfSize &&
		coord.Y >= p.Y-m.halfSize
}

// Apply marks exactly the cells under pointer as hovered and toggles them
// when click is set. With no pointer every cell is un-hovered. It returns
// the number of cells toggled.
func (m Mapper) Apply(s *core.CellStore, pointer core.Point, hasPointer, click bool) int {
	toggled := 0
	for _, c := range s.Cells() {
		hit := hasPointer && m.Hit(c.Coord, pointer)
		s.SetHovered(c.Index, hit)
		if hit && click {
			s.Toggle(c.Index)
			toggled++
		}
	}
	return toggled
}
