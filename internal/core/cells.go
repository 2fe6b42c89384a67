package core

// Cell is the per-position state held by a CellStore.
type Cell struct {
	Index   Index
	Coord   Point
	Alive   bool
	Hovered bool
}

// CellStore owns one Cell per grid index in a dense, row-major slice.
type CellStore struct {
	grid  Grid
	cells []Cell
}

// NewCellStore builds a store from the grid placements. Every cell starts
// dead and un-hovered.
func NewCellStore(g Grid, placements []Placement) *CellStore {
	s := &CellStore{grid: g, cells: make([]Cell, g.Len())}
	for _, p := range placements {
		if !g.Contains(p.Index) {
			continue
		}
		s.cells[g.Offset(p.Index)] = Cell{Index: p.Index, Coord: p.Coord}
	}
	return s
}

// Len returns the number of cells.
func (s *CellStore) Len() int { return len(s.cells) }

// Cell returns a copy of the cell at idx.
func (s *CellStore) Cell(idx Index) Cell {
	if !s.grid.Contains(idx) {
		return Cell{Index: idx}
	}
	return s.cells[s.grid.Offset(idx)]
}

// Cells returns a copy of every cell in store order.
func (s *CellStore) Cells() []Cell {
	return append([]Cell(nil), s.cells...)
}

// SetAlive sets the liveness of the cell at idx.
func (s *CellStore) SetAlive(idx Index, alive bool) {
	if !s.grid.Contains(idx) {
		return
	}
	s.cells[s.grid.Offset(idx)].Alive = alive
}

// SetHovered sets the hover flag of the cell at idx.
func (s *CellStore) SetHovered(idx Index, hovered bool) {
	if !s.grid.Contains(idx) {
		return
	}
	s.cells[s.grid.Offset(idx)].Hovered = hovered
}

// Toggle flips the liveness of the cell at idx.
func (s *CellStore) Toggle(idx Index) {
	if !s.grid.Contains(idx) {
		return
	}
	c := &s.cells[s.grid.Offset(idx)]
	c.Alive = !c.Alive
}

// ClearHover un-hovers every cell.
func (s *CellStore) ClearHover() {
	for i := range s.cells {
		s.cells[i].Hovered = false
	}
}

// SnapshotAlive returns the indices of all alive cells. The result shares
// no memory with the store.
func (s *CellStore) SnapshotAlive() AliveSet {
	set := make(map[Index]struct{})
	for i := range s.cells {
		if s.cells[i].Alive {
			set[s.cells[i].Index] = struct{}{}
		}
	}
	return AliveSet{m: set}
}

// Population counts alive cells.
func (s *CellStore) Population() int {
	n := 0
	for i := range s.cells {
		if s.cells[i].Alive {
			n++
		}
	}
	return n
}

// ResetAll kills and un-hovers every cell.
func (s *CellStore) ResetAll() {
	for i := range s.cells {
		s.cells[i].Alive = false
		s.cells[i].Hovered = false
	}
}

// Randomize sets each cell alive with probability 1/2 using rng.
func (s *CellStore) Randomize(rng *RNG) {
	for i := range s.cells {
		s.cells[i].Alive = rng.Bool()
	}
}
