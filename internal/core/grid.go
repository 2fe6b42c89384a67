package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid reports non-positive grid dimensions.
	ErrInvalidGrid = errors.New("grid dimensions must be positive")
	// ErrNoViewport reports that no usable primary viewport was provided.
	ErrNoViewport = errors.New("no primary viewport")
)

// Index identifies a cell. X runs over rows and Y over columns.
type Index struct {
	X, Y int
}

// Add returns the index shifted by the offset d.
func (i Index) Add(d Index) Index { return Index{X: i.X + d.X, Y: i.Y + d.Y} }

// Point is a position in world or screen space.
type Point struct {
	X, Y float64
}

// Layout holds the constants used only to compute cell placements.
type Layout struct {
	CellSize float64
	GapSize  float64
}

// Pitch is the distance between the centres of two adjacent cells.
func (l Layout) Pitch() float64 { return l.CellSize + l.GapSize }

// HalfSize is half the edge of a cell's square hit-box.
func (l Layout) HalfSize() float64 { return l.CellSize / 2 }

// Viewport describes the drawable area in screen pixels.
type Viewport struct {
	W, H float64
}

// Valid reports whether the viewport can host the grid.
func (v Viewport) Valid() bool { return v.W > 0 && v.H > 0 }

// ToWorld converts a top-left origin, y-down screen position into world
// space, which is centred on the viewport with y pointing up.
func (v Viewport) ToWorld(p Point) Point {
	return Point{X: p.X - v.W/2, Y: v.H/2 - p.Y}
}

// ToScreen is the inverse of ToWorld.
func (v Viewport) ToScreen(p Point) Point {
	return Point{X: p.X + v.W/2, Y: v.H/2 - p.Y}
}

// Grid is a fixed-size bounded rectangular grid.
type Grid struct {
	Rows, Cols int
}

// NewGrid validates the dimensions and returns a Grid.
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Contains reports whether idx lies inside the grid.
func (g Grid) Contains(idx Index) bool {
	return idx.X >= 0 && idx.X < g.Rows && idx.Y >= 0 && idx.Y < g.Cols
}

// Offset returns the dense slice offset for idx.
func (g Grid) Offset(idx Index) int { return idx.X*g.Cols + idx.Y }

// Placement pairs a cell index with its fixed world-space centre.
type Placement struct {
	Index Index
	Coord Point
}

// Placements lays out every cell of the grid. The grid is centred
// horizontally and its first column sits a quarter viewport height below
// the centre. Order is X-major, matching Offset.
func (g Grid) Placements(layout Layout, vp Viewport) ([]Placement, error) {
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: %gx%g", ErrNoViewport, vp.W, vp.H)
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Rows, g.Cols)
	}
	pitch := layout.Pitch()
	originX := float64(g.Rows) * pitch * 0.5
	originY := vp.H / 4
	out := make([]Placement, 0, g.Len())
	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			out = append(out, Placement{
				Index: Index{X: x, Y: y},
				Coord: Point{
					X: float64(x)*pitch - originX,
					Y: float64(y)*pitch - originY,
				},
			})
		}
	}
	return out, nil
}
