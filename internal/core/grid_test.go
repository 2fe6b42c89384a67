package core

import (
	"errors"
	"testing"
)

func TestPlacementsCoverGrid(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {20, 20}} {
		g, err := NewGrid(dims[0], dims[1])
		if err != nil {
			t.Fatalf("NewGrid(%d,%d): %v", dims[0], dims[1], err)
		}
		ps, err := g.Placements(Layout{CellSize: 30, GapSize: 2}, Viewport{W: 800, H: 600})
		if err != nil {
			t.Fatalf("Placements: %v", err)
		}
		if len(ps) != g.Rows*g.Cols {
			t.Fatalf("%dx%d: got %d placements", g.Rows, g.Cols, len(ps))
		}
		seen := map[Index]bool{}
		for i, p := range ps {
			if !g.Contains(p.Index) {
				t.Fatalf("placement %v outside grid", p.Index)
			}
			if seen[p.Index] {
				t.Fatalf("duplicate index %v", p.Index)
			}
			seen[p.Index] = true
			if g.Offset(p.Index) != i {
				t.Fatalf("placement %d has offset %d", i, g.Offset(p.Index))
			}
		}
	}
}

func TestPlacementsGeometry(t *testing.T) {
	g, _ := NewGrid(20, 20)
	ps, err := g.Placements(Layout{CellSize: 30, GapSize: 2}, Viewport{W: 1280, H: 720})
	if err != nil {
		t.Fatal(err)
	}
	first := ps[0]
	if first.Coord != (Point{X: -320, Y: -180}) {
		t.Fatalf("cell (0,0) at %v", first.Coord)
	}
	p := ps[g.Offset(Index{X: 3, Y: 5})]
	if p.Coord != (Point{X: 3*32 - 320, Y: 5*32 - 180}) {
		t.Fatalf("cell (3,5) at %v", p.Coord)
	}
}

func TestNewGridRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 5}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("NewGrid(%d,%d) err = %v", dims[0], dims[1], err)
		}
	}
}

func TestPlacementsRequireViewport(t *testing.T) {
	g, _ := NewGrid(2, 2)
	for _, vp := range []Viewport{{}, {W: 100}, {H: 100}, {W: -1, H: 5}} {
		if _, err := g.Placements(Layout{CellSize: 10}, vp); !errors.Is(err, ErrNoViewport) {
			t.Fatalf("viewport %v: err = %v", vp, err)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{W: 640, H: 480}
	screen := Point{X: 10, Y: 470}
	world := vp.ToWorld(screen)
	if world != (Point{X: -310, Y: -230}) {
		t.Fatalf("ToWorld = %v", world)
	}
	if back := vp.ToScreen(world); back != screen {
		t.Fatalf("ToScreen(ToWorld(p)) = %v, want %v", back, screen)
	}
}
