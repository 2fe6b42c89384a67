package core

import (
	"slices"
	"testing"
)

func TestResetAllIdempotent(t *testing.T) {
	s := newStore(t, 4, 4, Index{0, 0}, Index{3, 3}, Index{1, 2})
	s.SetHovered(Index{2, 2}, true)

	s.ResetAll()
	once := s.Cells()
	s.ResetAll()
	twice := s.Cells()

	if !slices.Equal(once, twice) {
		t.Fatal("second ResetAll changed the board")
	}
	for _, c := range twice {
		if c.Alive || c.Hovered {
			t.Fatalf("cell %v not cleared: %+v", c.Index, c)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newStore(t, 3, 3, Index{1, 1})
	snap := s.SnapshotAlive()
	s.SetAlive(Index{1, 1}, false)
	s.SetAlive(Index{0, 0}, true)
	if !snap.Contains(Index{1, 1}) || snap.Contains(Index{0, 0}) {
		t.Fatalf("snapshot changed after mutation: %v", snap.Indices())
	}
}

func TestStoreIgnoresOffGridIndices(t *testing.T) {
	s := newStore(t, 2, 2)
	s.SetAlive(Index{-1, 0}, true)
	s.SetAlive(Index{2, 0}, true)
	s.Toggle(Index{0, 5})
	s.SetHovered(Index{9, 9}, true)
	if s.Population() != 0 {
		t.Fatalf("population = %d", s.Population())
	}
}

func TestCoordinatesFixedAfterMutation(t *testing.T) {
	s := newStore(t, 3, 3)
	before := s.Cell(Index{2, 1}).Coord
	s.Toggle(Index{2, 1})
	s.SetHovered(Index{2, 1}, true)
	Generation(s)
	s.ResetAll()
	if after := s.Cell(Index{2, 1}).Coord; after != before {
		t.Fatalf("coord moved from %v to %v", before, after)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newStore(t, 8, 8)
	b := newStore(t, 8, 8)
	a.Randomize(NewRNG(7))
	b.Randomize(NewRNG(7))
	if !slices.Equal(a.SnapshotAlive().Indices(), b.SnapshotAlive().Indices()) {
		t.Fatal("same seed produced different boards")
	}
	if a.Population() == 0 || a.Population() == a.Len() {
		t.Fatalf("suspicious population %d of %d", a.Population(), a.Len())
	}
}

func TestVisualPriority(t *testing.T) {
	cases := []struct {
		alive, hovered bool
		want           Visual
	}{
		{false, false, VisualIdle},
		{true, false, VisualAlive},
		{false, true, VisualHovered},
		{true, true, VisualHovered},
	}
	for _, tc := range cases {
		if got := VisualOf(Cell{Alive: tc.alive, Hovered: tc.hovered}); got != tc.want {
			t.Fatalf("alive=%v hovered=%v: got %v want %v", tc.alive, tc.hovered, got, tc.want)
		}
	}
}
