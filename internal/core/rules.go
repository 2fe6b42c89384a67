package core

import "sort"

// AliveSet is an immutable point-in-time set of alive cell indices.
type AliveSet struct {
	m map[Index]struct{}
}

// NewAliveSet builds a set from the given indices.
func NewAliveSet(indices ...Index) AliveSet {
	m := make(map[Index]struct{}, len(indices))
	for _, idx := range indices {
		m[idx] = struct{}{}
	}
	return AliveSet{m: m}
}

// Contains reports whether idx is alive in the set.
func (a AliveSet) Contains(idx Index) bool {
	_, ok := a.m[idx]
	return ok
}

// Len returns the number of alive indices.
func (a AliveSet) Len() int { return len(a.m) }

// Empty reports whether no index is alive.
func (a AliveSet) Empty() bool { return len(a.m) == 0 }

// Indices returns the members sorted by X, then Y.
func (a AliveSet) Indices() []Index {
	out := make([]Index, 0, len(a.m))
	for idx := range a.m {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// MooreOffsets are the eight neighbour offsets of a cell.
var MooreOffsets = [8]Index{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// LiveNeighbors counts the Moore neighbours of idx present in set.
// Off-grid positions are never members, so edges have fewer neighbours.
func LiveNeighbors(idx Index, set AliveSet) int {
	n := 0
	for _, d := range MooreOffsets {
		if set.Contains(idx.Add(d)) {
			n++
		}
	}
	return n
}

// NextAlive applies Conway's B3/S23 rule to a single cell.
func NextAlive(idx Index, set AliveSet) bool {
	n := LiveNeighbors(idx, set)
	return (set.Contains(idx) && n == 2) || n == 3
}

// Generation advances the store by one generation. Every cell is evaluated
// against the same pre-tick snapshot before any result is written back.
// It returns the post-tick alive set.
func Generation(s *CellStore) AliveSet {
	snapshot := s.SnapshotAlive()
	next := make([]bool, s.Len())
	for i, c := range s.cells {
		next[i] = NextAlive(c.Index, snapshot)
	}
	for i, alive := range next {
		s.SetAlive(s.cells[i].Index, alive)
	}
	return s.SnapshotAlive()
}
