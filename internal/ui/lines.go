// Package ui draws the start/reset control, the status HUD and the debug
// overlay on top of the board.
package ui

import (
	"fmt"

	"paint-life/internal/core"
)

// Line is one row of HUD text.
type Line struct {
	Text   string
	Header bool
}

// Lines flattens a snapshot into HUD rows, one header per group.
func Lines(s core.ParameterSnapshot) []Line {
	var out []Line
	for _, g := range s.Groups {
		if len(g.Params) == 0 {
			continue
		}
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: fmt.Sprintf("  %s: %s", p.Label, p.Value)})
		}
	}
	return out
}
