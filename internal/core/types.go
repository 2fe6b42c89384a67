package core

// State is the simulation mode.
type State uint8

const (
	// Editing lets the user paint cells. It is the initial state.
	Editing State = iota
	// Running advances one generation per tick period.
	Running
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Visual is the display category derived from a cell.
type Visual uint8

const (
	VisualIdle Visual = iota
	VisualAlive
	VisualHovered
)

func (v Visual) String() string {
	switch v {
	case VisualHovered:
		return "hovered"
	case VisualAlive:
		return "alive"
	default:
		return "idle"
	}
}

// VisualOf projects a cell onto its display category. Hover wins over
// liveness.
func VisualOf(c Cell) Visual {
	switch {
	case c.Hovered:
		return VisualHovered
	case c.Alive:
		return VisualAlive
	default:
		return VisualIdle
	}
}

// ControlState is the interaction state of the start/reset control.
type ControlState uint8

const (
	ControlIdle ControlState = iota
	ControlHovered
	ControlPressed
)

func (c ControlState) String() string {
	switch c {
	case ControlHovered:
		return "hovered"
	case ControlPressed:
		return "pressed"
	default:
		return "idle"
	}
}
