// Package life drives an editable Game of Life board: pointer authoring
// while editing, a fixed-period generation clock while running, and a
// single start/reset control switching between the two.
package life

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"paint-life/internal/core"
)

// Config holds the construction parameters of a Controller.
type Config struct {
	Rows, Cols int
	Layout     core.Layout
	Viewport   core.Viewport
	TickPeriod time.Duration
}

// Controller owns the board and the Editing/Running state machine.
type Controller struct {
	grid     core.Grid
	layout   core.Layout
	viewport core.Viewport
	store    *core.CellStore
	mapper   Mapper
	timer    *core.Repeating
	button   *Button
	primary  EdgeDetector
	log      *slog.Logger

	state      core.State
	generation int
}

// New builds the board and enters Editing. A missing viewport is fatal to
// startup and reported as core.ErrNoViewport.
func New(cfg Config, logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	grid, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	placements, err := grid.Placements(cfg.Layout, cfg.Viewport)
	if err != nil {
		return nil, fmt.Errorf("lay out grid: %w", err)
	}
	c := &Controller{
		grid:     grid,
		layout:   cfg.Layout,
		viewport: cfg.Viewport,
		store:    core.NewCellStore(grid, placements),
		mapper:   NewMapper(cfg.Layout),
		timer:    core.NewRepeating(cfg.TickPeriod),
		button:   NewButton(),
		log:      logger,
	}
	c.enterEditing()
	logger.Debug("board ready",
		"rows", grid.Rows, "cols", grid.Cols,
		"period", c.timer.Period(),
		"viewport_w", cfg.Viewport.W, "viewport_h", cfg.Viewport.H)
	return c, nil
}

// State returns the current simulation state.
func (c *Controller) State() core.State { return c.state }

// Generation returns the number of generations computed since the last
// entry into Editing.
func (c *Controller) Generation() int { return c.generation }

// Grid returns the board dimensions.
func (c *Controller) Grid() core.Grid { return c.grid }

// Layout returns the cell layout constants.
func (c *Controller) Layout() core.Layout { return c.layout }

// Viewport returns the viewport the board was laid out for.
func (c *Controller) Viewport() core.Viewport { return c.viewport }

// Cell returns a copy of the cell at idx.
func (c *Controller) Cell(idx core.Index) core.Cell { return c.store.Cell(idx) }

// Alive returns a snapshot of the alive cells.
func (c *Controller) Alive() core.AliveSet { return c.store.SnapshotAlive() }

// Frame runs one host-loop iteration: pointer authoring, control handling,
// the generation clock and finally the visual projection.
func (c *Controller) Frame(dt time.Duration, in Input) Frame {
	edge := c.primary.Update(in.Pressed)

	if c.state == core.Editing {
		// The control sits above the board; pointers over it never author cells.
		onBoard := in.HasPointer && !c.button.Rect().Contains(in.Pointer)
		world := c.viewport.ToWorld(in.Pointer)
		if n := c.mapper.Apply(c.store, world, onBoard, edge); n > 0 {
			c.log.Debug("cells toggled", "count", n)
		}
	}

	started := false
	if c.button.Update(in.Pointer, in.HasPointer, in.Pressed, edge) || in.Activate {
		switch c.state {
		case core.Editing:
			c.Start()
			started = true
		case core.Running:
			c.Reset()
		}
	}

	if c.state == core.Running && !started && c.timer.Tick(dt) {
		c.advance()
	}

	return c.project()
}

// Start moves Editing to Running. The painted cells become generation 0.
func (c *Controller) Start() {
	if c.state != core.Editing {
		return
	}
	c.store.ClearHover()
	c.timer.Reset()
	c.state = core.Running
	c.log.Info("simulation started", "population", c.store.Population())
}

// Reset returns to Editing and clears the board.
func (c *Controller) Reset() {
	prev := c.state
	c.enterEditing()
	if prev == core.Running {
		c.log.Info("simulation reset")
	}
}

// Step computes one generation while Editing. It reports whether a
// generation was computed.
func (c *Controller) Step() bool {
	if c.state != core.Editing {
		return false
	}
	core.Generation(c.store)
	c.generation++
	return true
}

// Randomize fills the board from a seeded RNG while Editing.
func (c *Controller) Randomize(seed int64) bool {
	if c.state != core.Editing {
		return false
	}
	c.store.Randomize(core.NewRNG(seed))
	c.log.Debug("board randomized", "seed", seed, "population", c.store.Population())
	return true
}

// Parameters publishes read-only status for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.StringParam("state", "State", c.state.String()),
				core.IntParam("generation", "Generation", c.generation),
				core.IntParam("population", "Population", c.store.Population()),
				core.DurationParam("period", "Tick period", c.timer.Period()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", c.grid.Rows),
				core.IntParam("cols", "Cols", c.grid.Cols),
			},
		},
	}}
}

func (c *Controller) advance() {
	next := core.Generation(c.store)
	c.generation++
	if next.Empty() {
		c.log.Info("population extinct", "generation", c.generation)
		c.enterEditing()
	}
}

// enterEditing is the only way into Editing; it always clears the board.
func (c *Controller) enterEditing() {
	c.store.ResetAll()
	c.timer.Reset()
	c.generation = 0
	c.state = core.Editing
}

func (c *Controller) project() Frame {
	cells, pop := project(c.store)
	return Frame{
		State:      c.state,
		Generation: c.generation,
		Population: pop,
		Cells:      cells,
		Control: ControlView{
			Rect:       c.button.Rect(),
			State:      c.button.State(),
			Label:      Label(c.state),
			Background: Background(c.button.State()),
		},
	}
}
