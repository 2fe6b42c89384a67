//go:build ebiten

package app

import (
	"time"

	"paint-life/internal/life"
	"paint-life/internal/render"
	"paint-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *life.Controller
	painter *render.BoardPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	frame life.Frame
	last  time.Time
	seed  int64
}

// New constructs a Game for the provided controller.
func New(ctrl *life.Controller, seed int64) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: render.NewBoardPainter(render.DefaultPalette(), ctrl.Layout(), ctrl.Viewport()),
		overlay: ui.NewOverlay(ctrl),
		hud:     ui.NewHUD(ctrl),
		seed:    seed,
	}
}

// Update samples input, measures the frame delta and runs one controller
// frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	g.frame = g.ctrl.Frame(dt, g.input())
	g.hud.Update()
	return nil
}

func (g *Game) input() life.Input {
	mx, my := ebiten.CursorPosition()
	vp := g.ctrl.Viewport()
	inside := mx >= 0 && my >= 0 && float64(mx) < vp.W && float64(my) < vp.H
	return life.Input{
		Pointer:    pointAt(mx, my),
		HasPointer: inside && ebiten.IsFocused(),
		Pressed:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Activate:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// Draw renders the board, overlay, control and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.frame.Cells)
	g.overlay.Draw(screen, g.frame.Cells)
	ui.DrawControl(screen, g.frame.Control)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size the board was laid out for.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.ctrl.Viewport()
	return int(vp.W), int(vp.H)
}
