//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"paint-life/internal/app"
	"paint-life/internal/config"
	"paint-life/internal/core"
	"paint-life/internal/life"
	"paint-life/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	ctrl, err := life.New(life.Config{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Layout:     core.Layout{CellSize: cfg.CellSize, GapSize: cfg.GapSize},
		Viewport:   core.Viewport{W: float64(cfg.Width), H: float64(cfg.Height)},
		TickPeriod: cfg.TickPeriod,
	}, logger)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	game := app.New(ctrl, cfg.Seed)

	ebiten.SetWindowTitle("paint-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
