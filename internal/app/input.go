// Package app hosts the ebiten game loop around a life.Controller.
package app

import "paint-life/internal/core"

func pointAt(x, y int) core.Point {
	return core.Point{X: float64(x), Y: float64(y)}
}
