// Package ui hosts trellis widgets inside an ebiten game: it polls input,
// pumps the per-frame update event and draws panels and their widgets.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/layout"
)

// Component is a drawable element placed by a layout body.
type Component interface {
	Body() layout.Handle
	Bounds() (geom.Node, error)
	Draw(screen *ebiten.Image)
}

// Interactive is a Component that responds to pointer presses and
// keyboard activation.
type Interactive interface {
	Component
	// Press handles a pointer press and reports whether it was consumed.
	Press() bool
	// Activate handles keyboard activation.
	Activate() bool
	// Release ends any press in progress.
	Release()
}

// Palette resolves style colors. config.Palette implements it.
type Palette interface {
	ColorForIndex(i int, style string) color.Color
}
