package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/layout"
)

// UpdateSignal is the name of the event triggered once per frame.
const UpdateSignal = "update"

// Controller manages all UI elements. It owns the event manager and the
// layout arena that every widget is registered with.
type Controller struct {
	manager *event.Manager
	arena   *layout.Arena
	root    layout.Handle
	update  event.ID

	input   Input
	palette Palette
	style   string
	logger  *log.Logger

	panels  []*Panel
	focus   Interactive
	pressed interface{ Release() }
}

// NewController creates a controller for a window of the given size.
// A nil palette uses the built-in default style.
func NewController(input Input, palette Palette, width, height int) *Controller {
	if palette == nil {
		palette = config.NewPalette(nil)
	}
	manager := event.NewManager()
	arena := layout.NewArena()
	return &Controller{
		manager: manager,
		arena:   arena,
		root:    arena.Add(layout.Absolute(0, 0, width, height)),
		update:  manager.Register(UpdateSignal),
		input:   input,
		palette: palette,
		style:   config.DefaultStyle,
		logger:  log.Default(),
		panels:  make([]*Panel, 0),
	}
}

// SetLogger replaces the logger of the controller and its event manager.
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
	c.manager.SetLogger(l)
}

// SetStyle selects the palette style used by all widgets.
func (c *Controller) SetStyle(style string) { c.style = style }

func (c *Controller) Manager() *event.Manager { return c.manager }
func (c *Controller) Arena() *layout.Arena    { return c.arena }
func (c *Controller) Input() Input            { return c.input }

// Root returns the body covering the whole window.
func (c *Controller) Root() layout.Handle { return c.root }

// UpdateEvent returns the per-frame update event.
func (c *Controller) UpdateEvent() event.ID { return c.update }

func (c *Controller) color(i int) color.Color {
	return c.palette.ColorForIndex(i, c.style)
}

// AddPanel adds a new panel to the UI
func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// RemovePanel removes panel and releases everything it registered.
func (c *Controller) RemovePanel(panel *Panel) bool {
	for i, p := range c.panels {
		if p == panel {
			c.panels = append(c.panels[:i], c.panels[i+1:]...)
			panel.Close()
			if c.Focused() == nil {
				c.focus = nil
			}
			return true
		}
	}
	return false
}

// Panels returns the panels in drawing order.
func (c *Controller) Panels() []*Panel {
	return c.panels
}

// Update runs one frame: it polls input, routes presses and keyboard
// activation, then triggers the update event.
func (c *Controller) Update() error {
	c.input.Poll()
	c.updateCursor()

	if c.input.JustPressed() {
		c.press()
	}
	if c.input.JustReleased() {
		c.release()
	}

	if c.input.KeyJustPressed(ebiten.KeyTab) {
		c.focusNext()
	}
	if c.input.KeyJustPressed(ebiten.KeyEnter) || c.input.KeyJustPressed(ebiten.KeySpace) {
		if w := c.Focused(); w != nil {
			w.Activate()
		}
	}

	c.manager.TriggerEvent(c.update)
	return nil
}

// press offers the press to panels from top to bottom; the first
// widget that consumes it becomes the pressed widget.
func (c *Controller) press() {
	for i := len(c.panels) - 1; i >= 0; i-- {
		if w := c.panels[i].press(); w != nil {
			c.pressed = w
			c.raise(i)
			return
		}
	}
}

func (c *Controller) release() {
	if c.pressed == nil {
		return
	}
	c.pressed.Release()
	c.pressed = nil
}

// raise moves panel i to the top of the drawing order.
func (c *Controller) raise(i int) {
	p := c.panels[i]
	copy(c.panels[i:], c.panels[i+1:])
	c.panels[len(c.panels)-1] = p
}

// interactives lists every focusable widget in panel order.
func (c *Controller) interactives() []Interactive {
	var out []Interactive
	for _, p := range c.panels {
		for _, child := range p.Children() {
			if w, ok := child.(Interactive); ok {
				out = append(out, w)
			}
		}
	}
	return out
}

// Focused returns the widget that keyboard activation goes to, or nil
// once that widget has left every panel.
func (c *Controller) Focused() Interactive {
	if c.focus == nil {
		return nil
	}
	for _, w := range c.interactives() {
		if w == c.focus {
			return w
		}
	}
	return nil
}

// focusNext moves focus to the widget after the focused one in panel
// order, wrapping around.
func (c *Controller) focusNext() {
	ws := c.interactives()
	if len(ws) == 0 {
		c.focus = nil
		return
	}
	next := 0
	for i, w := range ws {
		if w == c.focus {
			next = (i + 1) % len(ws)
			break
		}
	}
	c.focus = ws[next]
}

func (c *Controller) updateCursor() {
	for i := len(c.panels) - 1; i >= 0; i-- {
		if shape, ok := c.panels[i].cursorShape(); ok {
			c.input.SetCursorShape(shape)
			return
		}
	}
	c.input.SetCursorShape(ebiten.CursorShapeDefault)
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, panel := range c.panels {
		panel.Draw(screen)
	}
	if w := c.Focused(); w != nil {
		if n, err := w.Bounds(); err == nil && !n.Empty() {
			focus := geom.FromCorners(n.Left()-2, n.Top()-2, n.Right()+2, n.Bottom()+2)
			strokeNode(screen, focus, 2, c.color(config.ColorAccent))
		}
	}
}

// UpdateWindowSize resizes the root body. Docked panels follow through
// their layout anchors.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.arena.Resize(c.root, layout.Px(width), layout.Px(height))
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	stats := c.manager.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nEvents: %d Callbacks: %d Bodies: %d",
		fps, tps, stats.Events, stats.Callbacks, c.arena.Len()))
}

// IsInteractingWithUI returns true if any UI element is being interacted with
func (c *Controller) IsInteractingWithUI() bool {
	return c.pressed != nil
}
