package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/interact"
	"github.com/OpticalFlyer/trellis/layout"
)

var _ Interactive = (*Button)(nil)

// Button is a push button. It clicks on press and, when a repeat action
// is set, keeps firing it while held.
type Button struct {
	Label string

	ctrl *Controller
	body layout.Handle
	hold *interact.Holdable

	repeatDelay int
	heldFrames  int
}

// NewButton adds a button placed by b. onClick may be nil.
func NewButton(c *Controller, b layout.Body, label string, onClick func()) (*Button, error) {
	body := c.arena.Add(b)
	hold, err := interact.NewHoldable(c.manager, c.arena.Ref(body), c.input, c.update)
	if err != nil {
		c.arena.Remove(body)
		return nil, err
	}
	btn := &Button{
		Label: label,
		ctrl:  c,
		body:  body,
		hold:  hold,
	}
	if onClick != nil {
		hold.OnClick(0, event.Action(onClick))
	}
	hold.OnRelease(0, event.Action(func() { btn.heldFrames = 0 }))
	return btn, nil
}

// SetRepeat runs fn on every frame the button stays held after the first
// delay frames.
func (b *Button) SetRepeat(delay int, fn func()) {
	b.repeatDelay = delay
	b.hold.OnHold(0, event.Action(func() {
		b.heldFrames++
		if b.heldFrames > b.repeatDelay {
			fn()
		}
	}))
}

// Holdable exposes the underlying interaction object.
func (b *Button) Holdable() *interact.Holdable { return b.hold }

func (b *Button) SetEnabled(enabled bool) { b.hold.SetActivated(enabled) }
func (b *Button) IsPressed() bool         { return b.hold.IsPressed() }

func (b *Button) Body() layout.Handle { return b.body }

func (b *Button) Bounds() (geom.Node, error) {
	return b.ctrl.arena.Resolve(b.body)
}

func (b *Button) Press() bool { return b.hold.ActiveTrigger() }

// Activate clicks the button without holding it.
func (b *Button) Activate() bool {
	if !b.hold.PassiveTrigger() {
		return false
	}
	b.hold.Release()
	return true
}

func (b *Button) Release() { b.hold.Release() }

func (b *Button) Draw(screen *ebiten.Image) {
	node, err := b.Bounds()
	if err != nil {
		return
	}

	// Colors
	bg := config.ColorIdle
	if b.hold.IsPressed() {
		bg = config.ColorPressed
	} else if b.hold.IsActivated() && b.hold.PointerInside() {
		bg = config.ColorHover
	}

	fillNode(screen, node, b.ctrl.color(bg))
	strokeNode(screen, node, 1, b.ctrl.color(config.ColorBorder))
	drawLabel(screen, b.Label, node, b.ctrl.color(config.ColorText))
}

// Close removes the button's events.
func (b *Button) Close() {
	b.hold.Close()
}
