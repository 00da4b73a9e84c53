package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/interact"
	"github.com/OpticalFlyer/trellis/layout"
)

var _ Interactive = (*Toggle)(nil)

// Toggle cycles through one state per label. Each state is drawn with
// its own accent color from the palette.
type Toggle struct {
	ctrl   *Controller
	body   layout.Handle
	labels []string
	toggle *interact.Togglable
}

// NewToggle adds a toggle placed by b. onChange, if not nil, receives the
// new state after every change.
func NewToggle(c *Controller, b layout.Body, labels []string, start int, onChange func(state int)) (*Toggle, error) {
	body := c.arena.Add(b)
	tg, err := interact.NewTogglable(c.manager, c.arena.Ref(body), c.input, len(labels), start)
	if err != nil {
		c.arena.Remove(body)
		return nil, fmt.Errorf("toggle %v: %w", labels, err)
	}
	t := &Toggle{
		ctrl:   c,
		body:   body,
		labels: labels,
		toggle: tg,
	}
	if onChange != nil {
		for i := range labels {
			state := i
			tg.OnState(state, 0, event.Action(func() { onChange(state) }))
		}
	}
	return t, nil
}

// Togglable exposes the underlying interaction object.
func (t *Toggle) Togglable() *interact.Togglable { return t.toggle }

func (t *Toggle) State() int   { return t.toggle.State() }
func (t *Toggle) Label() string { return t.labels[t.toggle.State()] }

func (t *Toggle) SetEnabled(enabled bool) { t.toggle.SetActivated(enabled) }

func (t *Toggle) Body() layout.Handle { return t.body }

func (t *Toggle) Bounds() (geom.Node, error) {
	return t.ctrl.arena.Resolve(t.body)
}

func (t *Toggle) Press() bool    { return t.toggle.ActiveTrigger() }
func (t *Toggle) Activate() bool { return t.toggle.PassiveTrigger() }
func (t *Toggle) Release()       {}

func (t *Toggle) Draw(screen *ebiten.Image) {
	node, err := t.Bounds()
	if err != nil {
		return
	}
	bg := config.ColorIdle
	if t.toggle.IsActivated() && t.toggle.PointerInside() {
		bg = config.ColorHover
	}
	fillNode(screen, node, t.ctrl.color(bg))
	strokeNode(screen, node, 1, t.ctrl.color(config.ColorBorder))

	// State indicator on the left, label in the remaining space.
	side := node.Height()
	indicator := geom.MustNew(0, 0, side/2, side/2).Translate(node.Left()+side/4, node.Top()+side/4)
	state := t.toggle.State()
	if err := fillPolygon(screen, chevron(indicator), t.ctrl.color(config.ColorAccent+state)); err != nil {
		t.ctrl.logger.Printf("ui: toggle indicator: %v", err)
	}
	rest := geom.FromCorners(node.Left()+side, node.Top(), node.Right(), node.Bottom())
	drawLabel(screen, t.labels[state], rest, t.ctrl.color(config.ColorText))
}

// Close removes the toggle's events.
func (t *Toggle) Close() {
	t.toggle.Close()
}
