package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/interact"
	"github.com/OpticalFlyer/trellis/layout"
)

type DockState int

const (
	dockNone DockState = iota
	dockLeft
	dockRight
	dockTop
	dockBottom
)

const (
	titleBarHeight = 20
	gripSize       = 12
	contentPadding = 6
	minPanelWidth  = 100
	minPanelHeight = 50
	dockThreshold  = 20
	dockedSize     = 200
	previewAlpha   = 84
)

var _ Component = (*Panel)(nil)

// releaseFunc lets the controller end a press that is not owned by a
// widget, such as a panel drag.
type releaseFunc func()

func (f releaseFunc) Release() { f() }

// Panel is a movable, resizable container. Its body is absolute while
// floating and anchored to the window root body while docked, so a docked
// panel follows window resizes without extra bookkeeping.
type Panel struct {
	Title string

	ctrl     *Controller
	body     layout.Handle
	titleBar layout.Handle
	grip     layout.Handle
	content  layout.Handle

	drag   *interact.Holdable
	resize *interact.Holdable

	children []Component

	dockState DockState
	preview   DockState

	// Undocked dimensions (saved before docking)
	undockedWidth, undockedHeight int

	dragOffsetX, dragOffsetY   int
	resizeStartX, resizeStartY int
	resizeStartW, resizeStartH int

	lastErr string
}

// NewPanel creates a floating panel and its title bar, resize grip and
// content bodies.
func NewPanel(c *Controller, x, y, width, height int, title string) (*Panel, error) {
	arena := c.arena
	p := &Panel{
		Title:          title,
		ctrl:           c,
		body:           arena.Add(layout.Absolute(x, y, width, height)),
		undockedWidth:  width,
		undockedHeight: height,
	}
	p.titleBar = arena.Add(layout.Body{
		Size:           [2]layout.Value{layout.Px(0), layout.Px(titleBarHeight)},
		PositionParent: [2]layout.Handle{p.body, p.body},
		SizeParent:     [2]layout.Handle{p.body, layout.None},
	})
	p.grip = arena.Add(layout.Attach(p.body,
		layout.Anchor{Child: layout.BottomRight, Parent: layout.BottomRight},
		layout.Px(0), layout.Px(0), gripSize, gripSize))
	p.content = arena.Add(layout.Body{
		Position:       [2]layout.Value{layout.Px(contentPadding), layout.Px(titleBarHeight + contentPadding)},
		Size:           [2]layout.Value{layout.Px(-2 * contentPadding), layout.Px(-(titleBarHeight + 2*contentPadding))},
		PositionParent: [2]layout.Handle{p.body, p.body},
		SizeParent:     [2]layout.Handle{p.body, p.body},
	})

	var err error
	if p.drag, err = interact.NewHoldable(c.manager, arena.Ref(p.titleBar), c.input, c.update); err != nil {
		return nil, err
	}
	if p.resize, err = interact.NewHoldable(c.manager, arena.Ref(p.grip), c.input, c.update); err != nil {
		return nil, err
	}
	p.drag.OnClick(0, event.Action(p.beginDrag))
	p.drag.OnHold(0, event.Action(p.dragStep))
	p.drag.OnRelease(0, event.Action(p.endDrag))
	p.resize.OnClick(0, event.Action(p.beginResize))
	p.resize.OnHold(0, event.Action(p.resizeStep))
	p.resize.OnRelease(0, event.Action(p.endResize))
	return p, nil
}

func (p *Panel) Body() layout.Handle { return p.body }

// Content returns the body that children should be placed relative to.
func (p *Panel) Content() layout.Handle { return p.content }

func (p *Panel) Bounds() (geom.Node, error) {
	return p.ctrl.arena.Resolve(p.body)
}

// DockState returns where the panel is docked.
func (p *Panel) DockState() DockState { return p.dockState }

// IsDragging reports whether the title bar is held.
func (p *Panel) IsDragging() bool { return p.drag.IsPressed() }

// IsResizing reports whether the resize grip is held.
func (p *Panel) IsResizing() bool { return p.resize.IsPressed() }

func (p *Panel) AddChild(child Component) {
	p.children = append(p.children, child)
}

func (p *Panel) RemoveChild(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

func (p *Panel) Children() []Component {
	return p.children
}

// press routes a pointer press to the topmost child, then the resize
// grip, then the title bar. A press anywhere else on the panel is
// swallowed so it does not reach panels underneath.
func (p *Panel) press() interface{ Release() } {
	for i := len(p.children) - 1; i >= 0; i-- {
		if w, ok := p.children[i].(Interactive); ok && w.Press() {
			return w
		}
	}
	if p.resize.ActiveTrigger() {
		return releaseFunc(func() { p.resize.Release() })
	}
	if p.drag.ActiveTrigger() {
		return releaseFunc(func() { p.drag.Release() })
	}
	if p.pointerInside() {
		return releaseFunc(func() {})
	}
	return nil
}

func (p *Panel) pointerInside() bool {
	node, err := p.Bounds()
	if err != nil {
		return false
	}
	return node.PointInside(p.ctrl.input.CurrentPointerPosition())
}

func (p *Panel) cursorShape() (ebiten.CursorShapeType, bool) {
	switch {
	case p.resize.IsPressed() || p.resize.PointerInside():
		return ebiten.CursorShapeNWSEResize, true
	case p.drag.IsPressed() || p.drag.PointerInside():
		return ebiten.CursorShapeMove, true
	}
	return ebiten.CursorShapeDefault, false
}

func (p *Panel) beginDrag() {
	node, err := p.Bounds()
	if err != nil {
		return
	}
	px, py := p.ctrl.input.CurrentPointerPosition()

	if p.dockState == dockNone {
		p.undockedWidth, p.undockedHeight = node.Size()
	} else {
		// Undocking - restore previous undocked dimensions
		relativeX := float64(px-node.Left()) / float64(max(node.Width(), 1))
		x := px - int(float64(p.undockedWidth)*relativeX)
		y := py - titleBarHeight/2
		p.ctrl.arena.Set(p.body, layout.Absolute(x, y, p.undockedWidth, p.undockedHeight))
		p.dockState = dockNone
		node = geom.MustNew(x, y, p.undockedWidth, p.undockedHeight)
	}

	p.dragOffsetX = px - node.Left()
	p.dragOffsetY = py - node.Top()
}

func (p *Panel) dragStep() {
	px, py := p.ctrl.input.CurrentPointerPosition()
	p.ctrl.arena.Move(p.body, layout.Px(px-p.dragOffsetX), layout.Px(py-p.dragOffsetY))
	p.preview = p.dockTarget(px, py)
}

func (p *Panel) endDrag() {
	if p.preview != dockNone {
		p.dock(p.preview)
	}
	p.preview = dockNone
}

// dockTarget returns the window edge the pointer is close to.
func (p *Panel) dockTarget(x, y int) DockState {
	win, err := p.ctrl.arena.Resolve(p.ctrl.root)
	if err != nil {
		return dockNone
	}
	switch {
	case x-win.Left() < dockThreshold:
		return dockLeft
	case win.Right()-x < dockThreshold:
		return dockRight
	case y-win.Top() < dockThreshold:
		return dockTop
	case win.Bottom()-y < dockThreshold:
		return dockBottom
	}
	return dockNone
}

// dockBody returns the body of a panel docked to state.
func dockBody(root layout.Handle, state DockState) layout.Body {
	b := layout.Body{PositionParent: [2]layout.Handle{root, root}}
	switch state {
	case dockLeft, dockRight:
		b.Size = [2]layout.Value{layout.Px(dockedSize), layout.Frac(1)}
		b.SizeParent = [2]layout.Handle{layout.None, root}
		if state == dockRight {
			b.Anchor = layout.Anchor{Child: layout.TopRight, Parent: layout.TopRight}
		}
	case dockTop, dockBottom:
		b.Size = [2]layout.Value{layout.Frac(1), layout.Px(dockedSize)}
		b.SizeParent = [2]layout.Handle{root, layout.None}
		if state == dockBottom {
			b.Anchor = layout.Anchor{Child: layout.BottomLeft, Parent: layout.BottomLeft}
		}
	}
	return b
}

func (p *Panel) dock(state DockState) {
	p.ctrl.arena.Set(p.body, dockBody(p.ctrl.root, state))
	p.dockState = state
}

func (p *Panel) beginResize() {
	p.resizeStartX, p.resizeStartY = p.ctrl.input.CurrentPointerPosition()
	if w, h, err := p.ctrl.arena.ResolveSize(p.body); err == nil {
		p.resizeStartW, p.resizeStartH = w, h
	}
}

// resizeStep changes the pixel components of the panel size. Fractional
// components, such as the full height of a panel docked left, are kept.
func (p *Panel) resizeStep() {
	px, py := p.ctrl.input.CurrentPointerPosition()
	dx, dy := px-p.resizeStartX, py-p.resizeStartY
	switch p.dockState {
	case dockRight:
		dx = -dx
	case dockBottom:
		dy = -dy
	}
	width := max(minPanelWidth, p.resizeStartW+dx)
	height := max(minPanelHeight, p.resizeStartH+dy)
	p.ctrl.arena.Update(p.body, func(b *layout.Body) {
		if !b.Size[layout.Horizontal].IsFrac() {
			b.Size[layout.Horizontal] = layout.Px(width)
		}
		if !b.Size[layout.Vertical].IsFrac() {
			b.Size[layout.Vertical] = layout.Px(height)
		}
	})
}

func (p *Panel) endResize() {
	if p.dockState != dockNone {
		return
	}
	if w, h, err := p.ctrl.arena.ResolveSize(p.body); err == nil {
		p.undockedWidth, p.undockedHeight = w, h
	}
}

func (p *Panel) resolve(h layout.Handle) (geom.Node, bool) {
	n, err := p.ctrl.arena.Resolve(h)
	if err != nil {
		if msg := err.Error(); msg != p.lastErr {
			p.ctrl.logger.Printf("ui: panel %q: %v", p.Title, err)
			p.lastErr = msg
		}
		return geom.Node{}, false
	}
	return n, true
}

func (p *Panel) Draw(screen *ebiten.Image) {
	node, ok := p.resolve(p.body)
	if !ok {
		return
	}

	if p.preview != dockNone {
		if win, ok := p.resolve(p.ctrl.root); ok {
			fillNode(screen, previewNode(win, p.preview), withAlpha(p.ctrl.color(config.ColorAccent), previewAlpha))
		}
	}

	// Draw panel background
	fillNode(screen, node, p.ctrl.color(config.ColorBackground))

	// Draw title bar
	if bar, ok := p.resolve(p.titleBar); ok {
		fillNode(screen, bar, p.ctrl.color(config.ColorTitle))
		drawTitle(screen, p.Title, bar, p.ctrl.color(config.ColorText))
	}

	if g, ok := p.resolve(p.grip); ok {
		if err := fillPolygon(screen, grip(g), p.ctrl.color(config.ColorBorder)); err != nil {
			p.ctrl.logger.Printf("ui: panel %q grip: %v", p.Title, err)
		}
	}

	for _, child := range p.children {
		child.Draw(screen)
	}
}

// previewNode returns the area a panel docked to state would cover.
func previewNode(win geom.Node, state DockState) geom.Node {
	switch state {
	case dockLeft:
		return geom.FromCorners(win.Left(), win.Top(), win.Left()+dockedSize, win.Bottom())
	case dockRight:
		return geom.FromCorners(win.Right()-dockedSize, win.Top(), win.Right(), win.Bottom())
	case dockTop:
		return geom.FromCorners(win.Left(), win.Top(), win.Right(), win.Top()+dockedSize)
	case dockBottom:
		return geom.FromCorners(win.Left(), win.Bottom()-dockedSize, win.Right(), win.Bottom())
	}
	return geom.Node{}
}

func withAlpha(c color.Color, alpha uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha
	return n
}

// closer is implemented by widgets that registered events.
type closer interface {
	Close()
}

// Close releases the panel's events and bodies, and those of its
// children.
func (p *Panel) Close() {
	for _, child := range p.children {
		if c, ok := child.(closer); ok {
			c.Close()
		}
		p.ctrl.arena.Remove(child.Body())
	}
	p.children = nil
	p.drag.Close()
	p.resize.Close()
	for _, h := range []layout.Handle{p.content, p.grip, p.titleBar, p.body} {
		p.ctrl.arena.Remove(h)
	}
}
