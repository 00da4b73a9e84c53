// Package interact builds press, hold and toggle behavior on top of the
// event manager and resolved widget geometry.
package interact

import (
	"errors"

	"github.com/OpticalFlyer/trellis/event"
	"github.com/OpticalFlyer/trellis/geom"
)

var (
	// ErrNilManager is returned when an interaction object is created
	// without an event manager.
	ErrNilManager = errors.New("interact: nil event manager")
	// ErrNilElement is returned when an interaction object is created
	// without an element.
	ErrNilElement = errors.New("interact: nil element")
)

// PointerSource reports the current pointer position in screen pixels.
type PointerSource interface {
	CurrentPointerPosition() (x, y int)
}

// PointerFunc adapts a function to PointerSource.
type PointerFunc func() (x, y int)

func (f PointerFunc) CurrentPointerPosition() (int, int) { return f() }

// Element is anything with resolvable geometry. layout.Ref implements it.
type Element interface {
	Geometry() (geom.Node, error)
}

// Clickable fires its click event when triggered while activated. The
// active trigger additionally requires the pointer to be inside the
// element.
type Clickable struct {
	manager   *event.Manager
	element   Element
	pointer   PointerSource
	activated bool

	click event.ID
	owned []event.ID
}

// NewClickable creates an activated Clickable with a fresh click event.
// pointer may be nil, in which case only PassiveTrigger can fire.
func NewClickable(manager *event.Manager, element Element, pointer PointerSource) (*Clickable, error) {
	if manager == nil {
		return nil, ErrNilManager
	}
	if element == nil {
		return nil, ErrNilElement
	}
	c := &Clickable{
		manager:   manager,
		element:   element,
		pointer:   pointer,
		activated: true,
	}
	c.click = c.newEvent()
	return c, nil
}

// newEvent creates an event that Close removes.
func (c *Clickable) newEvent() event.ID {
	id := c.manager.CreateEvent()
	c.owned = append(c.owned, id)
	return id
}

// newCallback creates a callback that Close removes.
func (c *Clickable) newCallback(priority int, fn event.Func) event.ID {
	id := c.manager.CreatePriorityCallback(priority, fn)
	c.owned = append(c.owned, id)
	return id
}

// Manager returns the event manager the object was built with.
func (c *Clickable) Manager() *event.Manager { return c.manager }

// Element returns the geometry source.
func (c *Clickable) Element() Element { return c.element }

// ClickEvent returns the id of the click event.
func (c *Clickable) ClickEvent() event.ID { return c.click }

func (c *Clickable) IsActivated() bool       { return c.activated }
func (c *Clickable) SetActivated(value bool) { c.activated = value }
func (c *Clickable) Activate()               { c.activated = true }
func (c *Clickable) Deactivate()             { c.activated = false }

// PointerInside reports whether the pointer is inside the element's
// resolved geometry. Elements that fail to resolve are never hit.
func (c *Clickable) PointerInside() bool {
	if c.pointer == nil {
		return false
	}
	node, err := c.element.Geometry()
	if err != nil {
		return false
	}
	return node.PointInside(c.pointer.CurrentPointerPosition())
}

// ActiveTrigger fires the click event if the object is activated and the
// pointer is inside it.
func (c *Clickable) ActiveTrigger() bool {
	if !c.activated || !c.PointerInside() {
		return false
	}
	return c.manager.TriggerEvent(c.click)
}

// PassiveTrigger fires the click event if the object is activated,
// regardless of the pointer. It serves keyboard activation.
func (c *Clickable) PassiveTrigger() bool {
	if !c.activated {
		return false
	}
	return c.manager.TriggerEvent(c.click)
}

// OnClick subscribes fn to the click event and returns the callback id.
func (c *Clickable) OnClick(priority int, fn event.Func) event.ID {
	return c.subscribe(c.click, priority, fn)
}

func (c *Clickable) subscribe(ev event.ID, priority int, fn event.Func) event.ID {
	cb := c.newCallback(priority, fn)
	c.manager.SubscribeToEvent(ev, cb)
	return cb
}

// Close removes every event and callback the object created.
func (c *Clickable) Close() {
	for _, id := range c.owned {
		if !c.manager.RemoveEvent(id) {
			c.manager.RemoveCallback(id)
		}
	}
	c.owned = nil
}
