package interact

import "github.com/OpticalFlyer/trellis/event"

// Holdable is a Clickable that stays pressed after a trigger and fires
// its hold event once per frame until released.
//
// Frames are counted by an external update event that the host triggers
// once per frame. The hold-tick callback is only subscribed to it while
// pressed.
type Holdable struct {
	*Clickable

	update  event.ID
	hold    event.ID
	release event.ID
	tick    event.ID
	pressed bool
}

// NewHoldable creates a released Holdable driven by the update event.
func NewHoldable(manager *event.Manager, element Element, pointer PointerSource, update event.ID) (*Holdable, error) {
	c, err := NewClickable(manager, element, pointer)
	if err != nil {
		return nil, err
	}
	h := &Holdable{
		Clickable: c,
		update:    update,
	}
	h.hold = c.newEvent()
	h.release = c.newEvent()
	h.tick = c.newCallback(0, func(...any) bool {
		h.Tick()
		return false
	})
	return h, nil
}

func (h *Holdable) HoldEvent() event.ID    { return h.hold }
func (h *Holdable) ReleaseEvent() event.ID { return h.release }
func (h *Holdable) UpdateSignal() event.ID { return h.update }
func (h *Holdable) IsPressed() bool        { return h.pressed }

// ActiveTrigger fires the click event and presses the object when the
// pointer is inside it.
func (h *Holdable) ActiveTrigger() bool {
	if !h.Clickable.ActiveTrigger() {
		return false
	}
	h.press()
	return true
}

// PassiveTrigger fires the click event and presses the object regardless
// of the pointer.
func (h *Holdable) PassiveTrigger() bool {
	if !h.Clickable.PassiveTrigger() {
		return false
	}
	h.press()
	return true
}

func (h *Holdable) press() {
	if h.pressed {
		return
	}
	h.pressed = true
	h.manager.SubscribeToEvent(h.update, h.tick)
}

// Tick runs one hold step. While pressed and activated it fires the hold
// event; a deactivated object is released instead.
func (h *Holdable) Tick() {
	if !h.pressed {
		return
	}
	if !h.activated {
		h.Release()
		return
	}
	h.manager.TriggerEvent(h.hold)
}

// Release returns the object to the released state. It is idempotent and
// reports whether the object was pressed. The release event fires only
// on a pressed to released transition.
func (h *Holdable) Release() bool {
	h.manager.UnsubscribeToEvent(h.update, h.tick)
	if !h.pressed {
		return false
	}
	h.pressed = false
	h.manager.TriggerEvent(h.release)
	return true
}

// OnHold subscribes fn to the hold event.
func (h *Holdable) OnHold(priority int, fn event.Func) event.ID {
	return h.subscribe(h.hold, priority, fn)
}

// OnRelease subscribes fn to the release event.
func (h *Holdable) OnRelease(priority int, fn event.Func) event.ID {
	return h.subscribe(h.release, priority, fn)
}

// Close releases the object and removes everything it registered.
func (h *Holdable) Close() {
	h.Release()
	h.Clickable.Close()
}
