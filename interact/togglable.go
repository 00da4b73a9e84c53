package interact

import (
	"errors"
	"fmt"

	"github.com/OpticalFlyer/trellis/event"
)

// ErrStateCount is returned when a Togglable is created with fewer than
// two states.
var ErrStateCount = errors.New("interact: toggle needs at least two states")

// Togglable is a Clickable that cycles through a fixed number of states,
// each with its own event.
type Togglable struct {
	*Clickable

	states  []event.ID
	current int
}

// NewTogglable creates a Togglable with numberOfStates states, starting
// at startState clamped into range.
func NewTogglable(manager *event.Manager, element Element, pointer PointerSource, numberOfStates, startState int) (*Togglable, error) {
	if numberOfStates < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStateCount, numberOfStates)
	}
	c, err := NewClickable(manager, element, pointer)
	if err != nil {
		return nil, err
	}
	t := &Togglable{
		Clickable: c,
		states:    make([]event.ID, numberOfStates),
	}
	for i := range t.states {
		t.states[i] = c.newEvent()
	}
	t.current = t.clamp(startState)
	return t, nil
}

func (t *Togglable) clamp(state int) int {
	if state < 0 {
		return 0
	}
	if state >= len(t.states) {
		return len(t.states) - 1
	}
	return state
}

// State returns the current state.
func (t *Togglable) State() int { return t.current }

// NumberOfStates returns the number of states.
func (t *Togglable) NumberOfStates() int { return len(t.states) }

// StateEvent returns the event fired on entering state.
func (t *Togglable) StateEvent(state int) (event.ID, bool) {
	if state < 0 || state >= len(t.states) {
		return "", false
	}
	return t.states[state], true
}

// SetState moves to state, clamped into range, without firing events.
func (t *Togglable) SetState(state int) int {
	t.current = t.clamp(state)
	return t.current
}

// Trigger advances to the next state, fires that state's event and then
// the click event. It returns the new state.
func (t *Togglable) Trigger() int {
	t.current = (t.current + 1) % len(t.states)
	t.manager.TriggerEvent(t.states[t.current])
	t.manager.TriggerEvent(t.click)
	return t.current
}

// CustomTrigger moves to next(current), clamped into range. Unlike
// Trigger it fires the click event before the state event.
func (t *Togglable) CustomTrigger(next func(current int) int) int {
	t.current = t.clamp(next(t.current))
	t.manager.TriggerEvent(t.click)
	t.manager.TriggerEvent(t.states[t.current])
	return t.current
}

// ActiveTrigger calls Trigger if the object is activated and the pointer
// is inside it.
func (t *Togglable) ActiveTrigger() bool {
	if !t.activated || !t.PointerInside() {
		return false
	}
	t.Trigger()
	return true
}

// PassiveTrigger calls Trigger if the object is activated.
func (t *Togglable) PassiveTrigger() bool {
	if !t.activated {
		return false
	}
	t.Trigger()
	return true
}

// OnState subscribes fn to the event of state.
func (t *Togglable) OnState(state, priority int, fn event.Func) (event.ID, bool) {
	ev, ok := t.StateEvent(state)
	if !ok {
		return "", false
	}
	return t.subscribe(ev, priority, fn), true
}
