// Package event implements the publish/subscribe registry that wires up
// widget interaction.
//
// Events and callbacks are registered independently and addressed by
// opaque IDs. Subscribing an event to a callback only stores the
// callback's ID, so a callback removed after subscribing is skipped when
// the event fires.
package event

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"sync"
)

// NoPriority is returned by GetPriority for unknown callbacks. It can
// never be set as a real priority.
const NoPriority = -1

// idBytes is the amount of randomness in an ID.
const idBytes = 16

// ID identifies an event or a callback.
type ID string

// Short returns a prefix of the ID suitable for log lines.
func (id ID) Short() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// Func is the body of a callback. Returning true stops the dispatch of
// the event that invoked it.
type Func func(args ...any) bool

// Action adapts a function that never stops dispatch.
func Action(fn func()) Func {
	return func(...any) bool {
		fn()
		return false
	}
}

type eventEntry struct {
	subscribers []ID
}

type callbackEntry struct {
	fn       Func
	args     []any
	priority int
}

// Stats counts registry entries.
type Stats struct {
	Events        int
	Callbacks     int
	Subscriptions int
}

// Manager owns every event and callback of one UI. Registry methods
// (create, remove, subscribe, priorities, lookups) are safe for concurrent
// use, and callbacks always run without the lock held.
//
// TriggerEvent is meant to be driven by a single goroutine, the frame
// pump. A trigger of an event whose pass is still running is refused
// whichever goroutine it comes from; see TriggerEvent.
type Manager struct {
	mu          sync.Mutex
	events      map[ID]*eventEntry
	callbacks   map[ID]*callbackEntry
	names       map[string]ID
	dispatching map[ID]bool

	random io.Reader
	logger *log.Logger
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	m := &Manager{
		random: rand.Reader,
		logger: log.Default(),
	}
	m.resetLocked()
	return m
}

// SetLogger replaces the logger used to report refused triggers and
// panicking callbacks.
func (m *Manager) SetLogger(l *log.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}

// Reset drops every event, callback and name.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Manager) resetLocked() {
	m.events = make(map[ID]*eventEntry)
	m.callbacks = make(map[ID]*callbackEntry)
	m.names = make(map[string]ID)
	m.dispatching = make(map[ID]bool)
}

// newIDLocked returns an ID not used by any event or callback.
func (m *Manager) newIDLocked() ID {
	buf := make([]byte, idBytes)
	for {
		if _, err := io.ReadFull(m.random, buf); err != nil {
			panic(fmt.Sprintf("event: reading random id: %v", err))
		}
		id := ID(hex.EncodeToString(buf))
		_, isEvent := m.events[id]
		_, isCallback := m.callbacks[id]
		if !isEvent && !isCallback {
			return id
		}
	}
}

// CreateEvent registers an event with no subscribers.
func (m *Manager) CreateEvent() ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newIDLocked()
	m.events[id] = &eventEntry{}
	return id
}

// Register returns the event registered under name, creating it on first
// use. Hosts use named events for signals such as the per-frame update.
func (m *Manager) Register(name string) ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.names[name]; ok {
		if _, live := m.events[id]; live {
			return id
		}
	}
	id := m.newIDLocked()
	m.events[id] = &eventEntry{}
	m.names[name] = id
	return id
}

// Lookup returns the event registered under name.
func (m *Manager) Lookup(name string) (ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.names[name]
	if !ok {
		return "", false
	}
	if _, live := m.events[id]; !live {
		return "", false
	}
	return id, true
}

// RemoveEvent deletes an event and any name bound to it.
func (m *Manager) RemoveEvent(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return false
	}
	delete(m.events, id)
	for name, named := range m.names {
		if named == id {
			delete(m.names, name)
		}
	}
	return true
}

// HasEvent reports whether id names a registered event.
func (m *Manager) HasEvent(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.events[id]
	return ok
}

// CreateCallback registers fn with priority 0. args are passed to fn on
// every invocation.
func (m *Manager) CreateCallback(fn Func, args ...any) ID {
	return m.CreatePriorityCallback(0, fn, args...)
}

// CreatePriorityCallback registers fn with the given priority. Higher
// priorities run first. NoPriority is reserved and is stored as 0.
func (m *Manager) CreatePriorityCallback(priority int, fn Func, args ...any) ID {
	if priority == NoPriority {
		priority = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newIDLocked()
	m.callbacks[id] = &callbackEntry{fn: fn, args: args, priority: priority}
	return id
}

// RemoveCallback deletes a callback. Subscriber lists that still hold
// its ID are left untouched and skip it on dispatch.
func (m *Manager) RemoveCallback(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.callbacks[id]; !ok {
		return false
	}
	delete(m.callbacks, id)
	return true
}

// HasCallback reports whether id names a registered callback.
func (m *Manager) HasCallback(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.callbacks[id]
	return ok
}

// SetPriority changes the priority of a callback. It returns false for
// unknown callbacks and for NoPriority.
func (m *Manager) SetPriority(id ID, priority int) bool {
	if priority == NoPriority {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cb, ok := m.callbacks[id]
	if !ok {
		return false
	}
	cb.priority = priority
	return true
}

// GetPriority returns the priority of a callback, or NoPriority.
func (m *Manager) GetPriority(id ID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cb, ok := m.callbacks[id]
	if !ok {
		return NoPriority
	}
	return cb.priority
}

// SubscribeToEvent appends callback to the subscribers of event. The
// callback ID is not checked.
func (m *Manager) SubscribeToEvent(event, callback ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[event]
	if !ok {
		return false
	}
	ev.subscribers = append(ev.subscribers, callback)
	return true
}

// UnsubscribeToEvent removes the first subscription of callback to event.
func (m *Manager) UnsubscribeToEvent(event, callback ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[event]
	if !ok {
		return false
	}
	for i, sub := range ev.subscribers {
		if sub == callback {
			ev.subscribers = append(ev.subscribers[:i:i], ev.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribers returns a copy of the subscriber list of event in
// subscription order.
func (m *Manager) Subscribers(event ID) []ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[event]
	if !ok {
		return nil
	}
	out := make([]ID, len(ev.subscribers))
	copy(out, ev.subscribers)
	return out
}

// Stats returns the current registry sizes.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Stats{Events: len(m.events), Callbacks: len(m.callbacks)}
	for _, ev := range m.events {
		s.Subscriptions += len(ev.subscribers)
	}
	return s
}
