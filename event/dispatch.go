package event

import "sort"

// TriggerEvent runs the subscribers of event and reports whether the
// event exists.
//
// Subscribers are taken from a snapshot of the list at the time of the
// call and run in descending priority order; equal priorities keep
// subscription order. A callback returning true stops the pass.
// Subscriptions that name a missing callback are skipped.
//
// Triggering an event while its own pass is running is refused: nothing
// runs, the refusal is logged and false is returned even though the event
// exists. Nested calls from a callback and calls from another goroutine
// are treated alike, so callers outside the frame pump must not rely on
// TriggerEvent. Other events may be triggered freely from callbacks.
func (m *Manager) TriggerEvent(event ID) bool {
	m.mu.Lock()
	ev, ok := m.events[event]
	if !ok {
		m.mu.Unlock()
		return false
	}
	if m.dispatching[event] {
		logger := m.logger
		m.mu.Unlock()
		logger.Printf("event: refusing reentrant trigger of %s", event.Short())
		return false
	}
	queue := m.orderLocked(ev.subscribers)
	m.dispatching[event] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.dispatching, event)
		m.mu.Unlock()
	}()

	for _, id := range queue {
		m.mu.Lock()
		cb, ok := m.callbacks[id]
		var entry callbackEntry
		if ok {
			entry = *cb
		}
		m.mu.Unlock()
		if !ok {
			continue
		}
		if m.invoke(id, entry) {
			break
		}
	}
	return true
}

// orderLocked copies subscribers and sorts the copy by priority.
func (m *Manager) orderLocked(subscribers []ID) []ID {
	queue := make([]ID, len(subscribers))
	copy(queue, subscribers)
	if len(queue) < 2 {
		return queue
	}
	priority := func(id ID) int {
		if cb, ok := m.callbacks[id]; ok {
			return cb.priority
		}
		return NoPriority
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return priority(queue[i]) > priority(queue[j])
	})
	return queue
}

// invoke runs one callback. A panicking callback is logged and does not
// stop the dispatch.
func (m *Manager) invoke(id ID, cb callbackEntry) (stop bool) {
	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			logger := m.logger
			m.mu.Unlock()
			logger.Printf("event: callback %s panicked: %v", id.Short(), r)
			stop = false
		}
	}()
	if cb.fn == nil {
		return false
	}
	return cb.fn(cb.args...)
}
