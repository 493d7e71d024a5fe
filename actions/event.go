package actions

// Listener is invoked synchronously by the Manager during Update. It must
// not call Manager.Update.
type Listener func(a *Action)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Emitter is an ordered list of listeners for one action event.
type Emitter struct {
	listeners []listenerEntry
	nextID    uint64
}

// Subscription removes its listener when canceled.
type Subscription struct {
	emitter *Emitter
	id      uint64
}

// Add registers fn after the existing listeners.
func (e *Emitter) Add(fn Listener) Subscription {
	e.nextID++
	e.listeners = append(e.listeners, listenerEntry{id: e.nextID, fn: fn})
	return Subscription{emitter: e, id: e.nextID}
}

// Len returns the number of registered listeners.
func (e *Emitter) Len() int { return len(e.listeners) }

// Clear removes every listener.
func (e *Emitter) Clear() {
	e.listeners = nil
}

func (e *Emitter) notify(a *Action) {
	// Listeners may cancel subscriptions while being notified. remove
	// rebuilds the slice, so this range keeps its snapshot and skips
	// entries that are no longer registered.
	for _, l := range e.listeners {
		if !e.has(l.id) {
			continue
		}
		l.fn(a)
	}
}

func (e *Emitter) has(id uint64) bool {
	for _, l := range e.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (e *Emitter) remove(id uint64) bool {
	for i, l := range e.listeners {
		if l.id != id {
			continue
		}
		kept := make([]listenerEntry, 0, len(e.listeners)-1)
		kept = append(kept, e.listeners[:i]...)
		e.listeners = append(kept, e.listeners[i+1:]...)
		return true
	}
	return false
}

// Cancel removes the listener. It reports false if it was already
// removed.
func (s Subscription) Cancel() bool {
	if s.emitter == nil {
		return false
	}
	return s.emitter.remove(s.id)
}
