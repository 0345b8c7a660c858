package realtime

// UpdateHandler receives each delivered payload.
type UpdateHandler func(Updates)

type observer struct {
	id      uint64
	handler UpdateHandler
}

// observerList keeps handlers in subscription order. It is not safe for
// concurrent use on its own; the Tracker guards it with its mutex and takes
// snapshots before fan-out so handlers may re-enter Subscribe/Stop freely.
type observerList struct {
	entries []observer
}

func (l *observerList) add(id uint64, handler UpdateHandler) {
	l.entries = append(l.entries, observer{id: id, handler: handler})
}

func (l *observerList) remove(id uint64) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList) len() int {
	return len(l.entries)
}

func (l *observerList) clear() {
	l.entries = nil
}

// snapshot returns the handlers in subscription order. The copy decouples
// fan-out from mutations made by re-entrant handlers.
func (l *observerList) snapshot() []UpdateHandler {
	if len(l.entries) == 0 {
		return nil
	}
	handlers := make([]UpdateHandler, len(l.entries))
	for i, e := range l.entries {
		handlers[i] = e.handler
	}
	return handlers
}
