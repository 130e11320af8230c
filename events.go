package tui

// Event names dispatched by the built-in behavior layers. Listeners receive no
// payload; they re-read current state through the host's accessors.
const (
	EventClosedChanged       = "closed-changed"
	EventSelectedItemChanged = "selected-item-changed"
)

type listener struct {
	fn func()
}

// AddEventListener registers fn for the named event. The returned function
// removes the registration; calling it more than once is harmless.
func (e *Element) AddEventListener(name string, fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[name] = append(e.listeners[name], l)
	return func() {
		ls := e.listeners[name]
		for i, cur := range ls {
			if cur == l {
				e.listeners[name] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// DispatchEvent calls every listener registered for name, in registration
// order. Listeners added or removed during dispatch take effect next time.
func (e *Element) DispatchEvent(name string) {
	ls := e.listeners[name]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn()
	}
}
