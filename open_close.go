package tui

// Classes applied by OpenClose's render.
const (
	ClassClosed = "basic-closed"
	ClassOpened = "basic-opened"
)

type openCloseState struct {
	closed bool
}

var openCloseKey = NewStateKey[openCloseState]("OpenClose")

// OpenClose returns a layer with open/closed state. It has no visible effect
// of its own: render(closing) toggles the basic-closed and basic-opened
// classes and aria-expanded on the host element, and layers above may extend
// it. Changing the closed state re-renders and dispatches EventClosedChanged.
func OpenClose() *Layer {
	return NewLayer("OpenClose").
		Method(MethodAttached, func(h *Host, next Next, args ...any) any {
			next(args...)
			h.call(MethodRender, LoadState(h, openCloseKey).closed)
			return nil
		}).
		Method(MethodOpen, func(h *Host, next Next, args ...any) any {
			h.set(PropClosed, false)
			return nil
		}).
		Method(MethodClose, func(h *Host, next Next, args ...any) any {
			h.set(PropClosed, true)
			return nil
		}).
		Method(MethodToggle, func(h *Host, next Next, args ...any) any {
			h.set(PropClosed, !LoadState(h, openCloseKey).closed)
			return nil
		}).
		Method(MethodRender, func(h *Host, next Next, args ...any) any {
			next(args...)
			closing := asBool(argAt(args, 0))
			el := h.Element()
			ToggleClass(el, ClassClosed, closing)
			ToggleClass(el, ClassOpened, !closing)
			el.SetAttribute(AttrAriaExpanded, boolString(!closing))
			return nil
		}).
		Accessor(PropClosed,
			func(h *Host, next NextGet) any {
				return LoadState(h, openCloseKey).closed
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				st := LoadState(h, openCloseKey)
				closed := asBool(value)
				if st.closed == closed {
					return
				}
				st.closed = closed
				h.call(MethodRender, closed)
				h.Element().DispatchEvent(EventClosedChanged)
			},
		)
}

// Open opens the host.
func (h *Host) Open() { h.MustCall(MethodOpen) }

// Close closes the host.
func (h *Host) Close() { h.MustCall(MethodClose) }

// Toggle flips the host between open and closed.
func (h *Host) Toggle() { h.MustCall(MethodToggle) }
