package tui

// Lifecycle hooks.
const (
	MethodCreated  = "created"
	MethodAttached = "attached"
)

// Abstract direction vocabulary. Each returns a bool reporting whether the
// intent was handled.
const (
	MethodGoUp    = "goUp"
	MethodGoDown  = "goDown"
	MethodGoLeft  = "goLeft"
	MethodGoRight = "goRight"
	MethodGoStart = "goStart"
	MethodGoEnd   = "goEnd"
)

// Selection methods and hooks.
const (
	MethodSelectFirst         = "selectFirst"
	MethodSelectLast          = "selectLast"
	MethodSelectNext          = "selectNext"
	MethodSelectPrevious      = "selectPrevious"
	MethodApplySelection      = "applySelection"
	MethodSelectedItemChanged = "selectedItemChanged"
	MethodItemsChanged        = "itemsChanged"
	MethodItemAdded           = "itemAdded"
	MethodContentChanged      = "contentChanged"
)

// Input and presentation hooks.
const (
	MethodKeydown           = "keydown"
	MethodPointer           = "pointer"
	MethodTouch             = "touch"
	MethodShowTransition    = "showTransition"
	MethodCollectiveChanged = "collectiveChanged"
	MethodRender            = "render"
	MethodOpen              = "open"
	MethodClose             = "close"
	MethodToggle            = "toggle"
)

// Accessors.
const (
	PropItems             = "items"
	PropSelectedIndex     = "selectedIndex"
	PropSelectedItem      = "selectedItem"
	PropSelectionRequired = "selectionRequired"
	PropSelectionWraps    = "selectionWraps"
	PropCanSelectNext     = "canSelectNext"
	PropCanSelectPrevious = "canSelectPrevious"
	PropNavigationAxis    = "navigationAxis"
	PropPosition          = "position"
	PropTarget            = "target"
	PropClosed            = "closed"
)

// Direction is an abstract navigational intent, independent of whether it
// came from a key or a drag.
type Direction int

const (
	// DirectionNone means no intent.
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionStart
	DirectionEnd
)

// Method returns the member name the direction dispatches to, or "" for
// DirectionNone.
func (d Direction) Method() string {
	switch d {
	case DirectionUp:
		return MethodGoUp
	case DirectionDown:
		return MethodGoDown
	case DirectionLeft:
		return MethodGoLeft
	case DirectionRight:
		return MethodGoRight
	case DirectionStart:
		return MethodGoStart
	case DirectionEnd:
		return MethodGoEnd
	default:
		return ""
	}
}

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == DirectionNone {
		return "none"
	}
	return d.Method()
}

// --- Typed wrappers ---
//
// These call through the full chain. Like Call, they fault when no layer
// defines the member: they panic with a *MissingCapabilityError.

// Go dispatches an abstract direction. DirectionNone is never handled.
func (h *Host) Go(d Direction) bool {
	if d == DirectionNone {
		return false
	}
	return asBool(h.MustCall(d.Method()))
}

// GoUp dispatches goUp.
func (h *Host) GoUp() bool { return h.Go(DirectionUp) }

// GoDown dispatches goDown.
func (h *Host) GoDown() bool { return h.Go(DirectionDown) }

// GoLeft dispatches goLeft.
func (h *Host) GoLeft() bool { return h.Go(DirectionLeft) }

// GoRight dispatches goRight.
func (h *Host) GoRight() bool { return h.Go(DirectionRight) }

// GoStart dispatches goStart.
func (h *Host) GoStart() bool { return h.Go(DirectionStart) }

// GoEnd dispatches goEnd.
func (h *Host) GoEnd() bool { return h.Go(DirectionEnd) }

// SelectFirst selects the first item. Returns true if the selection changed.
func (h *Host) SelectFirst() bool { return asBool(h.MustCall(MethodSelectFirst)) }

// SelectLast selects the last item.
func (h *Host) SelectLast() bool { return asBool(h.MustCall(MethodSelectLast)) }

// SelectNext selects the next item, honoring the wrap policy.
func (h *Host) SelectNext() bool { return asBool(h.MustCall(MethodSelectNext)) }

// SelectPrevious selects the previous item, honoring the wrap policy.
func (h *Host) SelectPrevious() bool { return asBool(h.MustCall(MethodSelectPrevious)) }

// Keydown offers a key event to the host. Returns true if it was consumed,
// in which case the caller should suppress any default handling.
func (h *Host) Keydown(ke KeyEvent) bool { return asBool(h.MustCall(MethodKeydown, ke)) }

// Pointer offers a pointer event to the host. Returns true if it was
// consumed.
func (h *Host) Pointer(pe PointerEvent) bool { return asBool(h.MustCall(MethodPointer, pe)) }

// Touch offers a legacy touch event to the host. Returns true if it was
// consumed.
func (h *Host) Touch(te TouchEvent) bool { return asBool(h.MustCall(MethodTouch, te)) }

// Items returns the host's selectable items.
func (h *Host) Items() []*Element { return asElements(h.MustGet(PropItems)) }

// SelectedIndex returns the selected index, or -1 for no selection.
func (h *Host) SelectedIndex() int { return asInt(h.MustGet(PropSelectedIndex), -1) }

// SetSelectedIndex selects the item at index. Out-of-range indexes clear the
// selection.
func (h *Host) SetSelectedIndex(index int) { h.MustSet(PropSelectedIndex, index) }

// SelectedItem returns the selected item, or nil.
func (h *Host) SelectedItem() *Element { return asElement(h.MustGet(PropSelectedItem)) }

// SetSelectedItem selects item. Nil clears the selection.
func (h *Host) SetSelectedItem(item *Element) { h.MustSet(PropSelectedItem, item) }

// SelectionRequired reports whether an empty selection is disallowed.
func (h *Host) SelectionRequired() bool { return asBool(h.MustGet(PropSelectionRequired)) }

// SetSelectionRequired sets whether an empty selection is disallowed.
func (h *Host) SetSelectionRequired(required bool) { h.MustSet(PropSelectionRequired, required) }

// SelectionWraps reports whether next/previous wrap around the ends.
func (h *Host) SelectionWraps() bool { return asBool(h.MustGet(PropSelectionWraps)) }

// SetSelectionWraps sets whether next/previous wrap around the ends.
func (h *Host) SetSelectionWraps(wraps bool) { h.MustSet(PropSelectionWraps, wraps) }

// NavigationAxis returns the axis keyboard navigation is restricted to.
func (h *Host) NavigationAxis() Axis {
	a, _ := h.MustGet(PropNavigationAxis).(Axis)
	return a
}

// SetNavigationAxis restricts keyboard navigation to an axis.
func (h *Host) SetNavigationAxis(axis Axis) { h.MustSet(PropNavigationAxis, axis) }

// Position returns the current drag position as a fraction of the element's
// width.
func (h *Host) Position() float64 { return asFloat(h.MustGet(PropPosition)) }

// Closed reports whether the host is closed.
func (h *Host) Closed() bool { return asBool(h.MustGet(PropClosed)) }

// SetClosed opens or closes the host.
func (h *Host) SetClosed(closed bool) { h.MustSet(PropClosed, closed) }

// SetTarget points the host at another element, joining their collectives.
func (h *Host) SetTarget(target *Element) { h.MustSet(PropTarget, target) }

// --- Conversions for values crossing the untyped chain ---

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v any, def int) int {
	if i, ok := v.(int); ok {
		return i
	}
	return def
}

func asFloat(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case int:
		return float64(f)
	default:
		return 0
	}
}

func asElement(v any) *Element {
	el, _ := v.(*Element)
	return el
}

func asElements(v any) []*Element {
	els, _ := v.([]*Element)
	return els
}
