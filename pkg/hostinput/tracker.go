package hostinput

import tui "github.com/grindlemire/go-tui-behaviors"

// MouseTracker turns button-state samples into pointer phases. The zero value
// is ready to use. Offset is subtracted from every coordinate so events are
// reported relative to the widget's origin.
type MouseTracker struct {
	OffsetX, OffsetY int

	down    bool
	primary bool
}

// Sample records one mouse report: the cell position and whether any button,
// and the primary button, are held. It returns the pointer event for the
// transition, or false when the sample is a hover with nothing held.
func (t *MouseTracker) Sample(x, y int, held, primary bool) (tui.PointerEvent, bool) {
	pe := tui.PointerEvent{
		Kind: tui.PointerMouse,
		X:    float64(x - t.OffsetX),
		Y:    float64(y - t.OffsetY),
	}
	switch {
	case held && !t.down:
		t.down = true
		t.primary = primary
		pe.Phase = tui.PointerDown
	case held && t.down:
		pe.Phase = tui.PointerMove
	case !held && t.down:
		t.down = false
		pe.Phase = tui.PointerUp
	default:
		return tui.PointerEvent{}, false
	}
	pe.Primary = t.primary
	return pe, true
}

// Down reports whether a button is currently held.
func (t *MouseTracker) Down() bool {
	return t.down
}

// Reset forgets any held button.
func (t *MouseTracker) Reset() {
	t.down = false
	t.primary = false
}
