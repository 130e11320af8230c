package tui

type swipeState struct {
	swipe *Swipe
}

var swipeKey = NewStateKey[swipeState]("SwipeDirection")

// SwipeDirection returns a layer that maps horizontal drag gestures to goLeft
// and goRight. It presents nothing itself: the drag position is exposed
// through the position accessor, and showTransition(false/true) brackets each
// drag so a component can suppress animated transitions while the user's
// finger is down.
func SwipeDirection() *Layer {
	return NewLayer("SwipeDirection").
		Method(MethodCreated, func(h *Host, next Next, args ...any) any {
			next(args...)
			s := &Swipe{}
			s.OnPosition = func(p float64) { h.set(PropPosition, p) }
			s.OnTransition = func(show bool) { h.call(MethodShowTransition, show) }
			s.OnCommit = func(d Direction) { h.call(d.Method()) }
			LoadState(h, swipeKey).swipe = s
			return nil
		}).
		Method(MethodPointer, func(h *Host, next Next, args ...any) any {
			pe, ok := argAt(args, 0).(PointerEvent)
			if !ok || pe.Kind == PointerMouse && !pe.Primary {
				v, _ := next(args...)
				return asBool(v)
			}
			handled, _ := swipeOf(h).HandlePointer(pe, float64(h.Element().Width()))
			if v, ok := next(args...); ok && asBool(v) {
				handled = true
			}
			return handled
		}).
		Method(MethodTouch, func(h *Host, next Next, args ...any) any {
			te, ok := argAt(args, 0).(TouchEvent)
			if !ok {
				v, _ := next(args...)
				return asBool(v)
			}
			handled, _ := swipeOf(h).HandleTouch(te, float64(h.Element().Width()))
			if v, ok := next(args...); ok && asBool(v) {
				handled = true
			}
			return handled
		}).
		Accessor(PropPosition,
			func(h *Host, next NextGet) any {
				return swipeOf(h).position
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				swipeOf(h).position = asFloat(value)
			},
		).
		Method(MethodShowTransition, func(h *Host, next Next, args ...any) any {
			next(args...)
			return nil
		}).
		Method(MethodGoLeft, passThrough).
		Method(MethodGoRight, passThrough)
}

func swipeOf(h *Host) *Swipe {
	return LoadState(h, swipeKey).swipe
}
