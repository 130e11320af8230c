package tui

// DirectionSelection returns a layer that binds the abstract direction
// vocabulary onto selection:
//
//	goDown, goRight  selectNext
//	goUp, goLeft     selectPrevious
//	goStart          selectFirst
//	goEnd            selectLast
//
// Each go* calls the lower layer first, then selects. It reports handled if
// either one did. Compose it over ItemsSelection.
func DirectionSelection() *Layer {
	return NewLayer("DirectionSelection").
		Method(MethodGoDown, selectVia(MethodSelectNext)).
		Method(MethodGoRight, selectVia(MethodSelectNext)).
		Method(MethodGoUp, selectVia(MethodSelectPrevious)).
		Method(MethodGoLeft, selectVia(MethodSelectPrevious)).
		Method(MethodGoStart, selectVia(MethodSelectFirst)).
		Method(MethodGoEnd, selectVia(MethodSelectLast)).
		Method(MethodSelectFirst, passThrough).
		Method(MethodSelectLast, passThrough).
		Method(MethodSelectNext, passThrough).
		Method(MethodSelectPrevious, passThrough)
}

func selectVia(method string) MethodFunc {
	return func(h *Host, next Next, args ...any) any {
		v, _ := next(args...)
		handled := asBool(v)
		if r, ok := h.call(method); ok && asBool(r) {
			handled = true
		}
		return handled
	}
}
