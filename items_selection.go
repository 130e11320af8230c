package tui

import (
	"slices"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

type selectionState struct {
	selected  *Element
	lastIndex int // index of the most recent non-nil selection
	required  bool
	wraps     bool
}

var selectionKey = NewStateKey[selectionState]("ItemsSelection")

// ItemsSelection returns a layer that tracks a single selected item among the
// host's items. The selection is held by identity: when items are inserted or
// removed, the selected item stays selected wherever it moves.
//
// Items are read through the items getter, which a lower layer such as
// ContentItems must supply; a host without one behaves as if it had none.
//
// Every change of selection calls applySelection(previous, false), then
// applySelection(selected, true), then selectedItemChanged, and finally
// dispatches EventSelectedItemChanged on the host element.
func ItemsSelection() *Layer {
	return NewLayer("ItemsSelection").
		Method(MethodSelectFirst, func(h *Host, next Next, args ...any) any {
			next(args...)
			return selectIndex(h, 0)
		}).
		Method(MethodSelectLast, func(h *Host, next Next, args ...any) any {
			next(args...)
			return selectIndex(h, len(itemsOf(h))-1)
		}).
		Method(MethodSelectNext, func(h *Host, next Next, args ...any) any {
			next(args...)
			cur := selectedIndexOf(h)
			if cur < 0 {
				return selectIndex(h, 0)
			}
			return selectIndex(h, cur+1)
		}).
		Method(MethodSelectPrevious, func(h *Host, next Next, args ...any) any {
			next(args...)
			cur := selectedIndexOf(h)
			if cur < 0 {
				return selectIndex(h, len(itemsOf(h))-1)
			}
			return selectIndex(h, cur-1)
		}).
		Method(MethodApplySelection, func(h *Host, next Next, args ...any) any {
			next(args...)
			return nil
		}).
		Method(MethodSelectedItemChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			return nil
		}).
		Method(MethodItemAdded, func(h *Host, next Next, args ...any) any {
			next(args...)
			item := asElement(argAt(args, 0))
			if item == nil {
				return nil
			}
			h.call(MethodApplySelection, item, item == LoadState(h, selectionKey).selected)
			return nil
		}).
		Method(MethodItemsChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			reconcileSelection(h)
			return nil
		}).
		Accessor(PropSelectedIndex,
			func(h *Host, next NextGet) any {
				return selectedIndexOf(h)
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				items := itemsOf(h)
				index := asInt(value, -1)
				if index < 0 || index >= len(items) {
					h.set(PropSelectedItem, (*Element)(nil))
					return
				}
				h.set(PropSelectedItem, items[index])
			},
		).
		Accessor(PropSelectedItem,
			func(h *Host, next NextGet) any {
				return LoadState(h, selectionKey).selected
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				setSelectedItem(h, asElement(value))
			},
		).
		Accessor(PropSelectionRequired,
			func(h *Host, next NextGet) any {
				return LoadState(h, selectionKey).required
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				st := LoadState(h, selectionKey)
				st.required = asBool(value)
				if st.required {
					ensureSelection(h)
				}
			},
		).
		Accessor(PropSelectionWraps,
			func(h *Host, next NextGet) any {
				return LoadState(h, selectionKey).wraps
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				LoadState(h, selectionKey).wraps = asBool(value)
			},
		).
		Getter(PropCanSelectNext, func(h *Host, next NextGet) any {
			n := len(itemsOf(h))
			if n == 0 {
				return false
			}
			if LoadState(h, selectionKey).wraps {
				return true
			}
			return selectedIndexOf(h) < n-1
		}).
		Getter(PropCanSelectPrevious, func(h *Host, next NextGet) any {
			n := len(itemsOf(h))
			if n == 0 {
				return false
			}
			if LoadState(h, selectionKey).wraps {
				return true
			}
			return selectedIndexOf(h) != 0
		})
}

func itemsOf(h *Host) []*Element {
	v, _ := h.get(PropItems)
	return asElements(v)
}

func selectedIndexOf(h *Host) int {
	selected := LoadState(h, selectionKey).selected
	if selected == nil {
		return -1
	}
	return slices.Index(itemsOf(h), selected)
}

// selectIndex moves the selection to index, wrapping or clamping per the
// host's policy. Returns true if the selection changed.
func selectIndex(h *Host, index int) bool {
	n := len(itemsOf(h))
	if n == 0 {
		return false
	}
	if LoadState(h, selectionKey).wraps {
		index = ((index % n) + n) % n
	} else {
		index = max(0, min(index, n-1))
	}
	if index == selectedIndexOf(h) {
		return false
	}
	h.set(PropSelectedIndex, index)
	return true
}

func setSelectedItem(h *Host, item *Element) {
	st := LoadState(h, selectionKey)
	index := -1
	if item != nil {
		index = slices.Index(itemsOf(h), item)
		if index < 0 {
			debug.Log("ItemsSelection.setSelectedItem: %s is not an item", item)
			item = nil
		}
	}

	previous := st.selected
	if previous == item {
		if item == nil && st.required {
			ensureSelection(h)
		}
		return
	}
	st.selected = item
	if item != nil {
		st.lastIndex = index
	}

	if previous != nil {
		h.call(MethodApplySelection, previous, false)
	}
	if item != nil {
		h.call(MethodApplySelection, item, true)
	}
	h.call(MethodSelectedItemChanged)
	h.Element().DispatchEvent(EventSelectedItemChanged)

	if item == nil && st.required {
		ensureSelection(h)
	}
}

// ensureSelection selects something when the selection is empty but items
// exist: the item at the last selected index, or the last item if that index
// is gone.
func ensureSelection(h *Host) {
	st := LoadState(h, selectionKey)
	items := itemsOf(h)
	if st.selected != nil || len(items) == 0 {
		return
	}
	index := max(0, min(st.lastIndex, len(items)-1))
	h.set(PropSelectedItem, items[index])
}

func reconcileSelection(h *Host) {
	st := LoadState(h, selectionKey)
	if st.selected == nil {
		if st.required {
			ensureSelection(h)
		}
		return
	}
	index := slices.Index(itemsOf(h), st.selected)
	if index >= 0 {
		st.lastIndex = index
		return
	}
	debug.Log("ItemsSelection.itemsChanged: selected item removed (was index %d)", st.lastIndex)
	h.set(PropSelectedItem, (*Element)(nil))
}
