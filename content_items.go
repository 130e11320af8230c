package tui

import "slices"

// auxiliaryTags are child tags that are never treated as items.
var auxiliaryTags = []string{"link", "script", "style", "template"}

type contentState struct {
	seen map[*Element]struct{}
}

var contentKey = NewStateKey[contentState]("ContentItems")

// ContentItems returns a layer whose items are the host element's children,
// excluding auxiliary tags. Child changes on the host element arrive as
// contentChanged and are forwarded to itemsChanged; itemsChanged calls
// itemAdded once for each item the host has not seen before.
func ContentItems() *Layer {
	return NewLayer("ContentItems").
		Getter(PropItems, func(h *Host, next NextGet) any {
			children := h.Element().Children()
			return slices.DeleteFunc(children, func(c *Element) bool {
				return slices.Contains(auxiliaryTags, c.Tag())
			})
		}).
		Method(MethodAttached, func(h *Host, next Next, args ...any) any {
			next(args...)
			h.call(MethodItemsChanged)
			return nil
		}).
		Method(MethodContentChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			h.call(MethodItemsChanged)
			return nil
		}).
		Method(MethodItemsChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			st := LoadState(h, contentKey)
			if st.seen == nil {
				st.seen = make(map[*Element]struct{})
			}
			for _, item := range itemsOf(h) {
				if _, ok := st.seen[item]; ok {
					continue
				}
				st.seen[item] = struct{}{}
				h.call(MethodItemAdded, item)
			}
			return nil
		}).
		Method(MethodItemAdded, func(h *Host, next Next, args ...any) any {
			next(args...)
			return nil
		})
}
